package distill

import (
	"fmt"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// Qubit is the view of a physical qubit or a logical patch a unit runs on.
type Qubit struct {
	PhysicalQubits    uint64
	CycleTime         uint64
	CliffordErrorRate float64
	ReadoutErrorRate  float64
	TErrorRate        float64
	CodeDistance      uint64
}

// PhysicalView runs units directly on physical qubits.
func PhysicalView(q *qubit.PhysicalQubit) Qubit {
	return Qubit{
		PhysicalQubits:    1,
		CycleTime:         q.OneQubitMeasurementTime,
		CliffordErrorRate: q.CliffordErrorRate(),
		ReadoutErrorRate:  q.ReadoutErrorRate(),
		TErrorRate:        q.TGateErrorRate,
		CodeDistance:      1,
	}
}

// LogicalView runs units on logical patches. Logical readout is treated as
// error free.
func LogicalView(p *qec.LogicalPatch) Qubit {
	return Qubit{
		PhysicalQubits:    p.PhysicalQubits,
		CycleTime:         p.LogicalCycleTime,
		CliffordErrorRate: p.LogicalErrorRate,
		TErrorRate:        p.Qubit.TGateErrorRate,
		CodeDistance:      p.CodeDistance,
	}
}

// Unit is a template bound to a qubit view.
type Unit struct {
	Name            string
	Type            UnitType
	NumInputStates  uint64
	NumOutputStates uint64
	CodeDistance    uint64

	FirstRoundQubits        uint64
	SubsequentRoundQubits   uint64
	FirstRoundDuration      uint64
	SubsequentRoundDuration uint64

	CliffordErrorRate float64
	ReadoutErrorRate  float64
	// QubitTErrorRate is the raw T error rate of the underlying physical
	// qubit, the input of a pipeline's first round.
	QubitTErrorRate float64

	failureProbability Formula
	outputErrorRate    Formula
}

// NewUnit binds t to q.
//
// The first round uses the physical specification at distance 1 and the
// logical one (or its first-round override) otherwise. Later rounds always
// run on logical qubits, so purely physical units have no resources there.
func NewUnit(t *Template, q Qubit) *Unit {
	var first, subsequent *Resources
	switch {
	case q.CodeDistance == 1 && t.Type != Logical:
		first = t.PhysicalSpec
	case q.CodeDistance == 1 || t.Type == Physical:
		// not runnable in the first round
	case t.LogicalFirstRoundSpec != nil:
		first = t.LogicalFirstRoundSpec
	default:
		first = t.LogicalSpec
	}
	if t.Type != Physical {
		subsequent = t.LogicalSpec
	}

	u := &Unit{
		Name:               t.Name,
		Type:               t.Type,
		NumInputStates:     t.NumInputStates,
		NumOutputStates:    t.NumOutputStates,
		CodeDistance:       q.CodeDistance,
		CliffordErrorRate:  q.CliffordErrorRate,
		ReadoutErrorRate:   q.ReadoutErrorRate,
		QubitTErrorRate:    q.TErrorRate,
		failureProbability: t.FailureProbability,
		outputErrorRate:    t.OutputErrorRate,
	}
	if first != nil {
		u.FirstRoundQubits = first.NumUnitQubits * q.PhysicalQubits
		u.FirstRoundDuration = first.DurationInQubitCycleTime * q.CycleTime
	}
	if subsequent != nil {
		u.SubsequentRoundQubits = subsequent.NumUnitQubits * q.PhysicalQubits
		u.SubsequentRoundDuration = subsequent.DurationInQubitCycleTime * q.CycleTime
	}

	return u
}

// Duration of one run at the given pipeline position, in ns.
func (u *Unit) Duration(position int) uint64 {
	if position == 0 {
		return u.FirstRoundDuration
	}

	return u.SubsequentRoundDuration
}

// PhysicalQubits of one unit at the given pipeline position.
func (u *Unit) PhysicalQubits(position int) uint64 {
	if position == 0 {
		return u.FirstRoundQubits
	}

	return u.SubsequentRoundQubits
}

// OutputErrorRate of the distilled states for the given input error rate.
func (u *Unit) OutputErrorRate(inputErrorRate float64) float64 {
	return u.outputErrorRate(inputErrorRate, u.CliffordErrorRate, u.ReadoutErrorRate)
}

// FailureProbability of one run for the given input error rate.
func (u *Unit) FailureProbability(inputErrorRate float64) float64 {
	return u.failureProbability(inputErrorRate, u.CliffordErrorRate, u.ReadoutErrorRate)
}

// IsValid reports whether distilling the raw T error rate strictly improves
// it.
func (u *Unit) IsValid() bool {
	return u.OutputErrorRate(u.QubitTErrorRate) < u.QubitTErrorRate
}

// String identifies the unit in logs.
func (u *Unit) String() string {
	return fmt.Sprintf("%s@d%d", u.Name, u.CodeDistance)
}
