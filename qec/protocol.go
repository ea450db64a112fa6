package qec

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qre/qubit"
)

// Protocol is a threshold-based error correction code.
type Protocol struct {
	Name                     string
	ErrorCorrectionThreshold float64
	CrossingPrefactor        float64
	MaxDistance              uint64

	// CycleTime returns the logical cycle time in ns.
	CycleTime func(q *qubit.PhysicalQubit, codeDistance uint64) uint64

	// QubitsPerPatch returns the physical qubits of one logical qubit.
	QubitsPerPatch func(codeDistance uint64) uint64
}

var _ ErrorCorrection = (*Protocol)(nil)

// SurfaceCodeGateBased is the surface code on gate-based qubits.
func SurfaceCodeGateBased() *Protocol {
	return &Protocol{
		Name:                     "surface_code",
		ErrorCorrectionThreshold: 0.01,
		CrossingPrefactor:        0.03,
		MaxDistance:              MaxCodeDistance,
		CycleTime: func(q *qubit.PhysicalQubit, d uint64) uint64 {
			return (4*q.TwoQubitGateTime + 2*q.OneQubitMeasurementTime) * d
		},
		QubitsPerPatch: func(d uint64) uint64 { return 2 * d * d },
	}
}

// SurfaceCodeMeasurementBased is the surface code on Majorana qubits.
func SurfaceCodeMeasurementBased() *Protocol {
	return &Protocol{
		Name:                     "surface_code",
		ErrorCorrectionThreshold: 0.0015,
		CrossingPrefactor:        0.08,
		MaxDistance:              MaxCodeDistance,
		CycleTime: func(q *qubit.PhysicalQubit, d uint64) uint64 {
			return 20 * q.OneQubitMeasurementTime * d
		},
		QubitsPerPatch: func(d uint64) uint64 { return 2 * d * d },
	}
}

// FloquetCode is the Hastings-Haah Floquet code on Majorana qubits.
func FloquetCode() *Protocol {
	return &Protocol{
		Name:                     "floquet_code",
		ErrorCorrectionThreshold: 0.01,
		CrossingPrefactor:        0.07,
		MaxDistance:              MaxCodeDistance,
		CycleTime: func(q *qubit.PhysicalQubit, d uint64) uint64 {
			return 3 * q.OneQubitMeasurementTime * d
		},
		QubitsPerPatch: func(d uint64) uint64 { return 4*d*d + 8*(d-1) },
	}
}

// ProtocolByName returns a pre-defined protocol suited to the instruction
// set.
func ProtocolByName(name string, set qubit.InstructionSet) (*Protocol, error) {
	switch name {
	case "surface_code", "surfaceCode", "surface-code":
		if set == qubit.Majorana {
			return SurfaceCodeMeasurementBased(), nil
		}

		return SurfaceCodeGateBased(), nil
	case "floquet_code", "floquetCode", "floquet-code":
		if set != qubit.Majorana {
			return nil, errors.Wrapf(ErrUnsupportedInstructionSet, "%s on %s", name, set)
		}

		return FloquetCode(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownProtocol, "name %q", name)
	}
}

// PhysicalQubitsPerLogicalQubit implements ErrorCorrection.
func (p *Protocol) PhysicalQubitsPerLogicalQubit(codeDistance uint64) (uint64, error) {
	n := p.QubitsPerPatch(codeDistance)
	if n == 0 {
		return 0, errors.Wrapf(ErrNonPositiveFormula, "physical qubits at distance %d", codeDistance)
	}

	return n, nil
}

// LogicalCycleTime implements ErrorCorrection.
func (p *Protocol) LogicalCycleTime(q *qubit.PhysicalQubit, codeDistance uint64) (uint64, error) {
	t := p.CycleTime(q, codeDistance)
	if t == 0 {
		return 0, errors.Wrapf(ErrNonPositiveFormula, "logical cycle time at distance %d", codeDistance)
	}

	return t, nil
}

// LogicalErrorRate implements ErrorCorrection.
func (p *Protocol) LogicalErrorRate(q *qubit.PhysicalQubit, codeDistance uint64) (float64, error) {
	return p.logicalErrorRate(q, codeDistance), nil
}

func (p *Protocol) logicalErrorRate(q *qubit.PhysicalQubit, codeDistance uint64) float64 {
	rate := math.Max(q.CliffordErrorRate(), q.ReadoutErrorRate())

	return p.CrossingPrefactor * math.Pow(rate/p.ErrorCorrectionThreshold, float64((codeDistance+1)/2))
}

// ComputeCodeDistance implements ErrorCorrection. The logical error rate is
// decreasing in the code distance for any qubit below threshold, so the
// smallest admissible distance is found by binary search.
func (p *Protocol) ComputeCodeDistance(q *qubit.PhysicalQubit, requiredLogicalErrorRate float64) (uint64, error) {
	distances := p.CodeDistances(p.MaxDistance)
	i := sort.Search(len(distances), func(i int) bool {
		return p.logicalErrorRate(q, distances[i]) <= requiredLogicalErrorRate
	})
	if i == len(distances) {
		return 0, errors.Wrapf(ErrNoCodeDistance, "required %g, max distance %d", requiredLogicalErrorRate, p.MaxDistance)
	}

	return distances[i], nil
}

// MaxCodeDistance implements ErrorCorrection.
func (p *Protocol) MaxCodeDistance() uint64 { return p.MaxDistance }

// CodeDistances implements ErrorCorrection: odd distances 1, 3, ... up to
// min(upTo, MaxCodeDistance()).
func (p *Protocol) CodeDistances(upTo uint64) []uint64 {
	upTo = min(upTo, p.MaxDistance)
	distances := make([]uint64, 0, (upTo+1)/2)
	for d := uint64(1); d <= upTo; d += 2 {
		distances = append(distances, d)
	}

	return distances
}

// Validate checks the protocol parameters against the qubit it will encode.
func (p *Protocol) Validate(q *qubit.PhysicalQubit) error {
	if p.CrossingPrefactor <= 0 || p.CrossingPrefactor > 0.5 {
		return errors.Wrapf(ErrCrossingPrefactor, "got %g", p.CrossingPrefactor)
	}
	if q.CliffordErrorRate() >= p.ErrorCorrectionThreshold {
		return errors.Wrapf(ErrAboveThreshold, "clifford error rate %g, threshold %g",
			q.CliffordErrorRate(), p.ErrorCorrectionThreshold)
	}
	for _, d := range p.CodeDistances(p.MaxDistance) {
		if _, err := p.LogicalCycleTime(q, d); err != nil {
			return err
		}
		if _, err := p.PhysicalQubitsPerLogicalQubit(d); err != nil {
			return err
		}
	}

	return nil
}
