package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/factory"
	"github.com/katalvlaran/qre/layout"
	"github.com/katalvlaran/qre/qubit"
)

// Report is the estimate of one job.
type Report struct {
	Status                  string               `json:"status"`
	QubitParams             QubitParams          `json:"qubitParams"`
	QECScheme               string               `json:"qecScheme"`
	LogicalCounts           layout.LogicalCounts `json:"logicalCounts"`
	ErrorBudget             estimate.ErrorBudget `json:"errorBudget"`
	PhysicalCounts          PhysicalCounts       `json:"physicalCounts"`
	PhysicalCountsFormatted Formatted            `json:"physicalCountsFormatted"`
	LogicalQubit            LogicalQubit         `json:"logicalQubit"`
	TFactory                *TFactory            `json:"tfactory"`
}

// QubitParams are the effective figures of the physical qubit.
type QubitParams struct {
	Name                    string  `json:"name"`
	InstructionSet          string  `json:"instructionSet"`
	OneQubitMeasurementTime uint64  `json:"oneQubitMeasurementTime"`
	TGateTime               uint64  `json:"tGateTime"`
	TGateErrorRate          float64 `json:"tGateErrorRate"`
	CliffordErrorRate       float64 `json:"cliffordErrorRate"`
	ReadoutErrorRate        float64 `json:"readoutErrorRate"`
}

// PhysicalCounts are the headline figures.
type PhysicalCounts struct {
	PhysicalQubits uint64    `json:"physicalQubits"`
	Runtime        uint64    `json:"runtime"`
	RQOPS          uint64    `json:"rqops"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Breakdown splits the headline figures.
type Breakdown struct {
	AlgorithmicLogicalQubits       uint64   `json:"algorithmicLogicalQubits"`
	AlgorithmicLogicalDepth        uint64   `json:"algorithmicLogicalDepth"`
	LogicalDepth                   uint64   `json:"logicalDepth"`
	NumTStates                     uint64   `json:"numTstates"`
	NumTFactories                  uint64   `json:"numTfactories"`
	NumTFactoryRuns                uint64   `json:"numTfactoryRuns"`
	PhysicalQubitsForAlgorithm     uint64   `json:"physicalQubitsForAlgorithm"`
	PhysicalQubitsForTFactories    uint64   `json:"physicalQubitsForTfactories"`
	RequiredLogicalQubitErrorRate  float64  `json:"requiredLogicalQubitErrorRate"`
	RequiredLogicalTStateErrorRate *float64 `json:"requiredLogicalTstateErrorRate,omitempty"`
	NumTsPerRotation               *uint64  `json:"numTsPerRotation,omitempty"`
	CliffordErrorRate              float64  `json:"cliffordErrorRate"`
}

// LogicalQubit describes the algorithm's logical patch.
type LogicalQubit struct {
	CodeDistance           uint64  `json:"codeDistance"`
	PhysicalQubits         uint64  `json:"physicalQubits"`
	LogicalCycleTime       uint64  `json:"logicalCycleTime"`
	LogicalErrorRate       float64 `json:"logicalErrorRate"`
	LogicalCyclesPerSecond float64 `json:"logicalCyclesPerSecond"`
}

// TFactory describes the chosen T factory. Round details are present for
// distillation pipelines only.
type TFactory struct {
	PhysicalQubits         uint64   `json:"physicalQubits"`
	Runtime                uint64   `json:"runtime"`
	NumTStates             uint64   `json:"numTstates"`
	NumInputTStates        uint64   `json:"numInputTstates,omitempty"`
	NumRounds              int      `json:"numRounds,omitempty"`
	NumUnitsPerRound       []uint64 `json:"numUnitsPerRound,omitempty"`
	UnitNamePerRound       []string `json:"unitNamePerRound,omitempty"`
	CodeDistancePerRound   []uint64 `json:"codeDistancePerRound,omitempty"`
	PhysicalQubitsPerRound []uint64 `json:"physicalQubitsPerRound,omitempty"`
	RuntimePerRound        []uint64 `json:"runtimePerRound,omitempty"`
	LogicalErrorRate       float64  `json:"logicalErrorRate,omitempty"`
}

// Input is everything a report is derived from.
type Input struct {
	Result      *estimate.Result
	Layout      *layout.PSSPC
	Options     estimate.Options
	TotalBudget float64
	QECScheme   string
}

// New builds the report of a successful estimate.
func New(in Input) *Report {
	r := in.Result
	patch := r.LogicalPatch

	breakdown := Breakdown{
		AlgorithmicLogicalQubits:      in.Layout.LogicalQubits(),
		AlgorithmicLogicalDepth:       in.Layout.LogicalDepth(&r.ErrorBudget),
		LogicalDepth:                  r.NumCycles,
		NumTFactories:                 r.NumFactories(),
		PhysicalQubitsForAlgorithm:    r.PhysicalQubitsForAlgorithm,
		PhysicalQubitsForTFactories:   r.PhysicalQubitsForFactories,
		RequiredLogicalQubitErrorRate: r.RequiredLogicalErrorRate,
		CliffordErrorRate:             patch.Qubit.CliffordErrorRate(),
	}
	if in.Layout.Counts().RotationCount > 0 {
		n := in.Layout.TStatesPerRotation(r.ErrorBudget.Rotations)
		breakdown.NumTsPerRotation = &n
	}

	var tfactory *TFactory
	if part := tPart(r); part != nil {
		breakdown.NumTStates = part.NumMagicStates
		breakdown.NumTFactoryRuns = part.Runs
		rate := part.RequiredOutputErrorRate
		breakdown.RequiredLogicalTStateErrorRate = &rate
		tfactory = newTFactory(part.Factory)
	}

	rep := &Report{
		Status:        "success",
		QubitParams:   newQubitParams(patch.Qubit),
		QECScheme:     in.QECScheme,
		LogicalCounts: in.Layout.Counts(),
		ErrorBudget:   r.ErrorBudget,
		PhysicalCounts: PhysicalCounts{
			PhysicalQubits: r.PhysicalQubits,
			Runtime:        r.Runtime,
			RQOPS:          r.RQOPS,
			Breakdown:      breakdown,
		},
		LogicalQubit: LogicalQubit{
			CodeDistance:           patch.CodeDistance,
			PhysicalQubits:         patch.PhysicalQubits,
			LogicalCycleTime:       patch.LogicalCycleTime,
			LogicalErrorRate:       patch.LogicalErrorRate,
			LogicalCyclesPerSecond: 1e9 / float64(patch.LogicalCycleTime),
		},
		TFactory: tfactory,
	}
	rep.PhysicalCountsFormatted = format(rep, in)

	return rep
}

// tPart is the part serving T states, if any.
func tPart(r *estimate.Result) *estimate.FactoryPart {
	if len(r.FactoryParts) == 0 {
		return nil
	}

	return r.FactoryParts[0]
}

func newQubitParams(q *qubit.PhysicalQubit) QubitParams {
	return QubitParams{
		Name:                    q.Name,
		InstructionSet:          q.InstructionSet.String(),
		OneQubitMeasurementTime: q.OneQubitMeasurementTime,
		TGateTime:               q.TGateTime,
		TGateErrorRate:          q.TGateErrorRate,
		CliffordErrorRate:       q.CliffordErrorRate(),
		ReadoutErrorRate:        q.ReadoutErrorRate(),
	}
}

func newTFactory(f estimate.Factory) *TFactory {
	t := &TFactory{
		PhysicalQubits: f.PhysicalQubits(),
		Runtime:        f.Duration(),
		NumTStates:     f.NumOutputStates(),
	}
	if p, ok := f.(*factory.Pipeline); ok {
		t.NumInputTStates = p.InputTCount()
		t.NumRounds = p.NumRounds()
		t.NumUnitsPerRound = p.NumUnitsPerRound()
		t.UnitNamePerRound = p.UnitNames()
		t.CodeDistancePerRound = p.CodeDistancePerRound()
		t.PhysicalQubitsPerRound = p.PhysicalQubitsPerRound()
		t.RuntimePerRound = p.DurationPerRound()
		t.LogicalErrorRate = p.OutputTErrorRate()
	}

	return t
}

// Encode writes the report as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
