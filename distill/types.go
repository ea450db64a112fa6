package distill

import "errors"

// Sentinel errors for template and catalog construction.
var (
	// ErrUnknownTemplate indicates a template name without a pre-defined
	// template.
	ErrUnknownTemplate = errors.New("distill: unknown distillation unit template")

	// ErrInvalidTemplate indicates a template missing a resource
	// specification or formula required by its type.
	ErrInvalidTemplate = errors.New("distill: invalid distillation unit template")

	// ErrEmptyCatalog indicates that no template yields a usable unit.
	ErrEmptyCatalog = errors.New("distill: no distillation units available")

	// ErrDistanceMismatch indicates that logical patches and code distances
	// have different lengths.
	ErrDistanceMismatch = errors.New("distill: logical patches and distances differ in length")
)

// UnitType restricts on which qubits a template may run.
type UnitType int

const (
	// Physical units run on physical qubits only.
	Physical UnitType = iota

	// Logical units run on logical patches only.
	Logical

	// Combined units run on both.
	Combined
)

// String returns the type name used in reports.
func (t UnitType) String() string {
	switch t {
	case Physical:
		return "Physical"
	case Logical:
		return "Logical"
	case Combined:
		return "Combined"
	default:
		return "Unknown"
	}
}

// Formula evaluates a failure probability or an output error rate.
type Formula func(inputErrorRate, cliffordErrorRate, readoutErrorRate float64) float64

// Resources are the qubits and qubit cycles one unit occupies.
type Resources struct {
	NumUnitQubits            uint64 `yaml:"numUnitQubits"`
	DurationInQubitCycleTime uint64 `yaml:"durationInQubitCycleTime"`
}

// Template describes a distillation protocol independently of the qubits it
// runs on.
type Template struct {
	Name               string
	NumInputStates     uint64
	NumOutputStates    uint64
	FailureProbability Formula
	OutputErrorRate    Formula
	Type               UnitType

	// PhysicalSpec is required for Physical and Combined templates.
	PhysicalSpec *Resources
	// LogicalSpec is required for Logical and Combined templates.
	LogicalSpec *Resources
	// LogicalFirstRoundSpec replaces LogicalSpec when the template runs the
	// first round on logical qubits.
	LogicalFirstRoundSpec *Resources
}
