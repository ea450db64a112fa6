package layout

import "errors"

// Sentinel errors for logical counts and budgets.
var (
	// ErrNoQubits indicates an algorithm without qubits.
	ErrNoQubits = errors.New("layout: algorithm has no qubits")

	// ErrRotationDepth indicates a rotation depth inconsistent with the
	// rotation count.
	ErrRotationDepth = errors.New("layout: rotation depth must be in [1, rotationCount] when rotations are present")

	// ErrMissingRotationBudget indicates rotations without rotation budget.
	ErrMissingRotationBudget = errors.New("layout: rotations require a positive rotation error budget")

	// ErrInvalidBudget indicates a total budget outside (0, 1).
	ErrInvalidBudget = errors.New("layout: error budget must be in (0, 1)")
)

// LogicalCounts are the pre-layout logical resources of an algorithm.
type LogicalCounts struct {
	NumQubits        uint64 `json:"numQubits" yaml:"numQubits"`
	TCount           uint64 `json:"tCount" yaml:"tCount"`
	RotationCount    uint64 `json:"rotationCount" yaml:"rotationCount"`
	RotationDepth    uint64 `json:"rotationDepth" yaml:"rotationDepth"`
	CCZCount         uint64 `json:"cczCount" yaml:"cczCount"`
	CCIXCount        uint64 `json:"ccixCount" yaml:"ccixCount"`
	MeasurementCount uint64 `json:"measurementCount" yaml:"measurementCount"`
}

// Validate checks qubits and rotation consistency.
func (c LogicalCounts) Validate() error {
	if c.NumQubits == 0 {
		return ErrNoQubits
	}
	if (c.RotationCount == 0) != (c.RotationDepth == 0) || c.RotationDepth > c.RotationCount {
		return ErrRotationDepth
	}

	return nil
}
