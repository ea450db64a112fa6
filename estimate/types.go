package estimate

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// Sentinel errors returned by Estimate.
var (
	// ErrAlgorithmHasNoResources indicates an overhead with neither cycles
	// nor magic states.
	ErrAlgorithmHasNoResources = errors.New("estimate: algorithm requires neither cycles nor magic states")

	// ErrCannotComputeMagicStates matches every *CannotComputeMagicStatesError.
	ErrCannotComputeMagicStates = errors.New("estimate: cannot compute magic states")

	// ErrMaxDurationTooSmall indicates that no estimate fits the duration
	// bound.
	ErrMaxDurationTooSmall = errors.New("estimate: max duration too small")

	// ErrMaxPhysicalQubitsTooSmall indicates that no estimate fits the
	// qubit bound.
	ErrMaxPhysicalQubitsTooSmall = errors.New("estimate: max physical qubits too small")

	// ErrMultipleMagicStatesNotSupported indicates a constrained estimate
	// with more than one magic-state type.
	ErrMultipleMagicStatesNotSupported = errors.New("estimate: constrained estimates support a single magic-state type")

	// ErrBothConstraints indicates that both a duration and a qubit bound
	// were given.
	ErrBothConstraints = errors.New("estimate: max duration and max physical qubits are mutually exclusive")

	// ErrInvalidLogicalDepthFactor indicates a logical depth factor below 1.
	ErrInvalidLogicalDepthFactor = errors.New("estimate: logical depth factor must be at least 1")
)

// CannotComputeMagicStatesError reports an error rate no configuration can
// reach.
type CannotComputeMagicStatesError struct {
	Rate float64
	Err  error
}

// Error implements error.
func (e *CannotComputeMagicStatesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("estimate: cannot compute magic states for error rate %g: %v", e.Rate, e.Err)
	}

	return fmt.Sprintf("estimate: cannot compute magic states for error rate %g", e.Rate)
}

// Is matches ErrCannotComputeMagicStates.
func (e *CannotComputeMagicStatesError) Is(target error) bool {
	return target == ErrCannotComputeMagicStates
}

// Unwrap exposes the cause.
func (e *CannotComputeMagicStatesError) Unwrap() error { return e.Err }

// ErrorBudget splits the tolerated failure probability of the algorithm.
type ErrorBudget struct {
	Logical     float64 `json:"logical" yaml:"logical"`
	MagicStates float64 `json:"tstates" yaml:"magicStates"`
	Rotations   float64 `json:"rotations" yaml:"rotations"`
}

// Total is the sum of all parts.
func (b ErrorBudget) Total() float64 { return b.Logical + b.MagicStates + b.Rotations }

// ErrorBudgetStrategy controls whether unused budget is redistributed.
type ErrorBudgetStrategy int

const (
	// Static keeps the budget split as given.
	Static ErrorBudgetStrategy = iota

	// PruneLogicalAndRotations hands the logical and rotation budget left
	// unused at the chosen code distance to the magic states.
	PruneLogicalAndRotations
)

// String returns the serialized strategy name.
func (s ErrorBudgetStrategy) String() string {
	if s == PruneLogicalAndRotations {
		return "pruneLogicalAndRotations"
	}

	return "static"
}

// Overhead is the logical resource count of an algorithm.
type Overhead interface {
	// LogicalQubits the algorithm occupies.
	LogicalQubits() uint64

	// LogicalDepth is the minimal number of logical cycles.
	LogicalDepth(budget *ErrorBudget) uint64

	// NumMagicStates of the given type the algorithm consumes.
	NumMagicStates(budget *ErrorBudget, typeIndex int) uint64
}

// BudgetPruner is implemented by overheads that can shrink their share of
// the error budget.
type BudgetPruner interface {
	PruneErrorBudget(budget *ErrorBudget, strategy ErrorBudgetStrategy)
}

// Factory produces magic states.
type Factory interface {
	PhysicalQubits() uint64
	// Duration of one run in ns.
	Duration() uint64
	// NumOutputStates delivered by one run.
	NumOutputStates() uint64
	// MaxCodeDistance is the largest code distance the factory uses.
	MaxCodeDistance() uint64
	// NormalizedVolume is qubits × duration per output state.
	NormalizedVolume() float64
}

// FactoryBuilder proposes factories for a target output error rate.
type FactoryBuilder interface {
	NumMagicStateTypes() int

	// FindFactories returns the candidates reaching outputErrorRate with code
	// distances up to maxCodeDistance. An empty result means none fit at
	// this distance; an error means none can be computed at all.
	FindFactories(
		ctx context.Context,
		ec qec.ErrorCorrection,
		q *qubit.PhysicalQubit,
		magicStateType int,
		outputErrorRate float64,
		maxCodeDistance uint64,
	) ([]Factory, error)
}
