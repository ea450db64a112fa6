package lattice

import "errors"

// Sentinel errors returned by lattice validation.
var (
	// ErrDimensionMismatch indicates that current, left and right do not have
	// the same number of components as the requested number of rounds.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrEmptyBox indicates that left[i] > right[i] for some component, so no
	// point lies inside the box.
	ErrEmptyBox = errors.New("lattice: left bound exceeds right bound")
)

// Predicate reports whether a point still needs larger indices.
// The point slice is owned by the search and mutated after the call
// returns; copy it to keep it.
//
// true  – the configuration at point does not meet its target yet and could
// improve by growing a component.
// false – the configuration meets its target (or is not worth growing).
type Predicate func(point []int) bool

// Validate checks that left and right describe a non-empty box with
// numRounds components.
func Validate(numRounds int, left, right []int) error {
	if numRounds <= 0 || len(left) != numRounds || len(right) != numRounds {
		return ErrDimensionMismatch
	}
	for i := 0; i < numRounds; i++ {
		if left[i] > right[i] {
			return ErrEmptyBox
		}
	}

	return nil
}
