package lattice

// lowerBound returns the smallest value component i may take given the
// components before it: max(left[i], current[i-1]), clamped to right[i].
func lowerBound(current, left, right []int, i int) int {
	lo := left[i]
	if i > 0 && current[i-1] > lo {
		lo = current[i-1]
	}
	if lo > right[i] {
		lo = right[i]
	}

	return lo
}

// resetFrom sets every component after i to its lower bound.
func resetFrom(current, left, right []int, i int) {
	for j := i + 1; j < len(current); j++ {
		current[j] = lowerBound(current, left, right, j)
	}
}

// Increment advances current to its lexicographic successor inside the box.
//
// The last component that is still below right[i] is incremented and every
// component after it is reset to its lower bound. Returns false, leaving
// current untouched, when current is already maximal.
func Increment(current, left, right []int) bool {
	for i := len(current) - 1; i >= 0; i-- {
		if current[i] < right[i] {
			current[i]++
			resetFrom(current, left, right, i)

			return true
		}
	}

	return false
}

// SwitchToNonComparable moves current to the next point that does not
// dominate it.
//
// It is called after a point was rejected: every point dominating the
// rejected one is rejected too, so the walk carries into the round before
// the last one (further left over rounds already at right), increments it and
// resets all later rounds to their lower bound. Returns false when every
// round before the last is at right.
//
// Example: [1,3,5] with left [1,2,3] and right [10,10,10] becomes [1,4,4].
func SwitchToNonComparable(current, left, right []int) bool {
	for i := len(current) - 2; i >= 0; i-- {
		if current[i] < right[i] {
			current[i]++
			resetFrom(current, left, right, i)

			return true
		}
	}

	return false
}

// clampInto copies initial into a fresh buffer, clamping each component
// into [left[i], right[i]].
func clampInto(initial, left, right []int) []int {
	out := make([]int, len(initial))
	for i, v := range initial {
		switch {
		case v < left[i]:
			v = left[i]
		case v > right[i]:
			v = right[i]
		}
		out[i] = v
	}

	return out
}

// Iterate walks the box forward starting one step past initial.
//
// At every visited point pred decides the next step: true grows the point
// (Increment), false jumps to a non-comparable point (SwitchToNonComparable).
// The walk stops once no next point exists. Iterate panics with
// ErrDimensionMismatch when the vector lengths disagree.
func Iterate(numRounds int, left, right, initial []int, pred Predicate) {
	if len(initial) != numRounds {
		panic(ErrDimensionMismatch)
	}
	if err := Validate(numRounds, left, right); err != nil {
		if err == ErrEmptyBox {
			return
		}
		panic(err)
	}

	current := clampInto(initial, left, right)
	if !Increment(current, left, right) {
		return
	}

	var next bool
	for {
		if pred(current) {
			next = Increment(current, left, right)
		} else {
			next = SwitchToNonComparable(current, left, right)
		}
		if !next {
			return
		}
	}
}

// Search finds the lexicographically smallest point in [left, right] at which
// pred reports false.
//
// Probe order:
//  1. right — if pred(right) is true even the most expensive point is too
//     weak, so nothing in the box can satisfy the target: (nil, false).
//  2. left — if pred(left) is false the cheapest point already suffices.
//  3. One binary search per component, from the first round to the last;
//     component i is searched between its lower bound and its current value
//     while later components stay at right.
//
// The returned slice is freshly allocated. Search panics with
// ErrDimensionMismatch when the vector lengths disagree; an empty box yields
// (nil, false) without calling pred.
func Search(numRounds int, left, right []int, pred Predicate) ([]int, bool) {
	if err := Validate(numRounds, left, right); err != nil {
		if err == ErrEmptyBox {
			return nil, false
		}
		panic(err)
	}

	current := make([]int, numRounds)
	copy(current, right)
	if pred(current) {
		return nil, false
	}

	copy(current, left)
	if !pred(current) {
		return current, true
	}

	// Invariant: pred(current) is false before each component is searched.
	copy(current, right)
	var lo, hi, mid int
	for i := 0; i < numRounds; i++ {
		lo, hi = lowerBound(current, left, right, i), current[i]
		for lo < hi {
			mid = (lo + hi) / 2
			current[i] = mid
			if pred(current) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		current[i] = hi
	}

	return current, true
}
