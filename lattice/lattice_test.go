// Package lattice_test validates the lattice walk primitives and the
// monotone search.
// Focus:
//  1. Literal reference scenarios (increment, carry, search visit order).
//  2. Search totality on random monotone predicates.
//  3. Iterate termination inside the box.
package lattice_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qre/lattice"
)

// recorder wraps a predicate and keeps a copy of every probed point.
type recorder struct {
	visited [][]int
	pred    lattice.Predicate
}

func (r *recorder) probe(point []int) bool {
	r.visited = append(r.visited, slices.Clone(point))

	return r.pred(point)
}

func TestIncrement_LastComponent(t *testing.T) {
	current := []int{0, 1, 2}
	ok := lattice.Increment(current, []int{0, 0, 0}, []int{3, 3, 3})
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 3}, current)
}

func TestIncrement_Maximal(t *testing.T) {
	current := []int{3, 3, 3}
	ok := lattice.Increment(current, []int{0, 1, 2}, []int{3, 3, 3})
	require.False(t, ok)
	require.Equal(t, []int{3, 3, 3}, current, "no mutation when maximal")
}

func TestIncrement_ResetsToLowerBound(t *testing.T) {
	// [0,2,3] -> component 1 grows to 3, component 2 resets to max(left, 3).
	current := []int{0, 2, 3}
	ok := lattice.Increment(current, []int{0, 0, 0}, []int{3, 3, 3})
	require.True(t, ok)
	require.Equal(t, []int{0, 3, 3}, current)
}

func TestSwitchToNonComparable_Reference(t *testing.T) {
	current := []int{1, 3, 5}
	ok := lattice.SwitchToNonComparable(current, []int{1, 2, 3}, []int{10, 10, 10})
	require.True(t, ok)
	require.Equal(t, []int{1, 4, 4}, current)
}

func TestSwitchToNonComparable_CarriesLeft(t *testing.T) {
	current := []int{2, 7, 5}
	ok := lattice.SwitchToNonComparable(current, []int{0, 0, 0}, []int{7, 7, 7})
	require.True(t, ok)
	require.Equal(t, []int{3, 3, 3}, current)
}

func TestSwitchToNonComparable_Exhausted(t *testing.T) {
	current := []int{7, 7, 2}
	require.False(t, lattice.SwitchToNonComparable(current, []int{0, 0, 0}, []int{7, 7, 7}))
	require.Equal(t, []int{7, 7, 2}, current)

	single := []int{4}
	require.False(t, lattice.SwitchToNonComparable(single, []int{0}, []int{7}),
		"a single round has no non-comparable successor")
}

func TestSearch_ReferenceVisitOrder(t *testing.T) {
	rec := &recorder{pred: func(c []int) bool { return c[0]*2+c[1] < 10 }}

	result, ok := lattice.Search(2, []int{0, 0}, []int{7, 7}, rec.probe)
	require.True(t, ok)
	require.Equal(t, []int{2, 6}, result)
	require.Equal(t, [][]int{
		{7, 7}, {0, 0}, {3, 7}, {1, 7}, {2, 7}, {2, 4}, {2, 6}, {2, 5},
	}, rec.visited)
}

func TestSearch_AlwaysTooWeak(t *testing.T) {
	rec := &recorder{pred: func([]int) bool { return true }}

	result, ok := lattice.Search(2, []int{0, 0}, []int{7, 7}, rec.probe)
	require.False(t, ok)
	require.Nil(t, result)
	require.Equal(t, [][]int{{7, 7}}, rec.visited)
}

func TestSearch_LeftSuffices(t *testing.T) {
	rec := &recorder{pred: func([]int) bool { return false }}

	result, ok := lattice.Search(3, []int{1, 2, 3}, []int{5, 5, 5}, rec.probe)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, result)
	require.Len(t, rec.visited, 2)
}

func TestSearch_EmptyBoxSkipsPredicate(t *testing.T) {
	calls := 0
	_, ok := lattice.Search(2, []int{0, 4}, []int{3, 3}, func([]int) bool {
		calls++
		return false
	})
	require.False(t, ok)
	require.Zero(t, calls)
}

func TestSearch_DimensionMismatchPanics(t *testing.T) {
	require.PanicsWithValue(t, lattice.ErrDimensionMismatch, func() {
		lattice.Search(3, []int{0, 0}, []int{1, 1}, func([]int) bool { return false })
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, lattice.Validate(2, []int{0, 1}, []int{1, 1}))
	require.ErrorIs(t, lattice.Validate(2, []int{0}, []int{1, 1}), lattice.ErrDimensionMismatch)
	require.ErrorIs(t, lattice.Validate(1, []int{2}, []int{1}), lattice.ErrEmptyBox)
}

// weightedThreshold builds a monotone predicate: a point is too weak while
// its weighted sum stays below threshold.
func weightedThreshold(weights []int, threshold int) lattice.Predicate {
	return func(p []int) bool {
		sum := 0
		for i, w := range weights {
			sum += w * p[i]
		}

		return sum < threshold
	}
}

func TestSearch_TotalityOnRandomMonotonePredicates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		rounds := 1 + rng.Intn(4)
		left := make([]int, rounds)
		right := make([]int, rounds)
		weights := make([]int, rounds)
		maxSum := 0
		for i := range left {
			left[i] = rng.Intn(4)
			right[i] = left[i] + rng.Intn(8)
			weights[i] = 1 + rng.Intn(3)
			maxSum += weights[i] * right[i]
		}
		pred := weightedThreshold(weights, rng.Intn(maxSum+2))

		result, ok := lattice.Search(rounds, left, right, pred)
		require.Equal(t, !pred(right), ok, "found iff right satisfies the target")
		if !ok {
			continue
		}
		require.False(t, pred(result))
		for i := range result {
			require.GreaterOrEqual(t, result[i], left[i])
			require.LessOrEqual(t, result[i], right[i])
		}
	}
}

func TestIterate_VisitsStrictlyIncreasingPointsInsideBox(t *testing.T) {
	left, right := []int{0, 0, 0}, []int{5, 5, 5}
	pred := weightedThreshold([]int{3, 2, 1}, 14)

	start, ok := lattice.Search(3, left, right, pred)
	require.True(t, ok)

	var visited [][]int
	lattice.Iterate(3, left, right, start, func(p []int) bool {
		visited = append(visited, slices.Clone(p))

		return pred(p)
	})
	require.NotEmpty(t, visited)
	require.Less(t, len(visited), 6*6*6)

	prev := start
	for _, p := range visited {
		require.Equal(t, 1, slices.Compare(p, prev), "walk must move forward: %v after %v", p, prev)
		for i := range p {
			require.GreaterOrEqual(t, p[i], left[i])
			require.LessOrEqual(t, p[i], right[i])
		}
		prev = p
	}
}

func TestIterate_StartsPastInitial(t *testing.T) {
	var first []int
	lattice.Iterate(2, []int{0, 0}, []int{2, 2}, []int{0, 1}, func(p []int) bool {
		if first == nil {
			first = slices.Clone(p)
		}
		return true
	})
	require.Equal(t, []int{0, 2}, first)
}

func TestIterate_ClampsInitial(t *testing.T) {
	var first []int
	lattice.Iterate(2, []int{1, 1}, []int{3, 3}, []int{0, 9}, func(p []int) bool {
		if first == nil {
			first = slices.Clone(p)
		}
		return true
	})
	// clamp([0,9]) = [1,3]; successor is [2,2].
	require.Equal(t, []int{2, 2}, first)
}
