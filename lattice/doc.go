// Package lattice implements a monotone search over vectors of ordered
// indices ("code-distance index vectors").
//
// A point is a []int with one component per distillation round; component i
// indexes into a sorted list of candidate code distances. The search space is
// the box [left, right] restricted to points whose components never decrease
// from one round to the next (a later round never runs at a smaller code
// distance than the round before it).
//
// Dominance:
//
//	A dominates B iff A[i] >= B[i] for every i. Growing any component makes a
//	point at least as reliable and at least as costly.
//
// Predicate convention:
//
//	A Predicate reports whether a point can still be improved by growing its
//	indices, i.e. true means "target not met yet, go right" and false means
//	"target met, or not worth growing". Monotonicity is assumed: if
//	pred(A) is false and B dominates A, then pred(B) is false as well.
//
// Operations:
//
//   - Increment             — lexicographic successor inside the box.
//   - SwitchToNonComparable — carry into an earlier round after a rejection,
//     landing on a point that does not dominate the rejected one.
//   - Search                — right probe, left probe, then a per-component
//     binary search; O(rounds · log(width)) probes.
//   - Iterate               — forward walk from a search result that skips
//     every point dominating a rejected point.
//
// Complexity:
//   - Search:  O(Σ log(right[i]-left[i]+1)) predicate calls.
//   - Iterate: bounded by the number of points in the box; in practice a
//     small multiple of the frontier size.
//   - Memory:  O(rounds) per call; the search never retains the buffers it
//     mutates.
//
// Example:
//
//	point, ok := lattice.Search(2, []int{0, 0}, []int{7, 7}, func(p []int) bool {
//	    return p[0]*2+p[1] < 10 // still too weak
//	})
//	// point == [2 6], ok == true
package lattice
