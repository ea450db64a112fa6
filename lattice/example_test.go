package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/qre/lattice"
)

// ExampleSearch finds the cheapest index pair whose weighted sum reaches 10.
func ExampleSearch() {
	point, ok := lattice.Search(2, []int{0, 0}, []int{7, 7}, func(p []int) bool {
		return p[0]*2+p[1] < 10
	})
	fmt.Println(point, ok)
	// Output:
	// [2 6] true
}

// ExampleSwitchToNonComparable shows the carry applied after a rejection.
func ExampleSwitchToNonComparable() {
	current := []int{1, 3, 5}
	ok := lattice.SwitchToNonComparable(current, []int{1, 2, 3}, []int{10, 10, 10})
	fmt.Println(current, ok)
	// Output:
	// [1 4 4] true
}
