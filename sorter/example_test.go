package sorter_test

import (
	"fmt"

	"github.com/katalvlaran/arraylist/sorter"
)

// ExampleQuick sorts a small slice in place.
func ExampleQuick() {
	data := []int{5, 2, 9, 1, 5, 6}
	sorter.Quick(data)
	fmt.Println(data)
	// Output: [1 2 5 5 6 9]
}

// ExampleAlgorithms runs every registered sorter over its own copy.
func ExampleAlgorithms() {
	src := []int{3, 1, 2}
	for _, a := range sorter.Algorithms() {
		cp := append([]int(nil), src...)
		a.Sort(cp)
		fmt.Printf("%-9s %v\n", a.Name, cp)
	}
	// Output:
	// bubble    [1 2 3]
	// selection [1 2 3]
	// insertion [1 2 3]
	// quick     [1 2 3]
}
