package searcher_test

import (
	"fmt"

	"github.com/katalvlaran/arraylist/searcher"
)

// ExampleBinary searches an ascending slice.
func ExampleBinary() {
	sorted := []int{1, 4, 8, 15, 16, 23, 42}
	fmt.Println(searcher.Binary(sorted, 15), searcher.Binary(sorted, 5))
	// Output: true false
}
