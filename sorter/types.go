// SPDX-License-Identifier: MIT
// Package sorter: shared function type and the named algorithm registry.
package sorter

import "golang.org/x/exp/constraints"

// Func sorts s in place into non-decreasing natural order.
type Func[T constraints.Ordered] func(s []T)

// Algorithm pairs a human-readable name with an int sorter.
// The bench runner iterates Algorithms() and labels timings by Name.
type Algorithm struct {
	// Name is the stable, lower-case label ("bubble", "selection", ...).
	Name string

	// Sort is the in-place sorting routine.
	Sort Func[int]
}

// Algorithm names, in the order Algorithms() returns them.
const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameQuick     = "quick"
)

// Algorithms returns every sorter instantiated for int, in a fixed order.
// A fresh slice is returned on each call; callers may reorder or filter it.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: NameBubble, Sort: Bubble[int]},
		{Name: NameSelection, Sort: Selection[int]},
		{Name: NameInsertion, Sort: Insertion[int]},
		{Name: NameQuick, Sort: Quick[int]},
	}
}

// Lookup returns the registered int sorter with the given name.
func Lookup(name string) (Algorithm, bool) {
	for _, a := range Algorithms() {
		if a.Name == name {
			return a, true
		}
	}

	return Algorithm{}, false
}
