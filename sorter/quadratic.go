// SPDX-License-Identifier: MIT
// File: quadratic.go
// Role: the O(n²) textbook sorts (Bubble, Selection, Insertion).
//
// Determinism:
//   - All routines are deterministic for a fixed input.
//
// Allocation:
//   - None. Every routine works in place on the caller's slice.
//
// Ordering:
//   - Comparisons go through cmp.Less: NaN sorts before every other float,
//     so float slices containing NaN still come out totally ordered.
package sorter

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Bubble sorts s in place by repeated adjacent compare-and-swap passes.
//
// Implementation:
//   - Stage 1: For pass p = 0..n-2, walk j over the unsorted prefix [0, n-1-p).
//   - Stage 2: Swap s[j] and s[j+1] whenever s[j+1] orders before s[j].
//   - Stage 3: Stop early when a full pass performs no swap.
//
// Complexity:
//   - Time O(n²) worst/average, O(n) on already sorted input. Space O(1).
func Bubble[T constraints.Ordered](s []T) {
	n := len(s)
	var swapped bool
	for p := 0; p < n-1; p++ {
		swapped = false
		for j := 0; j < n-1-p; j++ {
			if cmp.Less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts s in place by selecting the minimum of the unsorted suffix
// and swapping it into position i.
//
// Complexity:
//   - Time O(n²) in every case, at most n-1 swaps. Space O(1).
//
// Notes:
//   - Not stable: a long-distance swap may reorder equal keys.
func Selection[T constraints.Ordered](s []T) {
	n := len(s)
	var minIdx int
	for i := 0; i < n-1; i++ {
		minIdx = i
		for j := i + 1; j < n; j++ {
			if cmp.Less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// Insertion sorts s in place by inserting each element into the sorted prefix.
// Equal keys keep their relative order (stable).
//
// Complexity:
//   - Time O(n²) worst, O(n) on sorted input. Space O(1).
func Insertion[T constraints.Ordered](s []T) {
	InsertionFunc(s, cmp.Less[T])
}

// InsertionFunc is Insertion with a caller-supplied strict "less" relation.
// An element moves left only while less(current, predecessor) holds, so
// elements that compare equal are never swapped past each other.
//
// It exists for records sorted by a key (e.g. stability checks with tagged
// values); the list container itself always uses natural ordering.
func InsertionFunc[E any](s []E, less func(a, b E) bool) {
	var (
		cur E
		j   int
	)
	for i := 1; i < len(s); i++ {
		cur = s[i]
		j = i - 1
		for j >= 0 && less(cur, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = cur
	}
}

// IsSorted reports whether s is in non-decreasing order (NaN first).
func IsSorted[T constraints.Ordered](s []T) bool {
	return slices.IsSortedFunc(s, cmp.Compare[T])
}
