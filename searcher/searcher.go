// SPDX-License-Identifier: MIT
package searcher

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NotFound is returned by BinaryIndex when the target is absent.
const NotFound = -1

// Linear reports whether target occurs in s, scanning left to right.
// Complexity: O(n) time, O(1) space.
func Linear[T constraints.Ordered](s []T, target T) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}

	return false
}

// Binary reports whether target occurs in the ascending slice sorted.
// Complexity: O(log n) time, O(1) space.
func Binary[T constraints.Ordered](sorted []T, target T) bool {
	return BinaryIndex(sorted, target) != NotFound
}

// BinaryIndex returns an index i with sorted[i] == target, or NotFound.
// With duplicates, any matching index may be returned.
//
// Implementation:
//   - Keep an inclusive window [lo, hi]; test mid = lo + (hi-lo)/2
//     (overflow-safe form of (lo+hi)/2).
//   - Equal ⇒ done; target smaller ⇒ hi = mid-1; otherwise lo = mid+1.
//   - "Smaller" is cmp.Less, the order the sorter package produces (NaN
//     first). Matching stays ==, so a NaN target is never found, exactly as
//     in Linear.
func BinaryIndex[T constraints.Ordered](sorted []T, target T) int {
	lo, hi := 0, len(sorted)-1
	var mid int
	for lo <= hi {
		mid = lo + (hi-lo)/2
		switch {
		case sorted[mid] == target:
			return mid
		case cmp.Less(target, sorted[mid]):
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return NotFound
}
