// SPDX-License-Identifier: MIT
// File: quick.go
// Role: Quicksort with the Lomuto partition scheme.
//
// The classic formulation recurses on both halves. Here the recursion is
// replaced by an explicit stack of [lo, hi] ranges; the larger half is pushed
// and the smaller half is processed first, so the stack never holds more than
// O(log n) ranges even on adversarial (already sorted) input.
package sorter

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// span is an inclusive index range [lo, hi] awaiting partitioning.
type span struct{ lo, hi int }

// Quick sorts s in place using Lomuto partitioning with the last element of
// each range as pivot.
//
// Implementation:
//   - Stage 1: Push [0, n-1].
//   - Stage 2: Pop a range; while it holds ≥2 elements, partition it around
//     s[hi], push the larger side and continue with the smaller side.
//
// Complexity:
//   - Time O(n log n) average, O(n²) worst (sorted or constant input).
//   - Space O(log n) for the range stack.
//
// Notes:
//   - Not stable.
func Quick[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}

	stack := make([]span, 0, 16)
	stack = append(stack, span{lo: 0, hi: len(s) - 1})

	var (
		cur span
		p   int
	)
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for cur.lo < cur.hi {
			p = partition(s, cur.lo, cur.hi)
			// Keep the smaller side in the loop, defer the larger one.
			if p-cur.lo < cur.hi-p {
				stack = append(stack, span{lo: p + 1, hi: cur.hi})
				cur.hi = p - 1
			} else {
				stack = append(stack, span{lo: cur.lo, hi: p - 1})
				cur.lo = p + 1
			}
		}
	}
}

// partition rearranges s[lo..hi] so that every element not ordered after the
// pivot (= s[hi]) precedes it and every larger element follows; returns the
// pivot's index. NaN orders first (cmp.Less).
func partition[T constraints.Ordered](s []T, lo, hi int) int {
	pivot := s[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !cmp.Less(pivot, s[j]) {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[hi] = s[hi], s[i+1]

	return i + 1
}
