// SPDX-License-Identifier: MIT
// Package sorter implements the elementary in-place comparison sorts used by
// the arraylist module: Bubble, Selection, Insertion and Quick.
//
// 🚀 What is inside?
//
//	Every sorter rearranges a []T in place into non-decreasing natural order,
//	where T satisfies constraints.Ordered (integers, floats, strings).
//	  • Bubble    - adjacent compare-and-swap passes, early exit on a clean pass
//	  • Selection - repeatedly select the minimum of the unsorted suffix
//	  • Insertion - grow a sorted prefix one element at a time (stable)
//	  • Quick     - Lomuto partition, pivot = last element, explicit stack
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arraylist/sorter"
//
//	data := []int{5, 2, 9, 1}
//	sorter.Quick(data) // data == [1 2 5 9]
//
//	for _, a := range sorter.Algorithms() {
//	  cp := slices.Clone(data)
//	  a.Sort(cp)
//	}
//
// Ordering:
//
//	Natural order as defined by cmp.Less: floats order NaN first, then
//	-Inf ... +Inf. -0 and +0 compare equal.
//
// Complexity:
//
//   - Bubble, Selection, Insertion: Time O(n²), Space O(1).
//   - Quick: Time O(n log n) average, O(n²) worst; Space O(log n) stack.
//
// Stability:
//
//	Only Insertion (and InsertionFunc) is stable. Bubble is stable in practice
//	but not part of the contract; Selection and Quick are not stable.
package sorter
