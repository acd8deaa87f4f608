// SPDX-License-Identifier: MIT
// File: methods_query.go
// Role: read-only queries (Get, Contains, IndexOf, LastIndexOf, sizes, ToSlice).
package list

import "github.com/katalvlaran/arraylist/searcher"

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex("Get", index); err != nil {
		var zero T
		return zero, err
	}

	return l.items[index].value, nil
}

// Contains reports whether item is in the list.
//
// Implementation:
//   - Stage 1: A forbidden item is never stored ⇒ false.
//   - Stage 2: Copy the live elements into a scratch slice.
//   - Stage 3: Sort the scratch copy with the configured sorter.
//   - Stage 4: Binary-search the sorted copy.
//
// Complexity:
//   - Time O(n log n) average with the default sorter, Space O(n).
//
// Notes:
//   - The list itself is never reordered; only the scratch copy is sorted.
//   - The result always matches IndexOf(item) != NotFound.
func (l *List[T]) Contains(item T) bool {
	if l.isForbidden(item) || l.size == 0 {
		return false
	}
	scratch := l.live()
	l.sort(scratch)

	return searcher.Binary(scratch, item)
}

// IndexOf returns the index of the first occurrence of item, or NotFound.
// Complexity: O(n) linear scan.
func (l *List[T]) IndexOf(item T) int {
	for i := 0; i < l.size; i++ {
		if l.items[i].value == item {
			return i
		}
	}

	return NotFound
}

// LastIndexOf returns the index of the last occurrence of item, or NotFound.
// Complexity: O(n) linear scan from the end.
func (l *List[T]) LastIndexOf(item T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.items[i].value == item {
			return i
		}
	}

	return NotFound
}

// Size returns the number of elements.
func (l *List[T]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Cap returns the current capacity of the backing buffer.
func (l *List[T]) Cap() int { return len(l.items) }

// ToSlice returns a freshly allocated copy of the elements in order.
// Mutating the result does not affect the list. An empty list yields an
// empty, non-nil slice.
func (l *List[T]) ToSlice() []T { return l.live() }
