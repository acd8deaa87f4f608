// SPDX-License-Identifier: MIT
// File: methods.go
// Role: mutating operations (Add, Insert, Set, RemoveAt, Remove, Clear).
//
// Every method validates its inputs before touching storage, so a returned
// error always leaves the List unchanged.
package list

// Add appends item at the end of the list and returns it.
//
// Implementation:
//   - Stage 1: Reject a forbidden item (ErrInvalidItem).
//   - Stage 2: Grow when size == capacity.
//   - Stage 3: Store at index size and increment size.
//
// Complexity:
//   - Time O(1) amortized, O(n) when growing.
func (l *List[T]) Add(item T) (T, error) {
	if err := l.checkItem("Add", item); err != nil {
		var zero T
		return zero, err
	}
	if l.size == len(l.items) {
		l.grow()
	}
	l.items[l.size] = slot[T]{value: item, ok: true}
	l.size++

	return item, nil
}

// Insert places item at index, shifting items[index:size] one position right,
// and returns it. Insert(Size(), x) is equivalent to Add(x).
//
// Implementation:
//   - Stage 1: Validate 0 ≤ index ≤ size (ErrIndexOutOfRange).
//   - Stage 2: Validate item (ErrInvalidItem).
//   - Stage 3: index == size ⇒ delegate to Add.
//   - Stage 4: Grow when size == capacity or size+1 == capacity, shift right,
//     store, increment size.
//
// Complexity:
//   - Time O(n-index) plus O(n) when growing.
func (l *List[T]) Insert(index int, item T) (T, error) {
	var zero T
	if index < 0 || index > l.size {
		return zero, indexErrorf("Insert", index, l.size)
	}
	if err := l.checkItem("Insert", item); err != nil {
		return zero, err
	}
	if index == l.size {
		return l.Add(item)
	}

	if l.size == len(l.items) || l.size+1 == len(l.items) {
		l.grow()
	}
	l.shiftRight(index)
	l.items[index] = slot[T]{value: item, ok: true}
	l.size++

	return item, nil
}

// Set overwrites the element at index and returns the new item.
// Size is unchanged.
func (l *List[T]) Set(index int, item T) (T, error) {
	var zero T
	if err := l.checkIndex("Set", index); err != nil {
		return zero, err
	}
	if err := l.checkItem("Set", item); err != nil {
		return zero, err
	}
	l.items[index].value = item

	return item, nil
}

// RemoveAt deletes the element at index, shifting the tail one position left,
// and returns the removed element.
//
// Complexity:
//   - Time O(n-index), Space O(1).
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex("RemoveAt", index); err != nil {
		var zero T
		return zero, err
	}
	item := l.items[index].value
	l.shiftLeft(index)
	l.size--

	return item, nil
}

// Remove deletes the first occurrence of item and returns it.
//
// Errors:
//   - ErrItemNotFound: item is not in the list.
func (l *List[T]) Remove(item T) (T, error) {
	index := l.IndexOf(item)
	if index == NotFound {
		var zero T
		return zero, itemErrorf("Remove", item, ErrItemNotFound)
	}

	return l.RemoveAt(index)
}

// Clear discards every element and reallocates the backing buffer at the
// current capacity. Growth history is kept: capacity does not shrink.
func (l *List[T]) Clear() {
	l.size = 0
	l.items = make([]slot[T], len(l.items))
}
