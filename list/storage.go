// SPDX-License-Identifier: MIT
// File: storage.go
// Role: backing-buffer mechanics (validation, growth, shifts).
//
// Invariants maintained here:
//   - 0 ≤ size ≤ len(items), len(items) > 0.
//   - items[i].ok == (i < size).
package list

// checkIndex validates 0 ≤ index < size for the operation op.
func (l *List[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= l.size {
		return indexErrorf(op, index, l.size)
	}

	return nil
}

// checkItem rejects the forbidden value, if one is configured.
func (l *List[T]) checkItem(op string, item T) error {
	if l.isForbidden(item) {
		return itemErrorf(op, item, ErrInvalidItem)
	}

	return nil
}

// isForbidden reports whether item matches the forbidden-value rule.
func (l *List[T]) isForbidden(item T) bool {
	return l.forbid && item == l.forbidden
}

// nextCapacity applies the growth policy to the current capacity.
// The result is always strictly larger than the input.
func (l *List[T]) nextCapacity() int {
	c := len(l.items)
	if l.step > 0 {
		return c + l.step
	}
	next := int(float64(c) * l.factor)
	if next <= c {
		next = c + 1
	}

	return next
}

// grow reallocates the backing buffer at the next capacity.
// Live elements keep their indices; the new tail slots are empty.
// The new buffer is filled completely before it replaces the old one.
func (l *List[T]) grow() {
	next := make([]slot[T], l.nextCapacity())
	copy(next, l.items[:l.size])
	l.items = next
}

// shiftRight moves items[index:size] one slot to the right and empties
// items[index]. The caller guarantees size < capacity.
func (l *List[T]) shiftRight(index int) {
	for i := l.size; i > index; i-- {
		l.items[i] = l.items[i-1]
	}
	l.items[index] = slot[T]{}
}

// shiftLeft moves items[index+1:size] one slot to the left and empties the
// last live slot. The caller guarantees 0 ≤ index < size.
func (l *List[T]) shiftLeft(index int) {
	for i := index; i < l.size-1; i++ {
		l.items[i] = l.items[i+1]
	}
	l.items[l.size-1] = slot[T]{}
}

// live copies the occupied prefix into a fresh []T of length size.
func (l *List[T]) live() []T {
	out := make([]T, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.items[i].value
	}

	return out
}
