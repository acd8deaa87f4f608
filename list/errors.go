// SPDX-License-Identifier: MIT
// Package list: sentinel error set.
// Methods return these wrapped with the operation name and offending index
// (fmt.Errorf("%w")); callers match them with errors.Is.

package list

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by New for a non-positive initial capacity.
	ErrInvalidArgument = errors.New("list: illegal capacity")

	// ErrInvalidItem indicates an attempt to store a forbidden value.
	ErrInvalidItem = errors.New("list: illegal list item")

	// ErrIndexOutOfRange indicates an index outside the live range.
	ErrIndexOutOfRange = errors.New("list: index out of range")

	// ErrItemNotFound indicates Remove was asked for a value not in the list.
	ErrItemNotFound = errors.New("list: item not found")
)

// indexErrorf tags ErrIndexOutOfRange with the operation, index and size.
func indexErrorf(op string, index, size int) error {
	return fmt.Errorf("%s: index %d, size %d: %w", op, index, size, ErrIndexOutOfRange)
}

// itemErrorf tags err with the operation and the offending item.
func itemErrorf(op string, item any, err error) error {
	return fmt.Errorf("%s(%v): %w", op, item, err)
}
