// SPDX-License-Identifier: MIT
// File: methods_render.go
// Role: equality, hashing, textual and JSON forms, gods container surface.
package list

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	json "github.com/goccy/go-json"
)

// Compile-time check: a List is a gods container.
var _ containers.Container = (*List[int])(nil)

// Equal reports whether other holds the same elements in the same order.
// Capacity, growth policy and the contents of empty slots are ignored.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil || l.size != other.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		if l.items[i].value != other.items[i].value {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a digest of the size and the elements in order.
// Equal lists hash equally regardless of capacity.
func (l *List[T]) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(l.size))
	_, _ = h.Write(buf[:])

	var zero T
	for i := 0; i < l.size; i++ {
		v := l.items[i].value
		// All zero forms (0, -0.0, "") share one encoding so Equal ⇒ same Hash.
		if v == zero {
			_, _ = h.Write([]byte{0})
			continue
		}
		_, _ = h.Write([]byte("\x01" + utils.ToString(v) + "\x00"))
	}

	return h.Sum64()
}

// String renders the list as "[ e0, e1, ..., en ]"; an empty list is "[  ]".
// Elements are formatted with gods utils.ToString (shortest float form).
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(utils.ToString(l.items[i].value))
	}
	sb.WriteString(" ]")

	return sb.String()
}

// Empty reports whether the list holds no elements (gods containers.Container).
func (l *List[T]) Empty() bool { return l.IsEmpty() }

// Values returns the elements as []interface{} (gods containers.Container).
func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.items[i].value
	}

	return out
}

// MarshalJSON encodes the live elements as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.live())
}

// UnmarshalJSON replaces the contents with the elements of a JSON array.
//
// A List that was never constructed (zero value) is initialized with default
// options and capacity max(len, 1). Otherwise the existing configuration and
// capacity are kept and the list grows as needed.
//
// Errors:
//   - decoding errors from the JSON codec.
//   - ErrInvalidItem: an element matches the forbidden-value rule; the list
//     is left unchanged.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w", err)
	}
	if l.items == nil {
		l.configure()
		l.items = make([]slot[T], max(len(values), 1))
	}
	for _, v := range values {
		if err := l.checkItem("UnmarshalJSON", v); err != nil {
			return err
		}
	}

	l.Clear()
	for _, v := range values {
		if _, err := l.Add(v); err != nil {
			return err
		}
	}

	return nil
}
