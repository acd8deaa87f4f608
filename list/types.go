// SPDX-License-Identifier: MIT
// Package list declares List, its slot representation, the functional options
// and the New constructor.
package list

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/arraylist/sorter"
)

// NotFound is returned by IndexOf and LastIndexOf for absent values.
const NotFound = -1

// Growth defaults (named, no magic numbers inline).
const (
	// DefaultGrowthFactor is the multiplicative growth factor used by New.
	DefaultGrowthFactor = 1.5

	// minGrowthFactor is the exclusive lower bound accepted by WithGrowthFactor.
	minGrowthFactor = 1.0
)

// slot is one cell of the backing buffer: ok == false marks an empty slot.
type slot[T any] struct {
	value T
	ok    bool
}

// List is a resizable array-backed list of naturally ordered values.
//
// The zero value is not ready for use; construct with New.
// A List is not safe for concurrent use.
type List[T constraints.Ordered] struct {
	// Storage: len(items) is the capacity; items[:size] are occupied.
	items []slot[T]
	size  int

	// Growth policy: step > 0 selects additive growth, otherwise factor.
	factor float64
	step   int

	// Forbidden-value rule; inactive unless forbid is set.
	forbid    bool
	forbidden T

	// sort orders the scratch copy inside Contains.
	sort sorter.Func[T]
}

// Option configures a List before its storage is allocated.
// Options are applied in order; later options override earlier ones.
type Option[T constraints.Ordered] func(l *List[T])

// WithGrowthFactor selects multiplicative growth: capacity' = ⌊capacity·f⌋,
// at least capacity+1. Panics if f ≤ 1.
func WithGrowthFactor[T constraints.Ordered](f float64) Option[T] {
	if !(f > minGrowthFactor) {
		panic(fmt.Sprintf("list: WithGrowthFactor(%v): factor must be > 1", f))
	}
	return func(l *List[T]) {
		l.factor = f
		l.step = 0
	}
}

// WithGrowthStep selects additive growth: capacity' = capacity+k. Panics if k ≤ 0.
func WithGrowthStep[T constraints.Ordered](k int) Option[T] {
	if k <= 0 {
		panic(fmt.Sprintf("list: WithGrowthStep(%d): step must be > 0", k))
	}
	return func(l *List[T]) { l.step = k }
}

// WithZeroForbidden makes the zero value of T (0, "", ...) non-storable.
// This is the list's equivalent of rejecting a null element.
func WithZeroForbidden[T constraints.Ordered]() Option[T] {
	var zero T
	return WithForbidden(zero)
}

// WithForbidden makes v non-storable: Add, Insert and Set reject it with
// ErrInvalidItem and Contains(v) always reports false.
func WithForbidden[T constraints.Ordered](v T) Option[T] {
	return func(l *List[T]) {
		l.forbid = true
		l.forbidden = v
	}
}

// WithContainsSorter replaces the sorter Contains applies to its scratch copy.
// Panics on nil.
func WithContainsSorter[T constraints.Ordered](fn sorter.Func[T]) Option[T] {
	if fn == nil {
		panic("list: WithContainsSorter(nil)")
	}
	return func(l *List[T]) { l.sort = fn }
}

// New creates an empty List with room for initialCapacity elements.
//
// Implementation:
//   - Stage 1: Reject initialCapacity ≤ 0 (ErrInvalidArgument).
//   - Stage 2: Install defaults (factor 1.5, sorter.Quick), apply opts in order.
//   - Stage 3: Allocate initialCapacity empty slots.
//
// Errors:
//   - ErrInvalidArgument: initialCapacity ≤ 0.
//
// Complexity:
//   - Time O(initialCapacity + len(opts)), Space O(initialCapacity).
func New[T constraints.Ordered](initialCapacity int, opts ...Option[T]) (*List[T], error) {
	if initialCapacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", initialCapacity, ErrInvalidArgument)
	}

	l := &List[T]{}
	l.configure(opts...)
	l.items = make([]slot[T], initialCapacity)

	return l, nil
}

// configure installs the defaults and then applies opts.
func (l *List[T]) configure(opts ...Option[T]) {
	l.factor = DefaultGrowthFactor
	l.sort = sorter.Quick[T]
	for _, opt := range opts {
		opt(l)
	}
}
