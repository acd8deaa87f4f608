// SPDX-License-Identifier: MIT
// Package list provides List[T], a resizable array-backed list (dynamic array)
// with index-based insertion, removal, lookup and membership testing.
//
// 🚀 Model
//
//	A List owns a backing buffer of `capacity` slots. Slots [0, size) hold the
//	live elements in insertion order; slots [size, capacity) are empty. An empty
//	slot is a slot state, never a value, so every value of T is storable unless
//	a forbidden-value rule says otherwise (WithZeroForbidden, WithForbidden).
//
// ✨ Operations
//
//	New(capacity, opts...)     O(1)     ErrInvalidArgument when capacity ≤ 0
//	Add(item)                  O(1)†    ErrInvalidItem
//	Insert(index, item)        O(n)     ErrIndexOutOfRange, ErrInvalidItem
//	Set(index, item)           O(1)     ErrIndexOutOfRange, ErrInvalidItem
//	RemoveAt(index)            O(n)     ErrIndexOutOfRange
//	Remove(item)               O(n)     ErrItemNotFound
//	Get(index)                 O(1)     ErrIndexOutOfRange
//	Contains(item)             O(n log n) average (sort a copy, binary search)
//	IndexOf / LastIndexOf      O(n)     NotFound (−1) when absent
//	Size / IsEmpty / Cap       O(1)
//	Clear                      O(capacity)
//	ToSlice                    O(n)     snapshot copy
//	Equal / Hash / String      O(n)
//
//	† amortized; a full buffer grows first.
//
// ⚙️ Growth policy
//
//	Default: capacity' = ⌊capacity·1.5⌋, never less than capacity+1.
//	WithGrowthFactor(f) changes the factor; WithGrowthStep(k) switches to the
//	additive policy capacity' = capacity+k. Add grows when size == capacity;
//	Insert grows when size == capacity or size+1 == capacity.
//
// Contains
//
//	Contains copies the live elements, sorts the copy (sorter.Quick unless
//	WithContainsSorter says otherwise) and binary-searches it: O(n log n)
//	per call, against the O(n) scan IndexOf uses. Both paths always agree on
//	the answer.
//
// Concurrency
//
//	None. A List must not be shared between goroutines without external
//	synchronization.
//
// Errors:
//
//	ErrInvalidArgument – non-positive initial capacity
//	ErrInvalidItem     – forbidden value passed to Add/Insert/Set
//	ErrIndexOutOfRange – index outside [0,size) (or [0,size] for Insert)
//	ErrItemNotFound    – Remove of an absent value
package list
