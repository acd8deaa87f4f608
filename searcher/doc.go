// SPDX-License-Identifier: MIT
// Package searcher provides membership tests over slices of ordered values.
//
//   - Linear - scans every element; works on any slice. O(n).
//   - Binary - halves the candidate range; requires ascending input. O(log n).
//
// "Ascending" means the cmp.Less order: NaN before every other float.
// Binary on unsorted input returns an unspecified result; establishing the
// precondition is the caller's job (the list container sorts a scratch copy
// before calling it).
package searcher
