// Package arraylist is a small collections playground: a resizable
// array-backed list plus the elementary sorting and searching algorithms it
// is built on.
//
// 🚀 What is inside?
//
//	list/     - List[T]: dynamic array with index-based insert/remove/get/set,
//	            sort-then-binary-search Contains, Equal/Hash/String, JSON codec
//	sorter/   - Bubble, Selection, Insertion (stable), Quick (Lomuto, iterative)
//	searcher/ - Linear and Binary search
//	bench/    - timed runs of every sorter on a seeded random dataset
//	cmd/      - arraylist-demo and arraylist-bench entry points
//
// Quick example:
//
//	l, _ := list.New[int](4)
//	l.Add(0); l.Add(1); l.Add(2)
//	l.Insert(1, 99)
//	fmt.Println(l) // [ 0, 99, 1, 2 ]
//
//	go get github.com/katalvlaran/arraylist
package arraylist
