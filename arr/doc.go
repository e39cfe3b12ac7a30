// Package arr provides standalone helpers for Go slices and for the dynamic
// lists of [collections]: recursive flattening, statistical mode and the
// small generic building blocks (Map, Filter, Zip, Sort) the apply functions
// are written with.
//
// # Flattening
//
// [Flatten] collapses lists nested to any depth into one list, keeping
// left-to-right order. It walks the input with an explicit stack, so deeply
// nested input does not grow the goroutine stack:
//
//	flat, _ := arr.Flatten(collections.List{1, collections.List{2, collections.List{3}}})
//	// → [1 2 3]
//
// # Mode
//
// [Mode] returns the most frequent element of a list or tuple, or the sorted
// list of tied elements:
//
//	arr.Mode(collections.List{1, 2, 2, 3}) // → 2
//	arr.Mode(collections.List{1, 1, 2, 2}) // → [1 2]
//
// [ModeOf] is the typed variant for slices of ordered values.
//
// # Slice helpers
//
// The generic helpers operate on plain []T values:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	pairs := arr.Zip([]string{"a", "b"}, []int{1, 2})
package arr
