// Package collections provides the dynamic container shapes the R-style
// helpers in this module operate on: lists, tuples and insertion-ordered
// dictionaries of arbitrary values.
//
// # Shapes
//
// Three container shapes are recognised:
//
//	collections.List{1, "a", 2.5}              // ordered, any length (alias for []any)
//	collections.Tuple{1, "a"}                  // ordered, treated as immutable
//	d := collections.NewDict()                 // keyed mapping, insertion ordered
//	_ = d.Set("a", 1)
//
// [List] is an alias for []any, so a plain []any literal is a list. [Tuple]
// is a distinct defined type: a Tuple is never a List, even though both are
// backed by a slice.
//
// # Dictionaries
//
// [Dict] remembers the order in which keys were first inserted. Setting an
// existing key replaces its value but keeps its position, so iteration order
// is stable and deterministic:
//
//	d, _ := collections.DictOf(
//	    collections.Pair{Key: "x", Value: 1},
//	    collections.Pair{Key: "y", Value: 2},
//	)
//	d.Keys()   // → [x y]
//	d.Items()  // → [(x, 1) (y, 2)]
//
// Keys must be hashable, i.e. dynamically comparable. Slices, maps and
// functions (or structs/arrays holding them) are rejected with
// [ErrUnhashable].
//
// # Portability
//
// The shapes mirror the list / tuple / dict triple found in dynamic
// languages:
//
//   - Python: list, tuple, dict
//   - R: list(), vectors, named lists
//   - JavaScript: Array, frozen Array, Map
package collections
