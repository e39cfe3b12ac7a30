// Package apply provides R's apply family for dynamic collections: [Lapply],
// [Sapply] and [Rapply], plus typed generic counterparts for callers that
// know their element types up front.
//
// # Dispatch
//
// Each function resolves the shape of its input once, with [shape.Of], and
// picks a branch: lists and tuples are walked element by element, dicts entry
// by entry. Anything else fails with [collections.ErrUnsupportedType].
//
//	squares, _ := apply.Lapply(collections.List{1, 2, 3}, func(x any) any {
//	    return x.(int) * x.(int)
//	})
//	squares.Keys()   // → [0 1 2]
//	squares.Values() // → [1 4 9]
//
//	upper, _ := apply.Sapply(collections.List{"a", "b"}, func(x any) any {
//	    return strings.ToUpper(x.(string))
//	})
//	// → [A B]
//
// # Positional re-zip
//
// The dynamic appliers pair result keys with results by position. In the
// dict branch of [Lapply] and in [Rapply] this means caller-supplied keys are
// matched to results by order rather than by the key each result was
// computed from.
// The typed functions [LapplyMap] and [RapplySlice] do not re-zip; use them
// when key/value correspondence matters.
package apply
