// Package frame provides a small, immutable, column-labelled table and the
// R-style split / unsplit operations over it.
//
// # Frames
//
// A [Frame] holds rows of arbitrary values under named columns. Every row
// also carries an integer index label, assigned 0 … n-1 at construction and
// kept through filtering and concatenation, so that a frame taken apart and
// put back together can be restored to its original order:
//
//	f, _ := frame.New([]string{"name", "dept"},
//	    []any{"ann", "ops"},
//	    []any{"bob", "dev"},
//	    []any{"cid", "ops"},
//	)
//	ops, _ := f.Where("dept", "ops") // rows 0 and 2
//
// Frames are never modified after construction. Filtering and concatenation
// return new frames that may share row storage with their inputs.
//
// # Split / unsplit
//
// [Split] partitions a frame into one sub-frame per distinct value of a
// column; [Unsplit] concatenates sub-frames back into one:
//
//	groups, _ := frame.Split(f, "dept")
//	groups.Keys()                              // → [ops dev]
//	back, _ := frame.Unsplit(groups.Values())  // rows 0, 2, 1
//	back.SortIndex()                           // rows 0, 1, 2
//
// [Frame.Fingerprint] gives an order-independent digest of a frame's
// contents, which makes the round trip easy to check.
package frame
