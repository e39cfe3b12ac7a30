// Package shape classifies dynamic values into the structural categories the
// R-style helpers dispatch on, and exposes the exact-type predicates used for
// that dispatch.
//
// A value's shape is resolved once, at the call boundary, with [Of]:
//
//	switch shape.Of(v) {
//	case shape.List, shape.Tuple:
//	    // ordered sequence
//	case shape.Dict:
//	    // keyed mapping
//	}
//
// Every predicate tests exact dynamic-type equality. A named type whose
// underlying type is []any is not a list, and an int64 is not an int.
package shape

import (
	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/frame"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the structural category of a value.
type Shape int

const (
	Other Shape = iota // anything not listed below
	List               // collections.List ([]any)
	Tuple              // collections.Tuple
	Dict               // *collections.Dict
	Frame              // *frame.Frame
)

// Of returns the shape of v.
func Of(v any) Shape {
	switch v.(type) {
	case []any:
		return List
	case collections.Tuple:
		return Tuple
	case *collections.Dict:
		return Dict
	case *frame.Frame:
		return Frame
	default:
		return Other
	}
}

// IsSequence reports whether s is one of the ordered sequence shapes.
func (s Shape) IsSequence() bool {
	return s == List || s == Tuple
}
