package collections

import "errors"

// Sentinel errors shared by the packages of this module.
var (
	// ErrUnsupportedType is returned when an input value does not have one of
	// the shapes a function accepts (for example a string passed where a list
	// or dict is expected).
	ErrUnsupportedType = errors.New("collections: unsupported type")

	// ErrUnhashable is returned when a value that is not comparable is used
	// as a dictionary key or counted by value.
	ErrUnhashable = errors.New("collections: unhashable value")
)
