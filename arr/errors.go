package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrEmptyCollection is returned when an operation needs at least one
	// element but received none.
	ErrEmptyCollection = errors.New("arr: operation on empty collection")

	// ErrUnorderable is returned when values that cannot be compared with one
	// another (for example a number and a string) have to be sorted.
	ErrUnorderable = errors.New("arr: values are not mutually orderable")
)
