package collections

import (
	"math"
	"reflect"
)

// List is an ordered sequence of arbitrary values. It is an alias, so every
// []any is a List.
type List = []any

// Tuple is an ordered sequence that callers agree not to modify. Functions in
// this module never write to a Tuple they receive.
type Tuple []any

// Elements returns the elements of a List or Tuple and true. Any other value
// yields nil and false.
func Elements(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case Tuple:
		return s, true
	}
	return nil, false
}

// Hashable reports whether v can be used as a [Dict] key: nil or any value
// whose dynamic type and contents are comparable.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// IsNaN reports whether v is a float32 or float64 NaN. NaN never equals
// itself, so callers that group or count by value treat it separately.
func IsNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}
