package collections

import "fmt"

// Pair is a single key/value entry of a [Dict]. It is what [Dict.Items]
// yields and what the dict branch of the apply functions hands to callbacks.
//
// Portability note: in Python this maps to the 2-tuple produced by
// dict.items(); in JavaScript to a [key, value] entry of Map.entries().
type Pair struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
