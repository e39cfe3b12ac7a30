package apply

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-rply/arr"
	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/shape"
)

// Lapply applies fn to every element of collection and returns the results
// as a dict.
//
// For a list or tuple, fn receives each element and the results are keyed
// by keys, or by the positions 0 … n-1 when no keys are given. For a dict,
// fn receives each entry as a [collections.Pair] and the results are keyed
// by keys, or by the dict's own keys.
//
// Keys are paired with results by position; surplus keys or results are
// dropped. Passing an empty, non-nil key slice (keys...) yields an empty
// dict. Duplicate keys keep the last result.
//
// Returns [collections.ErrUnsupportedType] for any other input.
func Lapply(collection any, fn func(any) any, keys ...any) (*collections.Dict, error) {
	switch s := shape.Of(collection); s {
	case shape.List, shape.Tuple:
		items, _ := collections.Elements(collection)
		mapped := arr.Map(items, func(x any, _ int) any { return fn(x) })
		if keys == nil {
			keys = positions(len(mapped))
		}
		return zipDict(keys, mapped)

	case shape.Dict:
		d := collection.(*collections.Dict)
		if keys == nil {
			keys = d.Keys()
		}
		mapped := arr.Map(d.Items(), func(p collections.Pair, _ int) any { return fn(p) })
		return zipDict(keys, mapped)

	default:
		return nil, fmt.Errorf("%w: lapply accepts a list, tuple or dict, got %s (%T)",
			collections.ErrUnsupportedType, s, collection)
	}
}

// Sapply applies fn to every element of collection and returns the results
// as a [collections.List], or as a [collections.Tuple] when returnType[0] is
// [ReturnTuple]. Dicts are walked over their keys.
//
// Returns [ErrUnsupportedReturnType] for an unknown return type (checked
// before fn is called) and [collections.ErrUnsupportedType] when collection
// is not a list, tuple or dict.
func Sapply(collection any, fn func(any) any, returnType ...ReturnType) (any, error) {
	rt := ReturnList
	if len(returnType) > 0 {
		rt = returnType[0]
	}
	if rt != ReturnList && rt != ReturnTuple {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedReturnType, rt)
	}

	var items []any
	switch s := shape.Of(collection); s {
	case shape.List, shape.Tuple:
		items, _ = collections.Elements(collection)
	case shape.Dict:
		items = collection.(*collections.Dict).Keys()
	default:
		return nil, fmt.Errorf("%w: sapply accepts a list, tuple or dict, got %s (%T)",
			collections.ErrUnsupportedType, s, collection)
	}

	mapped := arr.Map(items, func(x any, _ int) any { return fn(x) })
	if rt == ReturnTuple {
		return collections.Tuple(mapped), nil
	}
	return collections.List(mapped), nil
}

// Rapply applies fn only to the elements of collection whose dynamic type is
// exactly matchType; everything else is dropped. A nil matchType selects
// nothing.
//
// For a list or tuple the results come back as a [collections.List] in the
// original relative order:
//
//	Rapply(collections.List{1, "a", 2, 3.5}, double, reflect.TypeFor[int]())
//	// → [2 4]
//
// For a dict the result is a *[collections.Dict], built in three steps:
//  1. keys (or, when none are given, the dict's own keys) are zipped
//     positionally with the dict's keys;
//  2. entries whose zipped value has type matchType are kept;
//  3. the kept entries go through the dict branch of [Lapply] with the
//     unfiltered keys from step 1, so fn receives Pair{key, key} and results
//     are re-keyed by position.
//
// Returns [collections.ErrUnsupportedType] for any other input.
func Rapply(collection any, fn func(any) any, matchType reflect.Type, keys ...any) (any, error) {
	matches := func(x any, _ int) bool {
		return matchType != nil && reflect.TypeOf(x) == matchType
	}

	switch s := shape.Of(collection); s {
	case shape.List, shape.Tuple:
		items, _ := collections.Elements(collection)
		return Sapply(arr.Filter(items, matches), fn)

	case shape.Dict:
		d := collection.(*collections.Dict)
		if keys == nil {
			keys = d.Keys()
		}
		zipped, err := zipDict(keys, d.Keys())
		if err != nil {
			return nil, err
		}
		selected := collections.NewDict()
		for i, p := range zipped.Items() {
			if matches(p.Value, i) {
				// p.Key already passed zipDict's hashability check
				_ = selected.Set(p.Key, p.Value)
			}
		}
		out, err := Lapply(selected, fn, keys...)
		if err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: rapply accepts a list, tuple or dict, got %s (%T)",
			collections.ErrUnsupportedType, s, collection)
	}
}

func positions(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func zipDict(keys, values []any) (*collections.Dict, error) {
	d := collections.NewDict()
	for _, p := range arr.Zip(keys, values) {
		if err := d.Set(p.First, p.Second); err != nil {
			return nil, err
		}
	}
	return d, nil
}
