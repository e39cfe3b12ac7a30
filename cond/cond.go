package cond

import (
	"fmt"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/shape"
)

// Ifelse returns thenValue when condition is true and elseValue otherwise.
func Ifelse(condition bool, thenValue, elseValue any) any {
	if condition {
		return thenValue
	}
	return elseValue
}

// If is the typed form of [Ifelse].
func If[T any](condition bool, thenValue, elseValue T) T {
	if condition {
		return thenValue
	}
	return elseValue
}

// NamedBranch is a branch selected by name. Create one with [Named].
type NamedBranch struct {
	Name  string
	Value any
}

// Named returns a branch that [Switch] selects when its expression equals
// name.
func Named(name string, value any) NamedBranch {
	return NamedBranch{Name: name, Value: value}
}

// Switch selects one of branches based on expr.
//
// Arguments of type [NamedBranch] are named branches; all others are
// positional, in order.
//
//   - An int expr indexes the positional branches. If the first positional
//     branch is itself a list or tuple, expr indexes that collection
//     instead. Negative values count from the end.
//   - A string expr selects the named branch with that name. When names
//     repeat, the last one wins.
//
// Returns [ErrIndexOutOfRange] or [ErrKeyNotFound] (both wrapping
// [ErrLookup]) when nothing matches, and [collections.ErrUnsupportedType]
// when expr is neither an int nor a string.
func Switch(expr any, branches ...any) (any, error) {
	positional := make([]any, 0, len(branches))
	named := make(map[string]any)
	for _, b := range branches {
		if nb, ok := b.(NamedBranch); ok {
			named[nb.Name] = nb.Value
			continue
		}
		positional = append(positional, b)
	}

	switch {
	case shape.IsInt(expr):
		targets := positional
		if len(positional) > 0 {
			if inner, ok := collections.Elements(positional[0]); ok {
				targets = inner
			}
		}
		return index(targets, expr.(int))

	case shape.IsStr(expr):
		v, ok := named[expr.(string)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, expr)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("%w: switch expression must be int or string, got %T",
			collections.ErrUnsupportedType, expr)
	}
}

func index(items []any, i int) (any, error) {
	pos := i
	if pos < 0 {
		pos += len(items)
	}
	if pos < 0 || pos >= len(items) {
		return nil, fmt.Errorf("%w: %d with %d branches", ErrIndexOutOfRange, i, len(items))
	}
	return items[pos], nil
}
