package arr

import (
	"fmt"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/shape"
)

// Flatten flattens a list of nested lists, to any depth, into a single list
// in left-to-right order:
//
//	Flatten(collections.List{1, collections.List{2, 3}, collections.List{4, collections.List{5, 6}}})
//	// → [1 2 3 4 5 6]
//
// Only lists are descended into. Tuples, dicts and every other value are
// kept as single elements. Returns [collections.ErrUnsupportedType] when
// list is not a list.
func Flatten(list any) (collections.List, error) {
	if !shape.IsList(list) {
		return nil, fmt.Errorf("%w: flatten accepts a list, got %T", collections.ErrUnsupportedType, list)
	}
	root := list.([]any)
	out := make(collections.List, 0, len(root))

	// Each stack entry is the unvisited remainder of a list being walked.
	stack := [][]any{root}
	for len(stack) > 0 {
		top := len(stack) - 1
		if len(stack[top]) == 0 {
			stack = stack[:top]
			continue
		}
		head := stack[top][0]
		stack[top] = stack[top][1:]
		if shape.IsList(head) {
			stack = append(stack, head.([]any))
			continue
		}
		out = append(out, head)
	}
	return out, nil
}
