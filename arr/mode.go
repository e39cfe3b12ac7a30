package arr

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/shape"
)

// Mode returns the most frequent element of a list or tuple. Every NaN
// counts as the same value.
//
// When a single element has the highest count it is returned as is. When
// several elements tie, they are returned as a [collections.List] sorted in
// ascending order:
//
//	Mode(collections.List{1, 2, 2, 3}) // → 2
//	Mode(collections.List{1, 1, 2, 2}) // → [1 2]
//
// Errors:
//   - [collections.ErrUnsupportedType] when seq is not a list or tuple.
//   - [ErrEmptyCollection] when seq has no elements.
//   - [collections.ErrUnhashable] when an element is not comparable.
//   - [ErrUnorderable] when tied elements cannot be sorted together.
func Mode(seq any) (any, error) {
	if !shape.IsList(seq) && !shape.IsTuple(seq) {
		return nil, fmt.Errorf("%w: mode accepts a list or tuple, got %T", collections.ErrUnsupportedType, seq)
	}
	items, _ := collections.Elements(seq)
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}

	counts := make(map[any]int, len(items))
	seen := make([]any, 0, len(items))
	for i, item := range items {
		if !collections.Hashable(item) {
			return nil, fmt.Errorf("%w: element %d is %T", collections.ErrUnhashable, i, item)
		}
		k := countKey(item)
		if counts[k] == 0 {
			seen = append(seen, item)
		}
		counts[k]++
	}

	top := 0
	for _, n := range counts {
		top = max(top, n)
	}
	winners := Filter(seen, func(item any, _ int) bool { return counts[countKey(item)] == top })
	if len(winners) == 1 {
		return winners[0], nil
	}

	if err := checkOrderable(winners); err != nil {
		return nil, err
	}
	return collections.List(Sort(winners, func(a, b any) bool { return compareValues(a, b) < 0 })), nil
}

// nanKey stands in for NaN when counting; NaN is never equal to itself and
// so cannot be counted under its own value.
type nanKey struct{}

func countKey(v any) any {
	if collections.IsNaN(v) {
		return nanKey{}
	}
	return v
}

// ModeOf returns every element of items sharing the highest count, sorted
// ascending. The result has one element unless there is a tie. NaN values
// are counted together, as with [Mode].
// Returns [ErrEmptyCollection] when items is empty.
func ModeOf[T cmp.Ordered](items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}
	counts := make(map[T]int, len(items))
	var nan T
	nans := 0
	top := 0
	for _, item := range items {
		if item != item {
			nan = item
			nans++
			top = max(top, nans)
			continue
		}
		counts[item]++
		top = max(top, counts[item])
	}
	out := make([]T, 0)
	if nans == top {
		out = append(out, nan)
	}
	for item, n := range counts {
		if n == top {
			out = append(out, item)
		}
	}
	slices.Sort(out)
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering of dynamic values
// ─────────────────────────────────────────────────────────────────────────────

type orderClass int

const (
	unordered orderClass = iota
	numeric
	text
	boolean
)

func classify(v any) orderClass {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return numeric
	case string:
		return text
	case bool:
		return boolean
	}
	return unordered
}

func checkOrderable(values []any) error {
	if len(values) == 0 {
		return nil
	}
	first := classify(values[0])
	for _, v := range values {
		if c := classify(v); c == unordered || c != first {
			return fmt.Errorf("%w: %T and %T", ErrUnorderable, values[0], v)
		}
	}
	return nil
}

// compareValues orders two values of the same orderClass.
func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		return cmp.Compare(x, b.(string))
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
	ia, aInt := asInt64(a)
	ib, bInt := asInt64(b)
	if aInt && bInt {
		return cmp.Compare(ia, ib)
	}
	ua, aUint := asUint64(a)
	ub, bUint := asUint64(b)
	if aUint && bUint {
		return cmp.Compare(ua, ub)
	}
	return cmp.Compare(asFloat64(a), asFloat64(b))
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	}
	return 0, false
}

func asFloat64(v any) float64 {
	if n, ok := asInt64(v); ok {
		return float64(n)
	}
	if n, ok := asUint64(v); ok {
		return float64(n)
	}
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
