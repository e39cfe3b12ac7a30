package apply

import "github.com/hasbyte1/go-rply/arr"

// LapplySlice applies fn to every element of items and returns the results
// keyed by position.
func LapplySlice[T, R any](items []T, fn func(T) R) map[int]R {
	out := make(map[int]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// LapplyMap applies fn to every entry of m. Each result is stored under the
// key it was computed from.
func LapplyMap[K comparable, V, R any](m map[K]V, fn func(K, V) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = fn(k, v)
	}
	return out
}

// SapplySlice applies fn to every element of items and returns the results
// in order.
func SapplySlice[T, R any](items []T, fn func(T) R) []R {
	return arr.Map(items, func(item T, _ int) R { return fn(item) })
}

// RapplySlice applies fn to the elements of items that hold a T and drops the
// rest. Relative order is preserved.
//
//	RapplySlice([]any{1, "a", 2}, func(n int) int { return n * 10 }) // → [10 20]
func RapplySlice[T, R any](items []any, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		if v, ok := item.(T); ok {
			out = append(out, fn(v))
		}
	}
	return out
}
