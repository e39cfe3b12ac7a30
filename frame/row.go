package frame

import (
	"fmt"
	"slices"
	"strings"
)

// Row is a read-only view of one row of a [Frame].
type Row struct {
	// Label is the row's index label.
	Label int

	frame  *Frame
	values []any
}

// Get returns the value of the named column and whether the column exists.
func (r Row) Get(column string) (any, bool) {
	if r.frame == nil {
		return nil, false
	}
	j, ok := r.frame.lookup[column]
	if !ok {
		return nil, false
	}
	return r.values[j], true
}

// Values returns a copy of the row's values in column order.
func (r Row) Values() []any { return slices.Clone(r.values) }

// Record returns the row as a map keyed by column name.
func (r Row) Record() map[string]any {
	out := make(map[string]any, len(r.values))
	if r.frame == nil {
		return out
	}
	for j, col := range r.frame.columns {
		out[col] = r.values[j]
	}
	return out
}

// String returns "label: [v1 v2 …]".
func (r Row) String() string {
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%d: [%s]", r.Label, strings.Join(parts, " "))
}
