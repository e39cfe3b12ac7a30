package frame

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-rply/collections"
)

// Frame is an immutable two-dimensional table of values with named columns.
//
// Rows are addressed two ways: by position (0 … Len()-1, as used by [Frame.Row]
// and [Frame.Value]) and by index label (see [Frame.Index]), which survives
// filtering and concatenation.
type Frame struct {
	columns []string
	lookup  map[string]int
	labels  []int
	rows    [][]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Frame from column names and rows. Each row must hold exactly
// one value per column. Rows are copied; index labels are 0 … len(rows)-1.
//
// Returns [ErrDuplicateColumn] or [ErrRowWidth] on malformed input.
func New(columns []string, rows ...[]any) (*Frame, error) {
	lookup, err := columnLookup(columns)
	if err != nil {
		return nil, err
	}
	f := &Frame{
		columns: slices.Clone(columns),
		lookup:  lookup,
		labels:  make([]int, len(rows)),
		rows:    make([][]any, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRowWidth, i, len(row), len(columns))
		}
		f.labels[i] = i
		f.rows[i] = slices.Clone(row)
	}
	return f, nil
}

// FromRecords creates a Frame from maps keyed by column name. Columns missing
// from a record are filled with nil; keys not listed in columns are ignored.
func FromRecords(columns []string, records []map[string]any) (*Frame, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for j, col := range columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}
	return New(columns, rows...)
}

func columnLookup(columns []string) (map[string]int, error) {
	lookup := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := lookup[col]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		lookup[col] = i
	}
	return lookup, nil
}

// derive returns a frame with f's schema over the given labels and rows.
func (f *Frame) derive(labels []int, rows [][]any) *Frame {
	return &Frame{columns: f.columns, lookup: f.lookup, labels: labels, rows: rows}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string { return slices.Clone(f.columns) }

// HasColumn reports whether name is a column of f.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.lookup[name]
	return ok
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.rows) }

// Index returns a copy of the row index labels in row order.
func (f *Frame) Index() []int { return slices.Clone(f.labels) }

// Row returns the row at position i.
// Returns [ErrIndexOutOfRange] when i is not a valid position.
func (f *Frame) Row(i int) (Row, error) {
	if i < 0 || i >= len(f.rows) {
		return Row{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(f.rows))
	}
	return Row{Label: f.labels[i], frame: f, values: f.rows[i]}, nil
}

// Rows returns every row in order.
func (f *Frame) Rows() []Row {
	out := make([]Row, len(f.rows))
	for i := range f.rows {
		out[i] = Row{Label: f.labels[i], frame: f, values: f.rows[i]}
	}
	return out
}

// Column returns a copy of the values of the named column.
// Returns [ErrColumnNotFound] for unknown names.
func (f *Frame) Column(name string) ([]any, error) {
	j, err := f.columnPos(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[j]
	}
	return out, nil
}

// Value returns the value in row position i of the named column.
func (f *Frame) Value(i int, name string) (any, error) {
	row, err := f.Row(i)
	if err != nil {
		return nil, err
	}
	v, ok := row.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return v, nil
}

func (f *Frame) columnPos(name string) (int, error) {
	j, ok := f.lookup[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return j, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// SelectRows returns a new frame holding the rows for which pred returns
// true, in their original order and with their original index labels.
func (f *Frame) SelectRows(pred func(Row) bool) *Frame {
	labels := make([]int, 0, len(f.rows))
	rows := make([][]any, 0, len(f.rows))
	for i, values := range f.rows {
		if pred(Row{Label: f.labels[i], frame: f, values: values}) {
			labels = append(labels, f.labels[i])
			rows = append(rows, values)
		}
	}
	return f.derive(labels, rows)
}

// Where returns the rows whose value in column equals value.
// Returns [ErrColumnNotFound] for unknown columns.
func (f *Frame) Where(column string, value any) (*Frame, error) {
	j, err := f.columnPos(column)
	if err != nil {
		return nil, err
	}
	return f.SelectRows(func(r Row) bool { return equal(r.values[j], value) }), nil
}

// Unique returns the distinct values of column in order of first appearance.
// All NaN values count as one value, represented by the first NaN seen.
// Returns [collections.ErrUnhashable] if a value is not comparable.
func (f *Frame) Unique(column string) ([]any, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[any]struct{}, len(values))
	out := make([]any, 0)
	seenNaN := false
	for i, v := range values {
		if !collections.Hashable(v) {
			return nil, fmt.Errorf("%w: column %q row %d holds %T", collections.ErrUnhashable, column, i, v)
		}
		if collections.IsNaN(v) {
			if !seenNaN {
				seenNaN = true
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out, nil
}

// equal compares cell values. NaN equals NaN so that NaN rows can be
// selected and grouped.
func equal(a, b any) bool {
	if collections.IsNaN(a) || collections.IsNaN(b) {
		return collections.IsNaN(a) && collections.IsNaN(b)
	}
	if collections.Hashable(a) && collections.Hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combination
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new frame with the rows of other after the rows of f.
//
// other must have the same set of columns as f, in any order; its rows are
// reordered to f's column order. Index labels are carried over unchanged, so
// the result may hold duplicate labels. Returns [ErrSchemaMismatch] otherwise,
// and [ErrNilFrame] when other is nil.
func (f *Frame) Append(other *Frame) (*Frame, error) {
	if other == nil {
		return nil, ErrNilFrame
	}
	perm, err := f.alignment(other)
	if err != nil {
		return nil, err
	}
	labels := make([]int, 0, len(f.labels)+len(other.labels))
	labels = append(labels, f.labels...)
	labels = append(labels, other.labels...)

	rows := make([][]any, 0, len(f.rows)+len(other.rows))
	rows = append(rows, f.rows...)
	for _, values := range other.rows {
		if perm == nil {
			rows = append(rows, values)
			continue
		}
		aligned := make([]any, len(values))
		for j, src := range perm {
			aligned[j] = values[src]
		}
		rows = append(rows, aligned)
	}
	return f.derive(labels, rows), nil
}

// alignment maps each of f's column positions to the matching position in
// other. It returns nil when the column orders already agree.
func (f *Frame) alignment(other *Frame) ([]int, error) {
	if len(f.columns) != len(other.columns) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrSchemaMismatch, f.columns, other.columns)
	}
	if slices.Equal(f.columns, other.columns) {
		return nil, nil
	}
	perm := make([]int, len(f.columns))
	for j, col := range f.columns {
		src, ok := other.lookup[col]
		if !ok {
			return nil, fmt.Errorf("%w: %q missing from %v", ErrSchemaMismatch, col, other.columns)
		}
		perm[j] = src
	}
	return perm, nil
}

// Concat appends frames left to right.
// Returns [ErrEmptyInput] when no frames are given and [ErrNilFrame] when
// any of them is nil.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyInput
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("%w: frame %d", ErrNilFrame, i)
		}
	}
	out := frames[0]
	for _, next := range frames[1:] {
		var err error
		if out, err = out.Append(next); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SortIndex returns a new frame with rows ordered by index label. Rows with
// equal labels keep their relative order.
func (f *Frame) SortIndex() *Frame {
	order := make([]int, len(f.rows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return f.labels[a] - f.labels[b] })

	labels := make([]int, len(order))
	rows := make([][]any, len(order))
	for i, src := range order {
		labels[i] = f.labels[src]
		rows[i] = f.rows[src]
	}
	return f.derive(labels, rows)
}
