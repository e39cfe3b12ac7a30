package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

// FormatOptions controls the text rendering produced by [Frame.Format].
type FormatOptions struct {
	// MaxRows limits the number of rows printed. Zero or a negative value
	// prints every row.
	MaxRows int

	// ShowIndex prints the index label as the first column.
	ShowIndex bool

	// Padding is the number of spaces between columns.
	// Defaults to 2 if zero or negative.
	Padding int
}

// DefaultFormatOptions returns the options used by [Frame.String].
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MaxRows:   20,
		ShowIndex: true,
		Padding:   2,
	}
}

// String renders the frame as an aligned text table using
// [DefaultFormatOptions]. It implements [fmt.Stringer].
func (f *Frame) String() string {
	return f.Format(DefaultFormatOptions())
}

// Format renders the frame as an aligned text table:
//
//	   name  dept
//	0  ann   ops
//	1  bob   dev
//
// When rows are omitted because of MaxRows, a final "… (n more rows)" line
// is added.
func (f *Frame) Format(opts FormatOptions) string {
	if opts.Padding <= 0 {
		opts.Padding = 2
	}
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, opts.Padding, ' ', 0)

	header := make([]string, 0, len(f.columns)+1)
	if opts.ShowIndex {
		header = append(header, "")
	}
	header = append(header, f.columns...)
	fmt.Fprintln(w, strings.Join(header, "\t"))

	shown := len(f.rows)
	if opts.MaxRows > 0 && shown > opts.MaxRows {
		shown = opts.MaxRows
	}
	for i := 0; i < shown; i++ {
		cells := make([]string, 0, len(f.columns)+1)
		if opts.ShowIndex {
			cells = append(cells, fmt.Sprint(f.labels[i]))
		}
		for _, v := range f.rows[i] {
			cells = append(cells, fmt.Sprint(v))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()

	if hidden := len(f.rows) - shown; hidden > 0 {
		fmt.Fprintf(&buf, "… (%d more rows)\n", hidden)
	}
	return buf.String()
}

// ToJSON serialises the frame as a JSON array of row objects, with keys in
// column order.
func (f *Frame) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, values := range f.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range f.columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			vb, err := json.Marshal(values[j])
			if err != nil {
				return nil, fmt.Errorf("frame: column %q row %d: %w", col, i, err)
			}
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
