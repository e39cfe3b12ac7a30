package frame

import (
	"fmt"

	"github.com/hasbyte1/go-rply/collections"
)

// Groups is the result of [Split]: one sub-frame per distinct value of the
// grouping column, ordered by the first appearance of that value.
type Groups struct {
	field  string
	keys   []any
	frames []*Frame

	// index maps a key to its position; the NaN group, which cannot be a
	// map key, is tracked by nan (-1 when absent).
	index map[any]int
	nan   int
}

// Split partitions f into one sub-frame per distinct value of field. Each
// sub-frame keeps its rows' original order and index labels. NaN values form
// a single group.
//
// Returns [ErrColumnNotFound] for unknown fields and
// [collections.ErrUnhashable] if a value of field is not comparable.
func Split(f *Frame, field string) (*Groups, error) {
	keys, err := f.Unique(field)
	if err != nil {
		return nil, err
	}
	g := &Groups{
		field:  field,
		keys:   keys,
		frames: make([]*Frame, len(keys)),
		index:  make(map[any]int, len(keys)),
		nan:    -1,
	}
	for i, key := range keys {
		sub, err := f.Where(field, key)
		if err != nil {
			return nil, err
		}
		g.frames[i] = sub
		if collections.IsNaN(key) {
			g.nan = i
		} else {
			g.index[key] = i
		}
	}
	return g, nil
}

// Unsplit concatenates frames, in order, into a single frame.
// Returns [ErrEmptyInput] when frames is empty and [ErrSchemaMismatch] when
// the frames do not share a column set.
func Unsplit(frames []*Frame) (*Frame, error) {
	out, err := Concat(frames...)
	if err != nil {
		return nil, fmt.Errorf("unsplit: %w", err)
	}
	return out, nil
}

// Field returns the name of the grouping column.
func (g *Groups) Field() string { return g.field }

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.keys) }

// Keys returns the distinct values of the grouping column.
func (g *Groups) Keys() []any {
	out := make([]any, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the sub-frame for key. Any NaN finds the NaN group.
func (g *Groups) Get(key any) (*Frame, bool) {
	if collections.IsNaN(key) {
		if g.nan < 0 {
			return nil, false
		}
		return g.frames[g.nan], true
	}
	if !collections.Hashable(key) {
		return nil, false
	}
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return g.frames[i], true
}

// Values returns the sub-frames in key order.
func (g *Groups) Values() []*Frame {
	out := make([]*Frame, len(g.frames))
	copy(out, g.frames)
	return out
}

// Each calls fn(key, sub) for every group in key order.
func (g *Groups) Each(fn func(key any, sub *Frame)) {
	for i, k := range g.keys {
		fn(k, g.frames[i])
	}
}

// Dict returns the groups as a [collections.Dict] mapping each key to its
// *Frame, ready to be handed to the apply functions.
func (g *Groups) Dict() *collections.Dict {
	d := collections.NewDict()
	for i, k := range g.keys {
		// keys passed Unique's hashability check
		_ = d.Set(k, g.frames[i])
	}
	return d
}
