package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dict is a keyed mapping that preserves insertion order.
//
// The zero value is not ready for use; create dictionaries with [NewDict] or
// [DictOf].
//
//	d := collections.NewDict()
//	_ = d.Set("a", 1)
//	_ = d.Set("b", 2)
//	_ = d.Set("a", 3) // replaces the value, "a" stays first
//	d.Keys()          // → [a b]
//	d.Values()        // → [3 2]
type Dict struct {
	keys   []any
	values []any
	index  map[any]int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{index: make(map[any]int)}
}

// DictOf creates a Dict from pairs, in order. A later pair with the same key
// replaces the value of an earlier one.
// Returns [ErrUnhashable] if any key is not comparable.
func DictOf(pairs ...Pair) (*Dict, error) {
	d := NewDict()
	for _, p := range pairs {
		if err := d.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. New keys are appended to the iteration order;
// existing keys keep their position.
// Returns [ErrUnhashable] if key is not comparable.
func (d *Dict) Set(key, value any) error {
	if !Hashable(key) {
		return fmt.Errorf("%w: key of type %T", ErrUnhashable, key)
	}
	if i, ok := d.index[key]; ok {
		d.values[i] = value
		return nil
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)
	return nil
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key any) bool {
	if !Hashable(key) {
		return false
	}
	i, ok := d.index[key]
	if !ok {
		return false
	}
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.values = append(d.values[:i], d.values[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.keys); j++ {
		d.index[d.keys[j]] = j
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Get returns the value stored under key together with a presence flag.
func (d *Dict) Get(key any) (any, bool) {
	if !Hashable(key) {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.values[i], true
}

// Has reports whether key is present.
func (d *Dict) Has(key any) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns a copy of the keys in iteration order.
func (d *Dict) Keys() List {
	out := make(List, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns a copy of the values in iteration order.
func (d *Dict) Values() List {
	out := make(List, len(d.values))
	copy(out, d.values)
	return out
}

// Items returns the entries as key/value pairs in iteration order.
func (d *Dict) Items() []Pair {
	out := make([]Pair, len(d.keys))
	for i, k := range d.keys {
		out[i] = Pair{Key: k, Value: d.values[i]}
	}
	return out
}

// Each calls fn(key, value) for every entry in iteration order.
func (d *Dict) Each(fn func(key, value any)) {
	for i, k := range d.keys {
		fn(k, d.values[i])
	}
}

// Clone returns a shallow copy of d.
func (d *Dict) Clone() *Dict {
	out := &Dict{
		keys:   make([]any, len(d.keys)),
		values: make([]any, len(d.values)),
		index:  make(map[any]int, len(d.index)),
	}
	copy(out.keys, d.keys)
	copy(out.values, d.values)
	for k, i := range d.index {
		out.index[k] = i
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// String returns the entries as "{k1: v1, k2: v2}". It implements
// [fmt.Stringer].
func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, d.values[i])
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON encodes d as a JSON object when every key is a string,
// preserving iteration order. Otherwise d is encoded as an array of
// [key, value] arrays.
func (d *Dict) MarshalJSON() ([]byte, error) {
	for _, k := range d.keys {
		if _, ok := k.(string); !ok {
			return d.marshalEntries()
		}
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Dict) marshalEntries() ([]byte, error) {
	entries := make([][2]any, len(d.keys))
	for i, k := range d.keys {
		entries[i] = [2]any{k, d.values[i]}
	}
	return json.Marshal(entries)
}

// dumpConfig renders values with their types, without pointer addresses, so
// dumps are stable between runs.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Sdump returns a typed rendering of v. A *Dict is rendered one
// "key => value" entry per line in iteration order.
func Sdump(v any) string {
	if d, ok := v.(*Dict); ok {
		var sb strings.Builder
		for i, k := range d.keys {
			fmt.Fprintf(&sb, "%s => %s", strings.TrimSuffix(dumpConfig.Sdump(k), "\n"), dumpConfig.Sdump(d.values[i]))
		}
		return sb.String()
	}
	return dumpConfig.Sdump(v)
}

// Dump prints the dictionary entries to stdout and returns d for chaining.
func (d *Dict) Dump() *Dict {
	fmt.Print(Sdump(d))
	return d
}
