package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/frame"
)

func TestSplit(t *testing.T) {
	g, err := frame.Split(staff(t), "dept")
	require.NoError(t, err)

	assert.Equal(t, "dept", g.Field())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []any{"ops", "dev", "qa"}, g.Keys())

	dev, ok := g.Get("dev")
	require.True(t, ok)
	assert.Equal(t, []any{"bob", "eve"}, names(t, dev))
	assert.Equal(t, []int{1, 4}, dev.Index())

	_, ok = g.Get("hr")
	assert.False(t, ok)
	_, ok = g.Get([]string{"dev"})
	assert.False(t, ok)
}

func TestSplitEmptyFrame(t *testing.T) {
	f, err := frame.New([]string{"k"})
	require.NoError(t, err)
	g, err := frame.Split(f, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Values())
}

func TestSplitErrors(t *testing.T) {
	_, err := frame.Split(staff(t), "team")
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)

	f, err := frame.New([]string{"k"}, []any{map[string]int{}})
	require.NoError(t, err)
	_, err = frame.Split(f, "k")
	assert.ErrorIs(t, err, collections.ErrUnhashable)
}

func TestGroupsEachAndDict(t *testing.T) {
	g, err := frame.Split(staff(t), "dept")
	require.NoError(t, err)

	sizes := map[any]int{}
	var order []any
	g.Each(func(key any, sub *frame.Frame) {
		order = append(order, key)
		sizes[key] = sub.Len()
	})
	assert.Equal(t, []any{"ops", "dev", "qa"}, order)
	assert.Equal(t, map[any]int{"ops": 2, "dev": 2, "qa": 1}, sizes)

	d := g.Dict()
	assert.Equal(t, collections.List{"ops", "dev", "qa"}, d.Keys())
	qa, ok := d.Get("qa")
	require.True(t, ok)
	assert.Equal(t, 1, qa.(*frame.Frame).Len())
}

func TestUnsplitRoundTrip(t *testing.T) {
	f := staff(t)
	g, err := frame.Split(f, "dept")
	require.NoError(t, err)

	back, err := frame.Unsplit(g.Values())
	require.NoError(t, err)

	assert.Equal(t, f.Len(), back.Len())
	assert.Equal(t, []int{0, 2, 1, 4, 3}, back.Index())
	assert.Equal(t, f.Fingerprint(), back.Fingerprint())
	assert.Equal(t, names(t, f), names(t, back.SortIndex()))
}

func TestUnsplitErrors(t *testing.T) {
	_, err := frame.Unsplit(nil)
	assert.ErrorIs(t, err, frame.ErrEmptyInput)

	a, _ := frame.New([]string{"a"})
	b, _ := frame.New([]string{"b"})
	_, err = frame.Unsplit([]*frame.Frame{a, b})
	assert.ErrorIs(t, err, frame.ErrSchemaMismatch)
}

func TestSplitNaNFormsOneGroup(t *testing.T) {
	f, err := frame.New([]string{"g", "v"},
		[]any{math.NaN(), 1},
		[]any{1.0, 2},
		[]any{math.NaN(), 3},
	)
	require.NoError(t, err)

	g, err := frame.Split(f, "g")
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	nan, ok := g.Get(math.NaN())
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, nan.Index())
	one, ok := g.Get(1.0)
	require.True(t, ok)
	assert.Equal(t, []int{1}, one.Index())

	for i, sub := range g.Values() {
		require.NotNil(t, sub, "group %d", i)
	}

	back, err := frame.Unsplit(g.Values())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, back.Index())
	assert.Equal(t, []int{0, 1, 2}, back.SortIndex().Index())
	assert.Equal(t, f.Fingerprint(), back.Fingerprint())

	d := g.Dict()
	assert.Equal(t, 2, d.Len())
}

func TestUnsplitNilFrame(t *testing.T) {
	_, err := frame.Unsplit([]*frame.Frame{nil})
	assert.ErrorIs(t, err, frame.ErrNilFrame)
}
