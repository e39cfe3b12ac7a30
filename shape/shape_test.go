package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rply/collections"
	"github.com/hasbyte1/go-rply/frame"
	"github.com/hasbyte1/go-rply/shape"
)

type namedList []any

func TestOf(t *testing.T) {
	f, err := frame.New([]string{"a"})
	require.NoError(t, err)

	cases := []struct {
		v    any
		want shape.Shape
	}{
		{collections.List{1}, shape.List},
		{[]any{}, shape.List},
		{collections.Tuple{1}, shape.Tuple},
		{collections.NewDict(), shape.Dict},
		{f, shape.Frame},
		{namedList{1}, shape.Other},
		{[]int{1}, shape.Other},
		{map[string]any{}, shape.Other},
		{"list", shape.Other},
		{nil, shape.Other},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, shape.Of(tc.v), "%#v", tc.v)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "Other", shape.Other.String())
	assert.Equal(t, "List", shape.List.String())
	assert.Equal(t, "Tuple", shape.Tuple.String())
	assert.Equal(t, "Dict", shape.Dict.String())
	assert.Equal(t, "Frame", shape.Frame.String())
	assert.Equal(t, "Shape(9)", shape.Shape(9).String())
}

func TestIsSequence(t *testing.T) {
	assert.True(t, shape.List.IsSequence())
	assert.True(t, shape.Tuple.IsSequence())
	assert.False(t, shape.Dict.IsSequence())
	assert.False(t, shape.Other.IsSequence())
}

// ─── Predicates ───────────────────────────────────────────────────────────────

func TestPredicatesUseExactTypes(t *testing.T) {
	type myInt int
	type myString string

	f, err := frame.New([]string{"a"})
	require.NoError(t, err)

	assert.True(t, shape.IsList(collections.List{}))
	assert.False(t, shape.IsList(collections.Tuple{}))
	assert.False(t, shape.IsList(namedList{}))

	assert.True(t, shape.IsTuple(collections.Tuple{}))
	assert.False(t, shape.IsTuple(collections.List{}))

	assert.True(t, shape.IsDict(collections.NewDict()))
	assert.False(t, shape.IsDict(map[any]any{}))
	assert.False(t, shape.IsDict(collections.Dict{}))

	assert.True(t, shape.IsInt(3))
	assert.False(t, shape.IsInt(int64(3)))
	assert.False(t, shape.IsInt(myInt(3)))
	assert.False(t, shape.IsInt(3.0))
	assert.False(t, shape.IsInt(true))

	assert.True(t, shape.IsFloat(1.5))
	assert.False(t, shape.IsFloat(float32(1.5)))
	assert.False(t, shape.IsFloat(1))

	assert.True(t, shape.IsStr("x"))
	assert.False(t, shape.IsStr(myString("x")))
	assert.False(t, shape.IsStr([]byte("x")))

	assert.True(t, shape.IsDataFrame(f))
	assert.False(t, shape.IsDataFrame(*f))
	assert.False(t, shape.IsDataFrame(nil))
}
