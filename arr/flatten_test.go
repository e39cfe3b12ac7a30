package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rply/arr"
	"github.com/hasbyte1/go-rply/collections"
)

type L = collections.List

func TestFlatten(t *testing.T) {
	got, err := arr.Flatten(L{1, L{2, 3}, L{4, L{5, 6}}})
	require.NoError(t, err)
	assert.Equal(t, L{1, 2, 3, 4, 5, 6}, got)
}

func TestFlattenEmpty(t *testing.T) {
	got, err := arr.Flatten(L{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = arr.Flatten(L{L{}, L{L{}}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlattenKeepsOtherShapesAtomic(t *testing.T) {
	d := collections.NewDict()
	tuple := collections.Tuple{1, L{2}}
	got, err := arr.Flatten(L{tuple, L{d, "ab"}, []int{7, 8}})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, tuple, got[0])
	assert.Same(t, d, got[1])
	assert.Equal(t, "ab", got[2])
	assert.Equal(t, []int{7, 8}, got[3])
}

func TestFlattenDeepNesting(t *testing.T) {
	const depth = 100_000
	var nested any = L{depth}
	for i := depth - 1; i > 0; i-- {
		nested = L{i, nested}
	}
	got, err := arr.Flatten(nested)
	require.NoError(t, err)
	require.Len(t, got, depth)
	assert.Equal(t, 1, got[0])
	assert.Equal(t, depth, got[depth-1])
}

func TestFlattenDoesNotModifyInput(t *testing.T) {
	in := L{1, L{2, L{3}}}
	_, err := arr.Flatten(in)
	require.NoError(t, err)
	assert.Equal(t, L{1, L{2, L{3}}}, in)
}

func TestFlattenRejectsNonLists(t *testing.T) {
	for _, v := range []any{collections.Tuple{1, 2}, collections.NewDict(), "abc", 1, nil, []int{1}} {
		_, err := arr.Flatten(v)
		assert.ErrorIs(t, err, collections.ErrUnsupportedType, "%T", v)
	}
}
