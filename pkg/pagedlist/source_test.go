package pagedlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSource_CountAndSlice(t *testing.T) {
	src := SliceSource[int](intRange(7))
	ctx := context.Background()

	count, err := src.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	items, err := src.Slice(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, items)
}

func TestSliceSource_OutOfRangeWindows(t *testing.T) {
	src := SliceSource[int](intRange(3))
	ctx := context.Background()

	items, err := src.Slice(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = src.Slice(ctx, -1, 5)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = src.Slice(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSliceSource_SliceIsACopy(t *testing.T) {
	backing := intRange(5)
	src := SliceSource[int](backing)

	items, err := src.Slice(context.Background(), 0, 2)
	require.NoError(t, err)

	backing[0] = 42
	assert.Equal(t, 0, items[0])
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, PageDefaultSize, ClampSize(0))
	assert.Equal(t, PageDefaultSize, ClampSize(-10))
	assert.Equal(t, 50, ClampSize(50))
	assert.Equal(t, PageMaxSize, ClampSize(PageMaxSize+1))
}
