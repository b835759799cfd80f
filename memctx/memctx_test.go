package memctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants checks 0 <= consumed <= capacity for every block.
func requireInvariants(t *testing.T, c *Context) {
	t.Helper()
	for i := 0; i < c.BlockCount(); i++ {
		b := c.BlockAt(i)
		require.NotNil(t, b)
		require.GreaterOrEqual(t, b.Consumed(), 0, "block %d", i)
		require.LessOrEqual(t, b.Consumed(), b.Capacity(), "block %d", i)
	}
}

func TestNew(t *testing.T) {
	ctx := New()
	require.NotNil(t, ctx)
	defer ctx.Release()

	require.Equal(t, 1, ctx.BlockCount())
	require.Equal(t, DefaultPageSize, ctx.PageSize())

	head := ctx.BlockAt(0)
	require.NotNil(t, head)
	require.Equal(t, DefaultPageSize, head.Capacity())
	require.Equal(t, 0, head.Consumed())
	require.False(t, head.IsFile())
	requireInvariants(t, ctx)
}

func TestNewWithPageSize(t *testing.T) {
	ctx := NewWithPageSize(1024)
	defer ctx.Release()

	require.Equal(t, 1024, ctx.PageSize())
	require.Equal(t, 1024, ctx.BlockAt(0).Capacity())
}

func TestNewWithPageSizeNonPositive(t *testing.T) {
	for _, size := range []int{0, -1, -4096} {
		ctx := NewWithPageSize(size)
		require.Equal(t, DefaultPageSize, ctx.PageSize(), "page size %d", size)
		ctx.Release()
	}
}

func TestRelease(t *testing.T) {
	ctx := New()
	buf := ctx.Alloc(64)
	require.NotNil(t, buf)

	ctx.Release()

	// A released handle behaves like an absent one.
	require.Nil(t, ctx.Alloc(64))
	require.Equal(t, 0, ctx.BlockCount())
	require.Nil(t, ctx.BlockAt(0))
	require.Empty(t, ctx.Describe())

	// Releasing again is a no-op.
	ctx.Release()
}

func TestNilContext(t *testing.T) {
	var ctx *Context
	require.Nil(t, ctx.Alloc(64))
	require.Equal(t, 0, ctx.BlockCount())
	require.Nil(t, ctx.BlockAt(0))
	require.Nil(t, ctx.BlockAt(-1))
	require.Empty(t, ctx.Describe())
	require.Nil(t, ctx.Sprintf("x"))
	require.Equal(t, 0, ctx.Consumed())
	require.Equal(t, 0, ctx.Capacity())
	ctx.Release()
	ctx.ReleaseFile([]byte("x"))
}

func TestBlockNilAccessors(t *testing.T) {
	var b *Block
	require.Equal(t, 0, b.Capacity())
	require.Equal(t, 0, b.Consumed())
	require.Equal(t, 0, b.Free())
	require.False(t, b.IsFile())
	require.Nil(t, b.Bytes())
}
