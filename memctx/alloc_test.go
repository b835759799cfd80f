package memctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocInvalidArguments(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	require.Nil(t, ctx.Alloc(0))
	require.Nil(t, ctx.Alloc(-1))
	require.Equal(t, 1, ctx.BlockCount(), "failed alloc must not grow the chain")
	require.Equal(t, 0, ctx.BlockAt(0).Consumed(), "failed alloc must not consume")
}

func TestAllocFromHeadBlock(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	// 4000 bytes fit in the 4069-byte head block.
	buf := ctx.Alloc(4000)
	require.NotNil(t, buf)
	require.Len(t, buf, 4000)
	require.Equal(t, 1, ctx.BlockCount())
	require.Equal(t, 4000, ctx.BlockAt(0).Consumed())
	requireInvariants(t, ctx)
}

func TestAllocOversizedGrowsByPageMultiple(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	// 5000 exceeds one page; the new block is the next page multiple (8138).
	buf := ctx.Alloc(5000)
	require.NotNil(t, buf)
	require.Len(t, buf, 5000)
	require.Equal(t, 2, ctx.BlockCount())

	b := ctx.BlockAt(1)
	require.Equal(t, 2*DefaultPageSize, b.Capacity())
	require.Equal(t, 5000, b.Consumed())
	requireInvariants(t, ctx)
}

func TestAllocAlignment(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	// Odd-sized requests consume the pointer-aligned size.
	a := ctx.Alloc(3)
	require.Len(t, a, 3)
	require.Equal(t, alignment, ctx.BlockAt(0).Consumed())

	b := ctx.Alloc(1)
	require.Len(t, b, 1)
	require.Equal(t, 2*alignment, ctx.BlockAt(0).Consumed())
}

func TestAllocFirstFit(t *testing.T) {
	ctx := NewWithPageSize(256)
	defer ctx.Release()

	// Fill most of the head, then force a second block.
	require.NotNil(t, ctx.Alloc(200))
	require.NotNil(t, ctx.Alloc(200))
	require.Equal(t, 2, ctx.BlockCount())

	// A small request lands in the head block's remaining tail space,
	// not in the most recently added block.
	require.NotNil(t, ctx.Alloc(41))
	require.Equal(t, 200+48, ctx.BlockAt(0).Consumed())
	require.Equal(t, 200, ctx.BlockAt(1).Consumed())
	requireInvariants(t, ctx)
}

func TestAllocStability(t *testing.T) {
	ctx := NewWithPageSize(128)
	defer ctx.Release()

	first := ctx.Alloc(64)
	for i := range first {
		first[i] = 0xAA
	}

	// Many follow-up allocations must not disturb earlier contents.
	for i := 0; i < 100; i++ {
		b := ctx.Alloc(96)
		require.NotNil(t, b)
		for j := range b {
			b[j] = byte(i)
		}
	}

	for i := range first {
		require.Equal(t, byte(0xAA), first[i], "byte %d corrupted", i)
	}
	requireInvariants(t, ctx)
}

func TestAllocReturnsZeroedMemory(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	for i := 0; i < 10; i++ {
		b := ctx.Alloc(100)
		for j := range b {
			require.Zero(t, b[j])
			b[j] = 0xFF
		}
	}
}

func TestAllocBoundedSlice(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	b := ctx.Alloc(10)
	require.Len(t, b, 10)
	require.Equal(t, 10, cap(b), "allocation must not expose neighboring space")
}

func TestAllocExactPageSize(t *testing.T) {
	ctx := NewWithPageSize(4096)
	defer ctx.Release()

	b := ctx.Alloc(4096)
	require.Len(t, b, 4096)
	require.Equal(t, 1, ctx.BlockCount())
	require.Equal(t, 0, ctx.BlockAt(0).Free())

	// The head is full now; the next request opens a fresh page.
	require.NotNil(t, ctx.Alloc(1))
	require.Equal(t, 2, ctx.BlockCount())
}
