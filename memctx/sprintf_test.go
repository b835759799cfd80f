package memctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSprintf(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	buf := ctx.Sprintf("Hello, %s!", "World")
	require.Len(t, buf, 14, "text plus one terminator")
	require.Equal(t, "Hello, World!", string(buf[:13]))
	require.Equal(t, byte(0), buf[13])
}

func TestSprintfEmptyFormat(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	buf := ctx.Sprintf("")
	require.Len(t, buf, 1)
	require.Equal(t, byte(0), buf[0])
}

func TestSprintfNilContext(t *testing.T) {
	var ctx *Context
	require.Nil(t, ctx.Sprintf("Hello, %s!", "World"))
}

func TestSprintfBackedByRegion(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	before := ctx.Consumed()
	buf := ctx.Sprintf("%d bottles", 99)
	require.NotNil(t, buf)
	require.Greater(t, ctx.Consumed(), before, "formatted text consumes region space")
	require.Equal(t, 1, ctx.BlockCount())
}

func TestSprintfOversized(t *testing.T) {
	ctx := New()
	defer ctx.Release()

	long := make([]byte, 6000)
	for i := range long {
		long[i] = 'x'
	}
	buf := ctx.Sprintf("%s", long)
	require.Len(t, buf, 6001)
	require.Equal(t, 2, ctx.BlockCount(), "oversized text opens a new block")
}
