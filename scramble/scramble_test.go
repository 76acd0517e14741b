package scramble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/scramble"
)

func TestGenerateDefaultLength(t *testing.T) {
	c, moves, err := scramble.Generate(0)
	require.NoError(t, err)
	require.Len(t, moves, scramble.DefaultMoves)
	require.Equal(t, cubie.ApplyMoves(cubie.Solved(), moves), c)
}

func TestGenerateNoRedundantMoves(t *testing.T) {
	_, moves, err := scramble.Generate(50)
	require.NoError(t, err)
	for i := 1; i < len(moves); i++ {
		prev, m := moves[i-1], moves[i]
		require.False(t, m.IsSameFace(prev))
		if m.IsOppositeFace(prev) {
			require.GreaterOrEqual(t, m.Face(), prev.Face())
		}
	}
}

func TestGenerateProducesSolvableCube(t *testing.T) {
	c, _, err := scramble.Generate(15)
	require.NoError(t, err)
	require.True(t, c.IsSolvable())
}
