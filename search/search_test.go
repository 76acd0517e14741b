package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/search"
	"github.com/twophase/cube/tables"
)

func TestSolveAlreadySolved(t *testing.T) {
	ts, err := tables.Load()
	require.NoError(t, err)

	moves, ok := search.Solve(cubie.Solved(), search.Options{
		Move:   ts.Move,
		Prune:  ts.Prune,
		MaxLen: 20,
	})
	require.True(t, ok)
	require.Empty(t, moves)
}

func TestSolveShortScrambleRoundTrip(t *testing.T) {
	ts, err := tables.Load()
	require.NoError(t, err)

	scramble := []cubie.Move{cubie.MR, cubie.MU2, cubie.MF3}
	c := cubie.ApplyMoves(cubie.Solved(), scramble)

	moves, ok := search.Solve(c, search.Options{
		Move:   ts.Move,
		Prune:  ts.Prune,
		MaxLen: 20,
	})
	require.True(t, ok)
	require.LessOrEqual(t, len(moves), 20)

	result := cubie.ApplyMoves(c, moves)
	require.Equal(t, cubie.Solved(), result)
}

func TestSolveRespectsMaxLen(t *testing.T) {
	ts, err := tables.Load()
	require.NoError(t, err)

	scramble := []cubie.Move{
		cubie.MR, cubie.MU2, cubie.MF3, cubie.ML, cubie.MD2,
		cubie.MB, cubie.MR3, cubie.MU, cubie.MF2, cubie.ML3,
	}
	c := cubie.ApplyMoves(cubie.Solved(), scramble)

	_, ok := search.Solve(c, search.Options{
		Move:   ts.Move,
		Prune:  ts.Prune,
		MaxLen: 0,
	})
	require.False(t, ok)
}
