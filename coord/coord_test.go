package coord_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
)

func TestTwistRoundTrip(t *testing.T) {
	c := cubie.Solved()
	for m := cubie.Move(0); m < cubie.NumMoves; m++ {
		c = cubie.ApplyMove(c, m)
		twist := coord.EncodeTwist(c.CO)
		require.True(t, twist >= 0 && twist < coord.NumTwist)
		require.Equal(t, c.CO, coord.DecodeTwist(twist))
	}
}

func TestFlipRoundTrip(t *testing.T) {
	c := cubie.Solved()
	for m := cubie.Move(0); m < cubie.NumMoves; m++ {
		c = cubie.ApplyMove(c, m)
		flip := coord.EncodeFlip(c.EO)
		require.True(t, flip >= 0 && flip < coord.NumFlip)
		require.Equal(t, c.EO, coord.DecodeFlip(flip))
	}
}

func TestCornersRoundTrip(t *testing.T) {
	c := cubie.Solved()
	for m := cubie.Move(0); m < cubie.NumMoves; m++ {
		c = cubie.ApplyMove(c, m)
		idx := coord.EncodeCorners(c.CP)
		require.True(t, idx >= 0 && idx < coord.NumCorners)
		require.Equal(t, c.CP, coord.DecodeCorners(idx))
	}
}

func TestSliceSortedRoundTrip(t *testing.T) {
	c := cubie.Solved()
	for m := cubie.Move(0); m < cubie.NumMoves; m++ {
		c = cubie.ApplyMove(c, m)
		idx := coord.EncodeSliceSorted(c.EP)
		require.True(t, idx >= 0 && idx < coord.NumSliceSorted)
		back := coord.DecodeSliceSorted(idx)
		require.Equal(t, idx, coord.EncodeSliceSorted(back))
	}
}

func TestSolvedSliceIsGoal(t *testing.T) {
	require.Equal(t, coord.SliceSortedGoalComb, coord.EncodeSliceComb(cubie.Solved().EP))
}

func TestUAndDEdgesRoundTrip(t *testing.T) {
	c := cubie.Solved()
	for m := cubie.Move(0); m < cubie.NumMoves; m++ {
		c = cubie.ApplyMove(c, m)
		u := coord.EncodeUEdges(c.EP)
		d := coord.EncodeDEdges(c.EP)
		require.Equal(t, u, coord.EncodeUEdges(coord.DecodeUEdges(u)))
		require.Equal(t, d, coord.EncodeDEdges(coord.DecodeDEdges(d)))
	}
}

func TestMergeUDEdgesAfterSliceLocked(t *testing.T) {
	// A random sequence of phase-2-only moves (which never disturb the
	// slice edges) keeps the slice locked, letting MergeUDEdges combine
	// the partial coordinates back into the full permutation index.
	phase2Moves := []cubie.Move{cubie.MU, cubie.MU2, cubie.MU3, cubie.MD, cubie.MD2, cubie.MD3,
		cubie.MR2, cubie.ML2, cubie.MF2, cubie.MB2}
	rng := rand.New(rand.NewSource(1))
	c := cubie.Solved()
	for i := 0; i < 50; i++ {
		c = cubie.ApplyMove(c, phase2Moves[rng.Intn(len(phase2Moves))])
	}
	require.Equal(t, coord.SliceSortedGoalComb, coord.EncodeSliceComb(c.EP))
	u := coord.EncodeUEdges(c.EP)
	d := coord.EncodeDEdges(c.EP)
	merged, ok := coord.MergeUDEdges(u, d)
	require.True(t, ok)
	require.Equal(t, coord.EncodeUDEdges(udRank(c.EP)), merged)
}

func udRank(ep [cubie.NumEdges]cubie.Edge) [8]int {
	var r [8]int
	for i := 0; i < 8; i++ {
		r[i] = int(ep[i])
	}
	return r
}
