package movetable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/movetable"
)

func TestTwistTableMatchesDirectMultiply(t *testing.T) {
	tables := movetable.Build()
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MR, cubie.MU, cubie.MF3, cubie.ML2} {
		twist := coord.EncodeTwist(c.CO)
		c = cubie.ApplyMove(c, m)
		want := coord.EncodeTwist(c.CO)
		require.Equal(t, want, movetable.Move(tables.Twist, twist, int(m)))
	}
}

func TestFlipTableMatchesDirectMultiply(t *testing.T) {
	tables := movetable.Build()
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MR, cubie.MU, cubie.MF3, cubie.ML2} {
		flip := coord.EncodeFlip(c.EO)
		c = cubie.ApplyMove(c, m)
		want := coord.EncodeFlip(c.EO)
		require.Equal(t, want, movetable.Move(tables.Flip, flip, int(m)))
	}
}

func TestSliceSortedTableMatchesDirectMultiply(t *testing.T) {
	tables := movetable.Build()
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MR, cubie.MU, cubie.MF3, cubie.ML2} {
		ss := coord.EncodeSliceSorted(c.EP)
		c = cubie.ApplyMove(c, m)
		want := coord.EncodeSliceSorted(c.EP)
		require.Equal(t, want, movetable.Move(tables.SliceSorted, ss, int(m)))
	}
}

func TestCornersTableMatchesDirectMultiply(t *testing.T) {
	tables := movetable.Build()
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MR, cubie.MU, cubie.MF3, cubie.ML2} {
		idx := coord.EncodeCorners(c.CP)
		c = cubie.ApplyMove(c, m)
		want := coord.EncodeCorners(c.CP)
		require.Equal(t, want, movetable.Move(tables.Corners, idx, int(m)))
	}
}

func TestUAndDEdgesTablesMatchDirectMultiply(t *testing.T) {
	tables := movetable.Build()
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MU, cubie.MD2, cubie.MR2} {
		u := coord.EncodeUEdges(c.EP)
		d := coord.EncodeDEdges(c.EP)
		c = cubie.ApplyMove(c, m)
		require.Equal(t, coord.EncodeUEdges(c.EP), movetable.Move(tables.UEdges, u, int(m)))
		require.Equal(t, coord.EncodeDEdges(c.EP), movetable.Move(tables.DEdges, d, int(m)))
	}
}
