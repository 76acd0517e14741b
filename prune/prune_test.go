package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/movetable"
	"github.com/twophase/cube/prune"
	"github.com/twophase/cube/symmetry"
)

func TestSolvedHasZeroBound(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	require.Equal(t, 0, pt.Phase1Bound(0, 0, coord.SliceSortedGoalComb))
	require.Equal(t, 0, pt.Phase2Bound(0, 0, coord.SliceSortedGoal))
}

func TestCornSliceRejectsSliceThreeCycle(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	// FR->FL->BL->FR (leaving BR fixed) is an even permutation of the
	// slice edges: corners and ud_edges alone cannot see it, but the
	// combined coordinate coord.EncodeSliceSorted does, so CornSlice must
	// report a positive bound even though corners/udEdges both read 0.
	threeCycle := coord.EncodeSliceSorted([12]cubie.Edge{
		cubie.UR, cubie.UF, cubie.UL, cubie.UB,
		cubie.DR, cubie.DF, cubie.DL, cubie.DB,
		cubie.FL, cubie.BL, cubie.FR, cubie.BR,
	})
	require.NotEqual(t, coord.SliceSortedGoal, threeCycle)
	require.Greater(t, pt.Phase2Bound(0, 0, threeCycle), 0)
}

func TestOneMoveAwayHasBoundOne(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	twist := movetable.Move(mt.Twist, 0, int(0))
	flip := movetable.Move(mt.Flip, 0, int(0))
	slice := movetable.Move(mt.SliceComb, coord.SliceSortedGoalComb, int(0))
	bound := pt.Phase1Bound(twist, flip, slice)
	require.LessOrEqual(t, bound, 1)
}

func TestNoUnreachedEntriesForReachableCoordinates(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	require.NotEqual(t, prune.Unvisited, pt.Corners[0])
	require.NotEqual(t, prune.Unvisited, pt.UDEdges[0])
	require.NotEqual(t, prune.Unvisited, pt.CornSlice[0])
}

func TestFlipSliceTableIsSymmetryReduced(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	// The rotation group has 4 elements, so every class has at most 4
	// raw members: the class-indexed table must be smaller than the raw
	// flip*sliceComb space it replaces.
	require.Less(t, len(pt.FlipSlice), coord.NumFlip*coord.NumSliceComb)
	require.NotEqual(t, prune.Unvisited, pt.FlipSlice[0])
}

func TestFlipSliceClassIndexAgreesAcrossOrbit(t *testing.T) {
	mt := movetable.Build()
	pt := prune.Build(mt)
	// A non-solved, non-fixed raw coordinate and every rotation of it
	// must land in the same class and therefore read the same bound.
	flip := movetable.Move(mt.Flip, 0, int(cubie.MR))
	sliceComb := movetable.Move(mt.SliceComb, coord.SliceSortedGoalComb, int(cubie.MR))
	baseClass, _ := pt.FlipSliceClasses.ClassIndex(flip*coord.NumSliceComb + sliceComb)
	for k := 0; k < symmetry.NumRotations; k++ {
		f2, s2 := symmetry.ConjugateFlipSlice(flip, sliceComb, k)
		class, _ := pt.FlipSliceClasses.ClassIndex(f2*coord.NumSliceComb + s2)
		require.Equal(t, baseClass, class)
	}
}
