package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/symmetry"
)

func TestConjugateFlipSliceIsOrderFour(t *testing.T) {
	flip, sliceComb := 137, 42
	f, s := flip, sliceComb
	for k := 0; k < symmetry.NumRotations; k++ {
		f, s = symmetry.ConjugateFlipSlice(f, s, 1)
	}
	require.Equal(t, flip, f)
	require.Equal(t, sliceComb, s)
}

func TestConjugateFlipSliceFixesGoal(t *testing.T) {
	for k := 0; k < symmetry.NumRotations; k++ {
		f, s := symmetry.ConjugateFlipSlice(0, coord.SliceSortedGoalComb, k)
		require.Equal(t, 0, f)
		require.Equal(t, coord.SliceSortedGoalComb, s)
	}
}

func TestBuildFlipSliceClassesPartitionsSpace(t *testing.T) {
	classes := symmetry.BuildFlipSliceClasses()
	n := coord.NumFlip * coord.NumSliceComb
	// The group has 4 elements, so it can shrink the space by at most
	// 4x; every orbit has 1, 2 or 4 members.
	require.Greater(t, classes.NumClasses(), n/4)
	require.LessOrEqual(t, classes.NumClasses(), n)

	goalClass, goalSym := classes.ClassIndex(coord.SliceSortedGoalComb)
	require.Equal(t, 0, goalSym)
	rep := classes.Representative(goalClass)
	require.Equal(t, 0, rep/coord.NumSliceComb)
	require.Equal(t, coord.SliceSortedGoalComb, rep%coord.NumSliceComb)
}

func TestSelfSymmetriesAlwaysFixIdentity(t *testing.T) {
	classes := symmetry.BuildFlipSliceClasses()
	for class := 0; class < classes.NumClasses(); class++ {
		require.NotZero(t, classes.SelfSymmetries(class)&1, "class %d missing identity self-symmetry", class)
	}
}

func TestClassIndexReconstructsRawViaSymmetry(t *testing.T) {
	classes := symmetry.BuildFlipSliceClasses()
	raw := 900*coord.NumSliceComb + 123
	class, s := classes.ClassIndex(raw)
	rep := classes.Representative(class)
	f2, s2 := symmetry.ConjugateFlipSlice(rep/coord.NumSliceComb, rep%coord.NumSliceComb, s)
	require.Equal(t, raw, f2*coord.NumSliceComb+s2)
}
