package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/facelet"
	"github.com/twophase/cube/solver"
)

func TestSolveInvalidFacelets(t *testing.T) {
	res, err := solver.Solve("not a cube")
	require.Error(t, err)
	require.Equal(t, solver.StatusInvalidInput, res.Status)
	require.Nil(t, res.Moves)
}

func TestSolveAlreadySolved(t *testing.T) {
	solved := facelet.Solved()
	res, err := solver.Solve(solved.String())
	require.NoError(t, err)
	require.Equal(t, solver.StatusSolvedTarget, res.Status)
	require.Empty(t, res.Moves)
}

func TestSolveKnownScramble(t *testing.T) {
	const scrambled = "RLLBUFUUUBDURRBBUBRLRRFDFDDLLLUDFLRRDDFRLFDBUBFFLBBDUF"

	res, err := solver.Solve(scrambled,
		solver.WithMaxMoves(24),
		solver.WithTimeout(20*time.Second),
	)
	require.NoError(t, err)
	require.Contains(t, []solver.Status{solver.StatusSolvedTarget, solver.StatusSolvedBestEffort}, res.Status)
	require.NotEmpty(t, res.Moves)

	fc, err := facelet.Parse(scrambled)
	require.NoError(t, err)
	cc, err := fc.ToCubie()
	require.NoError(t, err)

	result := cubie.ApplyMoves(*cc, res.Moves)
	require.Equal(t, cubie.Solved(), result)
}

// TestSolveSuperflip covers spec scenario 4: every edge flipped in
// place, no corner movement — the well-known 20-move-optimal extremal
// case.
func TestSolveSuperflip(t *testing.T) {
	cc := cubie.Solved()
	for i := range cc.EO {
		cc.EO[i] = 1
	}
	fc := facelet.FromCubie(&cc)

	res, err := solver.Solve(fc.String(),
		solver.WithMaxMoves(20),
		solver.WithTimeout(60*time.Second),
	)
	require.NoError(t, err)
	require.Contains(t, []solver.Status{solver.StatusSolvedTarget, solver.StatusSolvedBestEffort}, res.Status)
	require.NotEmpty(t, res.Moves)
	require.LessOrEqual(t, res.MoveCount, 20)

	result := cubie.ApplyMoves(cc, res.Moves)
	require.Equal(t, cubie.Solved(), result)
}

// TestSolveSliceThreeCycle is a regression test for a phase-2
// admissibility gap: a pure 3-cycle of the UD-slice edges (FR->FL->BL,
// BR fixed) leaves corners and ud_edges both reading solved, since
// neither coordinate tracks the slice edges' order within their own
// slots. Before search tracked the full slice_sorted coordinate through
// phase 2, this cube was wrongly reported solved with an empty move
// sequence.
func TestSolveSliceThreeCycle(t *testing.T) {
	cc := cubie.Solved()
	cc.EP[8], cc.EP[9], cc.EP[10] = cubie.FL, cubie.BL, cubie.FR
	require.True(t, cc.IsSolvable())
	fc := facelet.FromCubie(&cc)

	res, err := solver.Solve(fc.String(),
		solver.WithMaxMoves(20),
		solver.WithTimeout(20*time.Second),
	)
	require.NoError(t, err)
	require.Contains(t, []solver.Status{solver.StatusSolvedTarget, solver.StatusSolvedBestEffort}, res.Status)
	require.NotEmpty(t, res.Moves)

	result := cubie.ApplyMoves(cc, res.Moves)
	require.Equal(t, cubie.Solved(), result)
}
