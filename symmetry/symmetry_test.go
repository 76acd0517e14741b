package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/symmetry"
)

func TestConjugateIsOrderFour(t *testing.T) {
	c := cubie.ApplyMoves(cubie.Solved(), []cubie.Move{cubie.MR, cubie.MU, cubie.MF2})
	require.Equal(t, c, symmetry.Conjugate(c, 4))
	require.Equal(t, c, symmetry.Conjugate(c, 0))
}

func TestConjugateSolvedIsSolved(t *testing.T) {
	for k := 0; k < symmetry.NumRotations; k++ {
		require.Equal(t, cubie.Solved(), symmetry.Conjugate(cubie.Solved(), k))
	}
}

func TestConjugateCommutesWithMoves(t *testing.T) {
	c := cubie.ApplyMoves(cubie.Solved(), []cubie.Move{cubie.MR, cubie.MU2, cubie.ML3, cubie.MF})
	for _, m := range []cubie.Move{cubie.MU, cubie.MR2, cubie.MF3, cubie.MD2, cubie.ML, cubie.MB} {
		for k := 0; k < symmetry.NumRotations; k++ {
			lhs := symmetry.Conjugate(cubie.ApplyMove(c, m), k)
			rhs := cubie.ApplyMove(symmetry.Conjugate(c, k), symmetry.ConjugateMove(m, k))
			require.Equal(t, lhs, rhs, "move %s rotation %d", m, k)
		}
	}
}

func TestConjugateMovesRoundTrip(t *testing.T) {
	moves := []cubie.Move{cubie.MR, cubie.MU2, cubie.ML3, cubie.MF, cubie.MD}
	for k := 0; k < symmetry.NumRotations; k++ {
		fwd := symmetry.ConjugateMoves(moves, k)
		back := symmetry.ConjugateMoves(fwd, symmetry.Inverse(k))
		require.Equal(t, moves, back)
	}
}

func TestInverseRotation(t *testing.T) {
	c := cubie.ApplyMoves(cubie.Solved(), []cubie.Move{cubie.MR, cubie.MU, cubie.MF2})
	for k := 0; k < symmetry.NumRotations; k++ {
		back := symmetry.Conjugate(symmetry.Conjugate(c, k), symmetry.Inverse(k))
		require.Equal(t, c, back)
	}
}
