package search

import "github.com/twophase/cube/cubie"

// phase1State is the coordinate tuple tracked during phase 1: corner and
// edge orientation, slice-edge combination and full order, and the two
// assembled coordinates (u_edges, d_edges) needed to reconstruct
// ud_edges once phase 1 reaches the G1 coset. sliceSorted (combination
// and order) is carried alongside sliceComb (combination only, used for
// the phase-1 goal test and pruning lookup) so the exact slice-edge
// permutation is available unchanged at the phase-1/2 handoff.
type phase1State struct {
	twist, flip, sliceComb, sliceSorted int
	uEdges, dEdges                      int
	corners                             int
}

// phase2State is the coordinate triple tracked during phase 2, once
// ud_edges has been assembled at the phase boundary: corner permutation,
// UD-layer edge permutation, and the slice edges' own permutation
// (fixed to the goal combination by phase 1; only their order can still
// move under phase-2 moves).
type phase2State struct {
	corners, udEdges, sliceSorted int
}

// legal reports whether move m may legally follow prev in a minimal-move
// search: a repeated twist of the same face is never optimal (it folds
// into one of the eighteen basic moves, which would already be tried at
// this depth), and two moves of opposite faces commute, so only one of
// the two orderings is explored.
func legal(havePrev bool, prev, m cubie.Move) bool {
	if !havePrev {
		return true
	}
	if m.IsSameFace(prev) {
		return false
	}
	if m.IsOppositeFace(prev) && m.Face() < prev.Face() {
		return false
	}
	return true
}
