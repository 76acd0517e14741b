package scramble

import (
	"math/rand"

	"github.com/twophase/cube/cubie"
)

// DefaultMoves is the scramble length used when Generate is called with
// n<=0, matching the original implementation's "main" command, which
// truncated every generated scramble to 25 moves.
const DefaultMoves = 25

// Generate applies n random moves (DefaultMoves if n<=0) to a solved
// cube and returns the resulting state along with the moves applied.
// Consecutive moves never share or canonically duplicate a face, so the
// sequence cannot be shortened by combining adjacent moves. The
// returned error is always nil; it exists so Generate's signature
// matches facelet/solver's fallible constructors and tolerates future
// validation (e.g. a maximum n) without breaking callers.
func Generate(n int) (cubie.Cube, []cubie.Move, error) {
	if n <= 0 {
		n = DefaultMoves
	}
	c := cubie.Solved()
	moves := make([]cubie.Move, 0, n)
	havePrev := false
	var prev cubie.Move
	for len(moves) < n {
		m := cubie.Move(rand.Intn(cubie.NumMoves))
		if havePrev && !canFollow(prev, m) {
			continue
		}
		c = cubie.ApplyMove(c, m)
		moves = append(moves, m)
		prev, havePrev = m, true
	}
	return c, moves, nil
}

func canFollow(prev, m cubie.Move) bool {
	if m.IsSameFace(prev) {
		return false
	}
	if m.IsOppositeFace(prev) && m.Face() < prev.Face() {
		return false
	}
	return true
}
