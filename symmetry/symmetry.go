package symmetry

import "github.com/twophase/cube/cubie"

// NumRotations is the order of the U-D axis rotation group this
// package implements: identity, quarter, half and three-quarter turns
// of the whole cube about the vertical axis.
const NumRotations = 4

// cornerPerm and edgePerm relabel corner/edge position indices under
// one 90-degree whole-cube rotation about the U-D axis (U and D fixed,
// F->R->B->L->F), derived directly from how the rotation permutes each
// position's adjacent-face set.
var cornerPerm = [cubie.NumCorners]cubie.Corner{
	cubie.UBR, cubie.URF, cubie.UFL, cubie.ULB,
	cubie.DRB, cubie.DFR, cubie.DLF, cubie.DBL,
}

var edgePerm = [cubie.NumEdges]cubie.Edge{
	cubie.UB, cubie.UR, cubie.UF, cubie.UL,
	cubie.DB, cubie.DR, cubie.DF, cubie.DL,
	cubie.BR, cubie.FR, cubie.FL, cubie.BL,
}

// faceRot relabels faces under the same rotation: U and D are fixed,
// F->R->B->L->F.
var faceRot = [cubie.NumFaces]cubie.Face{
	cubie.U, cubie.B, cubie.R, cubie.D, cubie.F, cubie.L,
}

// Conjugate returns the cube state equivalent to c after relabeling
// positions by k applications (0..3) of the U-D axis quarter rotation.
// Because U and D never move under this rotation, corner orientation
// values carry over unchanged. Edge orientation is read against U/D for
// UD-layer edges and against F/B for slice edges, and the rotation turns
// F/B into R/L, so an edge's orientation flips when exactly one of the
// edge and the slot it occupies belongs to the UD slice.
func Conjugate(c cubie.Cube, k int) cubie.Cube {
	k = ((k % NumRotations) + NumRotations) % NumRotations
	for ; k > 0; k-- {
		c = conjugateOnce(c)
	}
	return c
}

func conjugateOnce(c cubie.Cube) cubie.Cube {
	var out cubie.Cube
	for i := 0; i < cubie.NumCorners; i++ {
		out.CP[cornerPerm[i]] = cornerPerm[c.CP[i]]
		out.CO[cornerPerm[i]] = c.CO[i]
	}
	for i := 0; i < cubie.NumEdges; i++ {
		out.EP[edgePerm[i]] = edgePerm[c.EP[i]]
		eo := c.EO[i]
		if (cubie.Edge(i) >= cubie.FR) != (c.EP[i] >= cubie.FR) {
			eo ^= 1
		}
		out.EO[edgePerm[i]] = eo
	}
	return out
}

// ConjugateMove returns the move equivalent to m after k applications
// of the rotation: same turn direction, relabeled face.
func ConjugateMove(m cubie.Move, k int) cubie.Move {
	k = ((k % NumRotations) + NumRotations) % NumRotations
	face := m.Face()
	for ; k > 0; k-- {
		face = faceRot[face]
	}
	turn := int8(m) % 3
	return cubie.Move(int8(face)*3 + turn)
}

// ConjugateMoves maps a whole move sequence by k rotations.
func ConjugateMoves(moves []cubie.Move, k int) []cubie.Move {
	out := make([]cubie.Move, len(moves))
	for i, m := range moves {
		out[i] = ConjugateMove(m, k)
	}
	return out
}

// Inverse returns the rotation count that undoes k applications.
func Inverse(k int) int { return (NumRotations - (k % NumRotations)) % NumRotations }
