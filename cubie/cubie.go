package cubie

// Cube is the cubie-level representation of a cube state: where each
// solved-position corner/edge currently sits (permutation) and how it
// is twisted/flipped there (orientation). CP[i]/CO[i] describe the
// corner occupying position i; EP[i]/EO[i] describe the edge occupying
// position i. It is a small value type, copied by assignment.
type Cube struct {
	CP [NumCorners]Corner
	CO [NumCorners]int8
	EP [NumEdges]Edge
	EO [NumEdges]int8
}

// Solved returns the identity cube.
func Solved() Cube {
	var c Cube
	for i := range c.CP {
		c.CP[i] = Corner(i)
	}
	for i := range c.EP {
		c.EP[i] = Edge(i)
	}
	return c
}

// CornerMultiply composes two cubes' corner permutation/orientation
// only, matching original_source's split corner_multiply/edge_multiply
// used by table construction, which never needs both halves at once.
func CornerMultiply(a, b Cube) Cube {
	var c Cube
	c.EP = a.EP
	c.EO = a.EO
	for i := 0; i < NumCorners; i++ {
		c.CP[i] = a.CP[b.CP[i]]
		c.CO[i] = (a.CO[b.CP[i]] + b.CO[i]) % 3
	}
	return c
}

// EdgeMultiply composes two cubes' edge permutation/orientation only.
func EdgeMultiply(a, b Cube) Cube {
	var c Cube
	c.CP = a.CP
	c.CO = a.CO
	for i := 0; i < NumEdges; i++ {
		c.EP[i] = a.EP[b.EP[i]]
		c.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	return c
}

// Multiply composes a then b: apply a to the solved cube, then b to the
// result. This is the full move-algebra composition of spec.md §4.1.
func Multiply(a, b Cube) Cube {
	c := CornerMultiply(a, b)
	e := EdgeMultiply(a, b)
	c.EP = e.EP
	c.EO = e.EO
	return c
}

// Inverse returns the cube that undoes c.
func (c Cube) Inverse() Cube {
	var inv Cube
	for i := 0; i < NumCorners; i++ {
		inv.CP[c.CP[i]] = Corner(i)
	}
	for i := 0; i < NumCorners; i++ {
		inv.CO[i] = -c.CO[inv.CP[i]]
		if inv.CO[i] < 0 {
			inv.CO[i] += 3
		}
	}
	for i := 0; i < NumEdges; i++ {
		inv.EP[c.EP[i]] = Edge(i)
	}
	for i := 0; i < NumEdges; i++ {
		inv.EO[i] = -c.EO[inv.EP[i]]
		if inv.EO[i] < 0 {
			inv.EO[i] += 2
		}
	}
	return inv
}

// ApplyMove returns the state after applying m to c.
func ApplyMove(c Cube, m Move) Cube {
	return Multiply(c, MoveCube[m])
}

// ApplyMoves returns the state after applying a sequence of moves to c.
func ApplyMoves(c Cube, moves []Move) Cube {
	for _, m := range moves {
		c = ApplyMove(c, m)
	}
	return c
}

// IsSolvable checks the three parity/sum invariants a physically
// reachable cube state must satisfy: corner and edge permutations of
// equal parity, corner orientation sum 0 mod 3, edge
// orientation sum 0 mod 2.
func (c Cube) IsSolvable() bool {
	cSum := int8(0)
	for _, o := range c.CO {
		cSum += o
	}
	if cSum%3 != 0 {
		return false
	}
	eSum := int8(0)
	for _, o := range c.EO {
		eSum += o
	}
	if eSum%2 != 0 {
		return false
	}
	return cornerParity(c.CP) == edgeParity(c.EP)
}

func cornerParity(cp [NumCorners]Corner) int {
	return permParity(cp[:], func(c Corner) int { return int(c) })
}

func edgeParity(ep [NumEdges]Edge) int {
	return permParity(ep[:], func(e Edge) int { return int(e) })
}

func permParity[T any](p []T, idx func(T) int) int {
	seen := make([]bool, len(p))
	parity := 0
	for i := range p {
		if seen[i] {
			continue
		}
		j := i
		cycleLen := 0
		for !seen[j] {
			seen[j] = true
			j = idx(p[j])
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}

// MoveCube holds the concrete cube state produced by each of the
// eighteen basic moves, ported from the original implementation's
// U/R/F/D/L/B move constants and their squares/inverses.
var MoveCube [NumMoves]Cube

func init() {
	base := [NumFaces]Cube{
		{
			CP: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
			CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
			EP: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
			EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			CP: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
			CO: [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
			EP: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
			EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			CP: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
			CO: [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
			EP: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
			EO: [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
		},
		{
			CP: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
			CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
			EP: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
			EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			CP: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
			CO: [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
			EP: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
			EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			CP: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
			CO: [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
			EP: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
			EO: [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
		},
	}
	solved := Solved()
	for f := 0; f < NumFaces; f++ {
		cur := solved
		turn := base[f]
		for t := 0; t < 3; t++ {
			cur = Multiply(cur, turn)
			MoveCube[f*3+t] = cur
		}
	}
}
