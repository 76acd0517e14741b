package cubie

// Corner names the eight corner cubies in the standard Kociemba order.
type Corner int8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
	NumCorners = 8
)

func (c Corner) String() string {
	return [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}[c]
}

// Edge names the twelve edge cubies in the standard Kociemba order.
type Edge int8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
	NumEdges = 12
)

func (e Edge) String() string {
	return [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}[e]
}

// Face names the six faces a move turns.
type Face int8

const (
	U Face = iota
	R
	F
	D
	L
	B
	NumFaces = 6
)

func (f Face) String() string {
	return [NumFaces]string{"U", "R", "F", "D", "L", "B"}[f]
}

// Move is one of the eighteen basic face turns: six faces times
// {quarter clockwise, half turn, quarter counter-clockwise}, in that
// order, matching the alphabet U,U2,U',R,R2,R',F,F2,F',D,D2,D',L,L2,L',B,B2,B'.
type Move int8

const (
	MU Move = iota
	MU2
	MU3
	MR
	MR2
	MR3
	MF
	MF2
	MF3
	MD
	MD2
	MD3
	ML
	ML2
	ML3
	MB
	MB2
	MB3
	NumMoves = 18
)

var moveNames = [NumMoves]string{
	"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'",
	"D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'",
}

func (m Move) String() string { return moveNames[m] }

// Face returns the face this move turns.
func (m Move) Face() Face { return Face(int8(m) / 3) }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	face := int8(m) / 3
	turn := int8(m) % 3
	return Move(face*3 + (2 - turn))
}

// IsSameFace reports whether m and o turn the same face.
func (m Move) IsSameFace(o Move) bool { return m.Face() == o.Face() }

// IsOppositeFace reports whether m and o turn opposite faces (U/D, R/L, F/B).
func (m Move) IsOppositeFace(o Move) bool {
	diff := int8(m.Face()) - int8(o.Face())
	return diff == 3 || diff == -3
}

// ParseMove parses one of the eighteen move names, e.g. "R2" or "F'".
func ParseMove(s string) (Move, error) {
	for i, n := range moveNames {
		if n == s {
			return Move(i), nil
		}
	}
	return 0, Err(ErrInvalidMove, s)
}
