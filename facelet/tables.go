package facelet

import "github.com/twophase/cube/cubie"

// Facelet index layout: U0..U8, R9..R17, F18..F26, D27..D35, L36..L44,
// B45..B53, each face numbered row-major starting at the top-left
// sticker. This is the standard Kociemba facelet numbering; the
// corner/edge correspondence tables below are not present in the
// retrieved original_source pack (src/facelet.rs was filtered out of
// the retrieval) and are instead the standard correspondence published
// for two-phase solvers, noted in DESIGN.md.
const (
	numPerFace = 9
	NumStickers = 6 * numPerFace
)

// cornerFacelet[c] lists the three sticker indices occupied by corner c
// when the cube is solved, in the cyclic order used to decode/encode
// orientation.
var cornerFacelet = [cubie.NumCorners][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// edgeFacelet[e] lists the two sticker indices occupied by edge e when
// the cube is solved.
var edgeFacelet = [cubie.NumEdges][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

var cornerColor [cubie.NumCorners][3]cubie.Face
var edgeColor [cubie.NumEdges][2]cubie.Face

func init() {
	for c := 0; c < cubie.NumCorners; c++ {
		for k := 0; k < 3; k++ {
			cornerColor[c][k] = cubie.Face(cornerFacelet[c][k] / numPerFace)
		}
	}
	for e := 0; e < cubie.NumEdges; e++ {
		for k := 0; k < 2; k++ {
			edgeColor[e][k] = cubie.Face(edgeFacelet[e][k] / numPerFace)
		}
	}
}
