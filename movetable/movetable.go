package movetable

import (
	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
)

// Tables holds every coordinate's move table, each a flat
// size*coord.NumMove slice indexed [value*coord.NumMove+move]. UDEdges
// holds coord.UDEdgesUndefined for every move that moves a slice edge
// out of the slice; only its phase-2 move columns are real coordinates.
type Tables struct {
	Twist       []uint16
	Flip        []uint16
	SliceSorted []uint16
	SliceComb   []uint16
	UEdges      []uint16
	DEdges      []uint16
	Corners     []uint16
	UDEdges     []uint16
}

// Build constructs every move table from scratch by reconstructing a
// representative cube for each coordinate value, applying each of the
// eighteen basic moves, and re-encoding the result. Each coordinate
// depends on only one half of cubie.Cube's state (CO or CP for corner
// coordinates, EO or EP for edge coordinates); the other half is filled
// with the identity so Multiply's result for the tracked half does not
// depend on it.
func Build() *Tables {
	return &Tables{
		Twist:       buildCorner(coord.NumTwist, func(idx int) cubie.Cube {
			return cubie.Cube{CP: identityCP(), CO: coord.DecodeTwist(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeTwist(c.CO) }),
		Flip: buildEdge(coord.NumFlip, func(idx int) cubie.Cube {
			return cubie.Cube{EP: identityEP(), EO: coord.DecodeFlip(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeFlip(c.EO) }),
		SliceSorted: buildEdge(coord.NumSliceSorted, func(idx int) cubie.Cube {
			return cubie.Cube{EP: coord.DecodeSliceSorted(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeSliceSorted(c.EP) }),
		SliceComb: buildEdge(coord.NumSliceComb, func(idx int) cubie.Cube {
			return cubie.Cube{EP: coord.DecodeSliceSorted(idx * 24)}
		}, func(c cubie.Cube) int { return coord.EncodeSliceComb(c.EP) }),
		UEdges: buildEdge(coord.NumSliceSorted, func(idx int) cubie.Cube {
			return cubie.Cube{EP: coord.DecodeUEdges(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeUEdges(c.EP) }),
		DEdges: buildEdge(coord.NumSliceSorted, func(idx int) cubie.Cube {
			return cubie.Cube{EP: coord.DecodeDEdges(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeDEdges(c.EP) }),
		Corners: buildCorner(coord.NumCorners, func(idx int) cubie.Cube {
			return cubie.Cube{CP: coord.DecodeCorners(idx)}
		}, func(c cubie.Cube) int { return coord.EncodeCorners(c.CP) }),
		UDEdges: buildEdge(coord.NumUDEdges, func(idx int) cubie.Cube {
			var ep [cubie.NumEdges]cubie.Edge
			r := coord.DecodeUDEdges(idx)
			for i := 0; i < 8; i++ {
				ep[i] = cubie.Edge(r[i])
			}
			for i := 8; i < cubie.NumEdges; i++ {
				ep[i] = cubie.Edge(i)
			}
			return cubie.Cube{EP: ep}
		}, func(c cubie.Cube) int {
			var r [8]int
			for i := 0; i < 8; i++ {
				if c.EP[i] >= cubie.FR {
					// The move carried a slice edge into a UD-layer slot,
					// leaving the phase-2 coset.
					return coord.UDEdgesUndefined
				}
				r[i] = int(c.EP[i])
			}
			return coord.EncodeUDEdges(r)
		}),
	}
}

func identityCP() [cubie.NumCorners]cubie.Corner {
	var cp [cubie.NumCorners]cubie.Corner
	for i := range cp {
		cp[i] = cubie.Corner(i)
	}
	return cp
}

func identityEP() [cubie.NumEdges]cubie.Edge {
	var ep [cubie.NumEdges]cubie.Edge
	for i := range ep {
		ep[i] = cubie.Edge(i)
	}
	return ep
}

func buildCorner(n int, rep func(int) cubie.Cube, extract func(cubie.Cube) int) []uint16 {
	table := make([]uint16, n*coord.NumMove)
	for idx := 0; idx < n; idx++ {
		base := rep(idx)
		for m := 0; m < coord.NumMove; m++ {
			after := cubie.CornerMultiply(base, cubie.MoveCube[m])
			table[idx*coord.NumMove+m] = uint16(extract(after))
		}
	}
	return table
}

func buildEdge(n int, rep func(int) cubie.Cube, extract func(cubie.Cube) int) []uint16 {
	table := make([]uint16, n*coord.NumMove)
	for idx := 0; idx < n; idx++ {
		base := rep(idx)
		for m := 0; m < coord.NumMove; m++ {
			after := cubie.EdgeMultiply(base, cubie.MoveCube[m])
			table[idx*coord.NumMove+m] = uint16(extract(after))
		}
	}
	return table
}

// Move looks up a table entry.
func Move(table []uint16, idx, move int) int {
	return int(table[idx*coord.NumMove+move])
}
