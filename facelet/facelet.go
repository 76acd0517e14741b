package facelet

import (
	"fmt"
	"strings"

	"github.com/twophase/cube/cubie"
)

// Cube is the 54-sticker facelet representation of a cube. Facelets[i]
// is one of 'U', 'R', 'F', 'D', 'L', 'B'.
type Cube struct {
	Facelets [NumStickers]byte
}

// Solved returns the facelet string of a solved cube.
func Solved() Cube {
	var c Cube
	for f := 0; f < 6; f++ {
		ch := cubie.Face(f).String()[0]
		for i := 0; i < numPerFace; i++ {
			c.Facelets[f*numPerFace+i] = ch
		}
	}
	return c
}

// Parse validates and parses a 54-character facelet string into a Cube.
// It checks length, alphabet, per-color sticker counts, and that each
// face's center sticker names that face — all structural checks that
// do not require building a CubieCube.
func Parse(s string) (*Cube, error) {
	if len(s) != NumStickers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(s))
	}
	var c Cube
	counts := map[byte]int{}
	for i := 0; i < NumStickers; i++ {
		ch := s[i]
		if !strings.ContainsRune("URFDLB", rune(ch)) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidColor, ch, i)
		}
		c.Facelets[i] = ch
		counts[ch]++
	}
	for _, ch := range []byte("URFDLB") {
		if counts[ch] != numPerFace {
			return nil, fmt.Errorf("%w: %q appears %d times", ErrInvalidCounts, ch, counts[ch])
		}
	}
	for f := 0; f < 6; f++ {
		center := c.Facelets[f*numPerFace+4]
		want := "URFDLB"[f]
		if center != want {
			return nil, fmt.Errorf("%w: face %c center is %c", ErrInvalidCenters, want, center)
		}
	}
	return &c, nil
}

// String renders the facelet string.
func (c *Cube) String() string { return string(c.Facelets[:]) }

// ToCubie converts the facelet representation to a cubie.Cube,
// validating that the sticker arrangement actually corresponds to a
// combination of distinct corners/edges with consistent orientation,
// and that the resulting state is solvable (equal corner and edge
// permutation parity, correct orientation sums).
func (c *Cube) ToCubie() (*cubie.Cube, error) {
	var cc cubie.Cube
	for i := 0; i < cubie.NumCorners; i++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			ch := c.Facelets[cornerFacelet[i][ori]]
			if ch == 'U' || ch == 'D' {
				break
			}
		}
		if ori == 3 {
			return nil, fmt.Errorf("%w: corner position %d has no U/D sticker", ErrNotACube, i)
		}
		col1 := cubie.Face(strings.IndexByte("URFDLB", c.Facelets[cornerFacelet[i][(ori+1)%3]]))
		col2 := cubie.Face(strings.IndexByte("URFDLB", c.Facelets[cornerFacelet[i][(ori+2)%3]]))
		found := false
		for j := 0; j < cubie.NumCorners; j++ {
			if cornerColor[j][1] == col1 && cornerColor[j][2] == col2 {
				cc.CP[i] = cubie.Corner(j)
				cc.CO[i] = int8(ori)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: corner position %d does not match any corner", ErrNotACube, i)
		}
	}
	for i := 0; i < cubie.NumEdges; i++ {
		a := cubie.Face(strings.IndexByte("URFDLB", c.Facelets[edgeFacelet[i][0]]))
		b := cubie.Face(strings.IndexByte("URFDLB", c.Facelets[edgeFacelet[i][1]]))
		found := false
		for j := 0; j < cubie.NumEdges; j++ {
			if edgeColor[j][0] == a && edgeColor[j][1] == b {
				cc.EP[i] = cubie.Edge(j)
				cc.EO[i] = 0
				found = true
				break
			}
			if edgeColor[j][0] == b && edgeColor[j][1] == a {
				cc.EP[i] = cubie.Edge(j)
				cc.EO[i] = 1
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: edge position %d does not match any edge", ErrNotACube, i)
		}
	}
	if !seenAllDistinct(cc) {
		return nil, fmt.Errorf("%w: duplicated cubie", ErrNotACube)
	}
	if !cc.IsSolvable() {
		return nil, ErrUnsolvable
	}
	return &cc, nil
}

func seenAllDistinct(cc cubie.Cube) bool {
	var cSeen [cubie.NumCorners]bool
	for _, c := range cc.CP {
		if cSeen[c] {
			return false
		}
		cSeen[c] = true
	}
	var eSeen [cubie.NumEdges]bool
	for _, e := range cc.EP {
		if eSeen[e] {
			return false
		}
		eSeen[e] = true
	}
	return true
}

// FromCubie renders a cubie.Cube as its facelet string, the inverse of
// ToCubie.
func FromCubie(cc *cubie.Cube) *Cube {
	var c Cube
	for f := 0; f < 6; f++ {
		c.Facelets[f*numPerFace+4] = "URFDLB"[f]
	}
	for i := 0; i < cubie.NumCorners; i++ {
		j := cc.CP[i]
		ori := cc.CO[i]
		for k := 0; k < 3; k++ {
			face := cornerColor[j][k]
			c.Facelets[cornerFacelet[i][(k+int(ori))%3]] = "URFDLB"[face]
		}
	}
	for i := 0; i < cubie.NumEdges; i++ {
		j := cc.EP[i]
		ori := cc.EO[i]
		for k := 0; k < 2; k++ {
			face := edgeColor[j][k]
			c.Facelets[edgeFacelet[i][(k+int(ori))%2]] = "URFDLB"[face]
		}
	}
	return &c
}
