package symmetry

import (
	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
)

// ConjugateFlip returns the flip coordinate reached by decoding flip to
// an edge-orientation array, applying k whole-cube rotations via
// Conjugate, and re-encoding. EP is the solved arrangement, so every
// edge counts as sitting in its own slot: the result is the conjugated
// flip of a cube whose slice edges occupy the slice. ConjugateFlipSlice
// covers every slice combination.
func ConjugateFlip(flip, k int) int {
	c := cubie.Cube{EP: cubie.Solved().EP, EO: coord.DecodeFlip(flip)}
	c = Conjugate(c, k)
	return coord.EncodeFlip(c.EO)
}

// ConjugateSliceComb returns the slice-combination coordinate reached by
// decoding sliceComb to an edge-position array, applying k whole-cube
// rotations, and re-encoding back to its combination component. The
// four UD-slice positions (FR,FL,BL,BR) map onto one another under this
// rotation (see conjugateOnce's edgePerm), so the combination is closed
// under conjugation even though the specific slot each edge lands in
// can change.
func ConjugateSliceComb(sliceComb, k int) int {
	c := cubie.Cube{EP: coord.DecodeSliceSorted(sliceComb * 24)}
	c = Conjugate(c, k)
	return coord.EncodeSliceComb(c.EP)
}

// ConjugateFlipSlice conjugates the joint (flip, slice-combination)
// coordinate pair spec.md §4.3 calls "flipslice" by k rotations: this is
// conjugate_coord(coord, s) for the phase-1 admissible-bound coordinate,
// scoped to the four-element rotation group this package implements
// (see doc.go). Both components are conjugated together on one cube,
// since how the rotation changes an edge's orientation depends on
// whether that edge and its slot belong to the slice.
func ConjugateFlipSlice(flip, sliceComb, k int) (int, int) {
	c := cubie.Cube{EP: coord.DecodeSliceSorted(sliceComb * 24), EO: coord.DecodeFlip(flip)}
	c = Conjugate(c, k)
	return coord.EncodeFlip(c.EO), coord.EncodeSliceComb(c.EP)
}

// FlipSliceClasses partitions the raw flip*coord.NumSliceComb+sliceComb
// space into orbits under the rotation group: spec.md §4.3's
// class_index/self_symmetries pair, scoped to the four-element group
// this package implements. Depth in the phase-1 pruning BFS is a
// symmetry invariant (conjugation is an automorphism of the move graph
// that fixes the goal state, since U/D-axis rotation carries the solved
// flip/slice-combination pair to itself), so one table entry per class
// stands in for every raw coordinate in that class.
type FlipSliceClasses struct {
	// classOf maps a raw coordinate to its class index.
	classOf []int32
	// symOf maps a raw coordinate to the s (0..NumRotations-1) with
	// ConjugateFlipSlice(rep, s) == raw, where rep is that class's
	// representative — the (class, s) pair class_index returns.
	symOf []uint8
	// reps lists each class's representative raw coordinate.
	reps []int32
	// selfSyms lists each class's self-symmetry bitmask: bit s set iff
	// conjugating the representative by s fixes it.
	selfSyms []uint8
}

// BuildFlipSliceClasses runs the orbit partition once, over the full
// coord.NumFlip*coord.NumSliceComb raw space.
func BuildFlipSliceClasses() *FlipSliceClasses {
	n := coord.NumFlip * coord.NumSliceComb
	classOf := make([]int32, n)
	for i := range classOf {
		classOf[i] = -1
	}
	symOf := make([]uint8, n)
	var reps []int32
	var selfSyms []uint8

	for raw := 0; raw < n; raw++ {
		if classOf[raw] >= 0 {
			continue
		}
		flip, sliceComb := raw/coord.NumSliceComb, raw%coord.NumSliceComb

		var orbit [NumRotations]int
		for k := 0; k < NumRotations; k++ {
			f2, s2 := ConjugateFlipSlice(flip, sliceComb, k)
			orbit[k] = f2*coord.NumSliceComb + s2
		}
		j := 0
		for k := 1; k < NumRotations; k++ {
			if orbit[k] < orbit[j] {
				j = k
			}
		}
		repRaw := orbit[j]

		class := int32(len(reps))
		reps = append(reps, int32(repRaw))
		var self uint8
		for k := 0; k < NumRotations; k++ {
			o := orbit[k]
			s := uint8((k - j + NumRotations) % NumRotations)
			if classOf[o] < 0 {
				classOf[o] = class
				symOf[o] = s
			}
			if o == repRaw {
				self |= 1 << s
			}
		}
		selfSyms = append(selfSyms, self)
	}

	return &FlipSliceClasses{classOf: classOf, symOf: symOf, reps: reps, selfSyms: selfSyms}
}

// NumClasses returns the number of orbits found: the dense range
// ClassIndex's class return value falls in.
func (fc *FlipSliceClasses) NumClasses() int { return len(fc.reps) }

// ClassIndex maps a raw flip*coord.NumSliceComb+sliceComb coordinate to
// its class and the symmetry s with
// ConjugateFlipSlice(representative, s) == raw.
func (fc *FlipSliceClasses) ClassIndex(raw int) (class, s int) {
	return int(fc.classOf[raw]), int(fc.symOf[raw])
}

// SelfSymmetries returns the bitmask of rotations that fix class's
// representative: bit s is set iff conjugating it by s fixes it.
func (fc *FlipSliceClasses) SelfSymmetries(class int) uint8 {
	return fc.selfSyms[class]
}

// Representative returns class's representative raw coordinate.
func (fc *FlipSliceClasses) Representative(class int) int {
	return int(fc.reps[class])
}
