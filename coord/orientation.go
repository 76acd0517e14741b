package coord

import "github.com/twophase/cube/cubie"

// EncodeTwist packs the first seven corner orientations into a base-3
// number; the eighth is determined by the sum-to-zero-mod-3 invariant.
func EncodeTwist(co [cubie.NumCorners]int8) int {
	t := 0
	for i := 0; i < cubie.NumCorners-1; i++ {
		t = t*3 + int(co[i])
	}
	return t
}

// DecodeTwist is the inverse of EncodeTwist.
func DecodeTwist(twist int) [cubie.NumCorners]int8 {
	var co [cubie.NumCorners]int8
	sum := 0
	for i := cubie.NumCorners - 2; i >= 0; i-- {
		co[i] = int8(twist % 3)
		sum += int(co[i])
		twist /= 3
	}
	co[cubie.NumCorners-1] = int8((3 - sum%3) % 3)
	return co
}

// EncodeFlip packs the first eleven edge orientations into a base-2
// number; the twelfth is determined by the sum-to-zero-mod-2 invariant.
func EncodeFlip(eo [cubie.NumEdges]int8) int {
	f := 0
	for i := 0; i < cubie.NumEdges-1; i++ {
		f = f*2 + int(eo[i])
	}
	return f
}

// DecodeFlip is the inverse of EncodeFlip.
func DecodeFlip(flip int) [cubie.NumEdges]int8 {
	var eo [cubie.NumEdges]int8
	sum := 0
	for i := cubie.NumEdges - 2; i >= 0; i-- {
		eo[i] = int8(flip % 2)
		sum += int(eo[i])
		flip /= 2
	}
	eo[cubie.NumEdges-1] = int8((2 - sum%2) % 2)
	return eo
}
