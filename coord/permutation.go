package coord

import "github.com/twophase/cube/cubie"

// EncodeCorners ranks the full corner permutation via the factorial
// number system (Lehmer code), range [0, NumCorners).
func EncodeCorners(cp [cubie.NumCorners]cubie.Corner) int {
	p := make([]int, cubie.NumCorners)
	for i, c := range cp {
		p[i] = int(c)
	}
	return lehmerEncode(p)
}

// DecodeCorners is the inverse of EncodeCorners.
func DecodeCorners(idx int) [cubie.NumCorners]cubie.Corner {
	var cp [cubie.NumCorners]cubie.Corner
	for i, v := range lehmerDecode(idx, cubie.NumCorners) {
		cp[i] = cubie.Corner(v)
	}
	return cp
}

// EncodeUDEdges ranks the permutation of the eight UD-layer edges
// (UR,UF,UL,UB,DR,DF,DL,DB), each represented as its rank 0..7 among
// themselves. Valid only once the slice edges (FR,FL,BL,BR) are
// confined to their four slice positions, i.e. during/after phase 1.
func EncodeUDEdges(udep [8]int) int {
	return lehmerEncode(udep[:])
}

// DecodeUDEdges is the inverse of EncodeUDEdges.
func DecodeUDEdges(idx int) [8]int {
	var e [8]int
	copy(e[:], lehmerDecode(idx, 8))
	return e
}

func lehmerEncode(p []int) int {
	n := len(p)
	idx := 0
	fact := 1
	for i := 1; i < n; i++ {
		fact *= i
	}
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		rank := 0
		for j := 0; j < p[i]; j++ {
			if !used[j] {
				rank++
			}
		}
		idx += rank * fact
		used[p[i]] = true
		if n-1-i > 0 {
			fact /= n - 1 - i
		}
	}
	return idx
}

func lehmerDecode(idx, n int) []int {
	fact := make([]int, n)
	fact[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		fact[i] = fact[i+1] * (n - 1 - i)
	}
	avail := make([]int, n)
	for i := range avail {
		avail[i] = i
	}
	p := make([]int, n)
	for i := 0; i < n; i++ {
		f := fact[i]
		rank := idx / f
		idx %= f
		p[i] = avail[rank]
		avail = append(avail[:rank], avail[rank+1:]...)
	}
	return p
}
