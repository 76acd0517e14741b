package coord

import "github.com/twophase/cube/cubie"

// combRank ranks an ascending 4-element subset of {0,...,n-1} using the
// combinatorial number system: rank = sum(C(p[i], i+1)).
func combRank(p [4]int) int {
	rank := 0
	for i, v := range p {
		rank += binom[v][i+1]
	}
	return rank
}

// combUnrank is the inverse of combRank for k=4 subsets of n<=12.
func combUnrank(rank, n int) [4]int {
	var p [4]int
	for i := 3; i >= 0; i-- {
		v := i
		for v+1 <= n && binom[v+1][i+1] <= rank {
			v++
		}
		p[i] = v
		rank -= binom[v][i+1]
	}
	return p
}

func lehmerEncode4(p [4]int) int {
	idx := 0
	fact := [4]int{6, 2, 1, 1}
	used := [4]bool{}
	for i, v := range p {
		rank := 0
		for j := 0; j < v; j++ {
			if !used[j] {
				rank++
			}
		}
		idx += rank * fact[i]
		used[v] = true
	}
	return idx
}

func lehmerDecode4(idx int) [4]int {
	fact := [4]int{6, 2, 1, 1}
	avail := []int{0, 1, 2, 3}
	var p [4]int
	for i := 0; i < 4; i++ {
		rank := idx / fact[i]
		idx %= fact[i]
		p[i] = avail[rank]
		avail = append(avail[:rank], avail[rank+1:]...)
	}
	return p
}

// encodeFour ranks which four of the twelve edge slots hold a member of
// a four-element target set and the relative order (0..3) of those
// members, combined as comb*24+perm, range [0, NumSliceSorted).
func encodeFour(ep [cubie.NumEdges]cubie.Edge, isMember func(cubie.Edge) bool, rankOf func(cubie.Edge) int) int {
	var positions [4]int
	var order [4]int
	n := 0
	for i := 0; i < cubie.NumEdges; i++ {
		if isMember(ep[i]) {
			positions[n] = i
			order[n] = rankOf(ep[i])
			n++
		}
	}
	return combRank(positions)*24 + lehmerEncode4(order)
}

// decodeFour is the inverse of encodeFour: it returns the twelve-slot
// edge array with the four target members placed according to the
// coordinate, and the complement slots filled with fillerAt(k), the
// k-th (0..7) non-member value in ascending order — an arbitrary but
// consistent assignment used only so move algebra has full edge arrays
// to operate on.
func decodeFour(idx int, memberOf func(rank int) cubie.Edge, fillerAt func(k int) cubie.Edge) [cubie.NumEdges]cubie.Edge {
	comb := idx / 24
	perm := idx % 24
	positions := combUnrank(comb, cubie.NumEdges)
	order := lehmerDecode4(perm)
	var ep [cubie.NumEdges]cubie.Edge
	var isTarget [cubie.NumEdges]bool
	for i, pos := range positions {
		ep[pos] = memberOf(order[i])
		isTarget[pos] = true
	}
	filler := 0
	for i := 0; i < cubie.NumEdges; i++ {
		if !isTarget[i] {
			ep[i] = fillerAt(filler)
			filler++
		}
	}
	return ep
}

// NumSliceComb is the number of ways to choose the four slice-edge
// positions among the twelve edge slots, ignoring their relative order:
// the size of the SliceComb move table and of the slice axis of the
// phase-1 joint pruning tables.
const NumSliceComb = 495

// SliceSortedGoalComb is the combination-rank (the value EncodeSliceSorted
// divides by 24) that corresponds to the four UD-slice edges sitting in
// their own slots (FR,FL,BL,BR), i.e. phase 1's search goal for this
// coordinate. It is derived, not hard-coded, so it stays correct under
// this package's own ranking convention regardless of which direction
// combRank happens to count from.
var SliceSortedGoalComb = combRank([4]int{8, 9, 10, 11})

// SliceSortedGoal is the full slice_sorted value (combination and order
// both) of a solved cube: the four slice edges in their own slots, in
// ascending order. Phase 2 must reach this exact value, not merely the
// combination SliceSortedGoalComb — an even permutation of the slice
// edges among themselves shares SliceSortedGoalComb but is unsolved.
var SliceSortedGoal = SliceSortedGoalComb * 24

// EncodeSliceComb is EncodeSliceSorted without the order component,
// range [0, NumSliceComb).
func EncodeSliceComb(ep [cubie.NumEdges]cubie.Edge) int {
	return EncodeSliceSorted(ep) / 24
}

// EncodeSliceSorted ranks the combined position+order of the four
// UD-slice edges (FR,FL,BL,BR) among the twelve edge slots.
func EncodeSliceSorted(ep [cubie.NumEdges]cubie.Edge) int {
	return encodeFour(ep,
		func(e cubie.Edge) bool { return e >= cubie.FR },
		func(e cubie.Edge) int { return int(e - cubie.FR) })
}

// DecodeSliceSorted is the inverse of EncodeSliceSorted. Non-slice
// slots are filled with UR..DB in ascending order.
func DecodeSliceSorted(idx int) [cubie.NumEdges]cubie.Edge {
	return decodeFour(idx,
		func(rank int) cubie.Edge { return cubie.FR + cubie.Edge(rank) },
		func(k int) cubie.Edge { return cubie.Edge(k) })
}

// EncodeUEdges ranks the combined position+order of the four U-layer
// edges (UR,UF,UL,UB) among the twelve edge slots.
func EncodeUEdges(ep [cubie.NumEdges]cubie.Edge) int {
	return encodeFour(ep,
		func(e cubie.Edge) bool { return e <= cubie.UB },
		func(e cubie.Edge) int { return int(e) })
}

// DecodeUEdges is the inverse of EncodeUEdges. Non-member slots are
// filled with DR..BR in ascending order.
func DecodeUEdges(idx int) [cubie.NumEdges]cubie.Edge {
	return decodeFour(idx,
		func(rank int) cubie.Edge { return cubie.Edge(rank) },
		func(k int) cubie.Edge { return cubie.DR + cubie.Edge(k) })
}

// MergeUDEdges combines the u_edges and d_edges coordinates, both
// already restricted to the eight UD-layer slots (valid only once the
// slice edges occupy their own positions, i.e. at the phase 1/2
// boundary), into the full ud_edges permutation coordinate used by
// phase 2. ok is false if the two coordinates' tracked positions are
// not complementary within the eight UD slots, which happens whenever a
// U- or D-layer edge sits in a slice slot; the phase-1 search calls it
// at every coset hit and proceeds to phase 2 only when ok is true.
func MergeUDEdges(uEdges, dEdges int) (udEdges int, ok bool) {
	uComb, uOrder := uEdges/24, lehmerDecode4(uEdges%24)
	dComb, dOrder := dEdges/24, lehmerDecode4(dEdges%24)
	uPos := combUnrank(uComb, cubie.NumEdges)
	dPos := combUnrank(dComb, cubie.NumEdges)

	var rank [8]int
	var filled [8]bool
	for i, pos := range uPos {
		if pos >= 8 {
			return 0, false
		}
		rank[pos] = uOrder[i]
		filled[pos] = true
	}
	for i, pos := range dPos {
		if pos >= 8 || filled[pos] {
			return 0, false
		}
		rank[pos] = 4 + dOrder[i]
		filled[pos] = true
	}
	for _, f := range filled {
		if !f {
			return 0, false
		}
	}
	return lehmerEncode(rank[:]), true
}

// EncodeDEdges ranks the combined position+order of the four D-layer
// edges (DR,DF,DL,DB) among the twelve edge slots.
func EncodeDEdges(ep [cubie.NumEdges]cubie.Edge) int {
	return encodeFour(ep,
		func(e cubie.Edge) bool { return e >= cubie.DR && e <= cubie.DB },
		func(e cubie.Edge) int { return int(e - cubie.DR) })
}

// DecodeDEdges is the inverse of EncodeDEdges. Non-member slots are
// filled with UR..UB then FR..BR in ascending order.
func DecodeDEdges(idx int) [cubie.NumEdges]cubie.Edge {
	return decodeFour(idx,
		func(rank int) cubie.Edge { return cubie.DR + cubie.Edge(rank) },
		func(k int) cubie.Edge {
			if k < 4 {
				return cubie.Edge(k)
			}
			return cubie.FR + cubie.Edge(k-4)
		})
}
