package search

import (
	"context"
	"sync/atomic"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/movetable"
	"github.com/twophase/cube/prune"
)

// Options bundles the tables and limits a single Solve call needs.
type Options struct {
	Move   *movetable.Tables
	Prune  *prune.Tables
	MaxLen int
	// Ctx, if non-nil, is polled periodically; once it is done, Solve
	// stops promptly and returns the best solution captureBestEffort
	// has recorded so far (ok=false only if none was ever recorded).
	Ctx context.Context
	// Best, if non-nil, is a shared upper bound on the total move count
	// across concurrent Solve calls exploring the same cube from
	// different seeds: Solve never widens its iterative-deepening bound
	// past Best, and lowers it opportunistically whenever it finds a
	// shorter solution, so sibling searches benefit immediately.
	Best *atomic.Int32
}

// nodeCheckMask bounds how often the search polls Ctx: checking every
// node would add a channel-select to the hottest loop in the program.
const nodeCheckMask = 1<<12 - 1

// bestEffortCap bounds the fallback phase-2 search run from every
// phase-1 coset hit (see captureBestEffort): a G1 coset member always
// admits a phase-2 completion within this many moves, so the first
// fallback search comes back empty only if opt.Ctx is done before it
// completes.
const bestEffortCap = 18

// Solve runs the two-phase IDA* search from c. A success inside the
// bound loop returns a move sequence of at most opt.MaxLen moves;
// otherwise Solve returns the shortest solution captureBestEffort
// recorded, which can be longer than opt.MaxLen. ok is false only if no
// fallback search completed: no phase-1 coset was reached, or opt.Ctx
// was done before the first fallback search from a reached coset
// finished (spec.md §4.7/§7: the coordinator always holds the shortest
// solution found up to that point).
func Solve(c cubie.Cube, opt Options) (moves []cubie.Move, ok bool) {
	s := &searcher{opt: opt, path: make([]cubie.Move, 0, opt.MaxLen)}
	start := phase1State{
		twist:       coord.EncodeTwist(c.CO),
		flip:        coord.EncodeFlip(c.EO),
		sliceComb:   coord.EncodeSliceComb(c.EP),
		sliceSorted: coord.EncodeSliceSorted(c.EP),
		uEdges:      coord.EncodeUEdges(c.EP),
		dEdges:      coord.EncodeDEdges(c.EP),
		corners:     coord.EncodeCorners(c.CP),
	}
	lower := opt.Prune.Phase1Bound(start.twist, start.flip, start.sliceComb)
	for bound := lower; bound <= opt.MaxLen; bound++ {
		if opt.Best != nil {
			if b := opt.Best.Load(); b > 0 && bound >= int(b) {
				break
			}
		}
		s.path = s.path[:0]
		if s.cancelled() {
			break
		}
		if s.dfsPhase1(start, false, 0, bound) {
			out := make([]cubie.Move, len(s.solution))
			copy(out, s.solution)
			s.reportBest(bound)
			return out, true
		}
	}
	if s.haveBestEffort {
		out := make([]cubie.Move, len(s.bestEffort))
		copy(out, s.bestEffort)
		s.reportBest(len(out))
		return out, true
	}
	return nil, false
}

// reportBest lowers opt.Best to found if found is an improvement,
// retrying under compare-and-swap since sibling searches may race it.
func (s *searcher) reportBest(found int) {
	if s.opt.Best == nil {
		return
	}
	for {
		cur := s.opt.Best.Load()
		if cur != 0 && int(cur) <= found {
			return
		}
		if s.opt.Best.CompareAndSwap(cur, int32(found)) {
			return
		}
	}
}

type searcher struct {
	opt      Options
	path     []cubie.Move
	solution []cubie.Move
	nodes    uint64
	// stopped latches once cancelled has seen opt.Ctx done, so every
	// later frame unwinds without waiting for the next polling node.
	stopped bool

	// haveBestEffort/bestEffort hold the shortest complete solution
	// captureBestEffort has found so far, independent of the ongoing
	// optimal-bound search: see Solve's fallback return.
	haveBestEffort bool
	bestEffort     []cubie.Move
}

func (s *searcher) cancelled() bool {
	if s.stopped {
		return true
	}
	if s.opt.Ctx == nil {
		return false
	}
	select {
	case <-s.opt.Ctx.Done():
		s.stopped = true
		return true
	default:
		return false
	}
}

// captureBestEffort runs an independent phase-2 IDA* from a phase-1
// coset hit, uncapped by the enclosing search's remaining togo budget,
// and records the result in s.bestEffort if it improves on (or is) the
// first one found. It exists purely as insurance: st's coset is always
// solvable within bestEffortCap phase-2 moves, so unlike the main
// search's bounded dfsPhase2 attempt the first call fails only if opt.Ctx
// is done before it completes, giving Solve something to fall back on if
// the deadline or opt.MaxLen cuts off the optimal search before it
// completes. It saves and restores
// s.path/s.solution, which dfsPhase2 uses as scratch space, so it never
// disturbs the enclosing phase-1 recursion's own bookkeeping.
func (s *searcher) captureBestEffort(st phase2State, havePrev bool, prev cubie.Move) {
	prefixLen := len(s.path)
	limit := bestEffortCap
	if s.haveBestEffort {
		limit = len(s.bestEffort) - prefixLen - 1
		if limit < 0 {
			return
		}
	}

	savedPath, savedSolution := s.path, s.solution
	s.path = append(make([]cubie.Move, 0, prefixLen+limit), s.path...)

	found := false
	for bound := 0; bound <= limit; bound++ {
		s.path = s.path[:prefixLen]
		if s.opt.Prune.Phase2Bound(st.corners, st.udEdges, st.sliceSorted) > bound {
			continue
		}
		if s.dfsPhase2(st, havePrev, prev, bound) {
			found = true
			break
		}
	}
	if found && (!s.haveBestEffort || len(s.solution) < len(s.bestEffort)) {
		s.bestEffort = append(s.bestEffort[:0], s.solution...)
		s.haveBestEffort = true
	}

	s.path, s.solution = savedPath, savedSolution
}

// dfsPhase1 explores phase 1 from st with togo moves left in the overall
// bound. Whenever the coordinates land in the G1 coset (zero twist, zero
// flip, slice edges in their own slots) it tries to finish via phase 2
// with the moves that remain; a failed attempt does not stop the
// search, since a different, possibly longer, phase-1 path may reach a
// coset member phase 2 can finish from within budget.
func (s *searcher) dfsPhase1(st phase1State, havePrev bool, prev cubie.Move, togo int) bool {
	s.nodes++
	if s.stopped || (s.nodes&nodeCheckMask == 0 && s.cancelled()) {
		return false
	}
	if st.twist == 0 && st.flip == 0 && st.sliceComb == coord.SliceSortedGoalComb {
		if udEdges, ok := coord.MergeUDEdges(st.uEdges, st.dEdges); ok {
			phase2 := phase2State{corners: st.corners, udEdges: udEdges, sliceSorted: st.sliceSorted}
			if s.dfsPhase2(phase2, havePrev, prev, togo) {
				return true
			}
			s.captureBestEffort(phase2, havePrev, prev)
		}
	}
	if togo == 0 {
		return false
	}
	if s.opt.Prune.Phase1Bound(st.twist, st.flip, st.sliceComb) > togo {
		return false
	}
	for mi := 0; mi < cubie.NumMoves; mi++ {
		m := cubie.Move(mi)
		if !legal(havePrev, prev, m) {
			continue
		}
		next := phase1State{
			twist:       movetable.Move(s.opt.Move.Twist, st.twist, mi),
			flip:        movetable.Move(s.opt.Move.Flip, st.flip, mi),
			sliceComb:   movetable.Move(s.opt.Move.SliceComb, st.sliceComb, mi),
			sliceSorted: movetable.Move(s.opt.Move.SliceSorted, st.sliceSorted, mi),
			uEdges:      movetable.Move(s.opt.Move.UEdges, st.uEdges, mi),
			dEdges:      movetable.Move(s.opt.Move.DEdges, st.dEdges, mi),
			corners:     movetable.Move(s.opt.Move.Corners, st.corners, mi),
		}
		s.path = append(s.path, m)
		if s.dfsPhase1(next, true, m, togo-1) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false
}

// dfsPhase2 explores phase 2 from st, restricted to prune.Phase2Moves.
// The terminal check requires sliceSorted at its exact solved value, not
// merely its combination component: corners==0 and udEdges==0 alone
// admit any even permutation of the four slice edges among themselves,
// which phase-2 moves can produce without disturbing either coordinate.
func (s *searcher) dfsPhase2(st phase2State, havePrev bool, prev cubie.Move, togo int) bool {
	s.nodes++
	if s.stopped || (s.nodes&nodeCheckMask == 0 && s.cancelled()) {
		return false
	}
	if st.corners == 0 && st.udEdges == 0 && st.sliceSorted == coord.SliceSortedGoal {
		s.solution = append(s.solution[:0], s.path...)
		return true
	}
	if togo == 0 {
		return false
	}
	if s.opt.Prune.Phase2Bound(st.corners, st.udEdges, st.sliceSorted) > togo {
		return false
	}
	for _, mi := range prune.Phase2Moves {
		m := cubie.Move(mi)
		if !legal(havePrev, prev, m) {
			continue
		}
		next := phase2State{
			corners:     movetable.Move(s.opt.Move.Corners, st.corners, mi),
			udEdges:     movetable.Move(s.opt.Move.UDEdges, st.udEdges, mi),
			sliceSorted: movetable.Move(s.opt.Move.SliceSorted, st.sliceSorted, mi),
		}
		s.path = append(s.path, m)
		if s.dfsPhase2(next, true, m, togo-1) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false
}
