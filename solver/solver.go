package solver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/facelet"
	"github.com/twophase/cube/search"
	"github.com/twophase/cube/symmetry"
	"github.com/twophase/cube/tables"
)

// Status reports how a Solve call terminated.
type Status int

const (
	// StatusSolvedTarget means Solve found a sequence at or under the
	// configured maximum move count.
	StatusSolvedTarget Status = iota
	// StatusSolvedBestEffort means the returned sequence is longer than
	// the configured maximum move count (a fallback solution some worker
	// held when the search stopped), or that no worker held any solution
	// when the deadline elapsed, in which case Result carries no moves.
	StatusSolvedBestEffort
	// StatusInvalidInput means facelets did not parse into a solvable
	// cube; Result carries no moves.
	StatusInvalidInput
)

func (s Status) String() string {
	switch s {
	case StatusSolvedTarget:
		return "solved_target"
	case StatusSolvedBestEffort:
		return "solved_best_effort"
	default:
		return "invalid_input"
	}
}

// Result is the outcome of a Solve call.
type Result struct {
	Moves     []cubie.Move
	MoveCount int
	SolveTime time.Duration
	Status    Status
}

// seedCube is one of the four starting frames the coordinator searches
// from in parallel: the cube as given, two whole-cube rotations of it
// (the only symmetry this module implements, see symmetry/doc.go), and
// its inverse. A solution found in a seed's frame is transformed back
// to the original cube's frame by toOriginal.
type seedCube struct {
	cube cubie.Cube
	kind int // 0 identity, 1/2 rotation count, 3 inverse
}

func seedCubes(c cubie.Cube) [4]seedCube {
	return [4]seedCube{
		{cube: c, kind: 0},
		{cube: symmetry.Conjugate(c, 1), kind: 1},
		{cube: symmetry.Conjugate(c, 2), kind: 2},
		{cube: c.Inverse(), kind: 3},
	}
}

func (s seedCube) toOriginal(moves []cubie.Move) []cubie.Move {
	switch s.kind {
	case 1, 2:
		return symmetry.ConjugateMoves(moves, symmetry.Inverse(s.kind))
	case 3:
		out := make([]cubie.Move, len(moves))
		for i, m := range moves {
			out[len(moves)-1-i] = m.Inverse()
		}
		return out
	default:
		return moves
	}
}

// Solve finds a move sequence that returns the cube described by
// facelets to the solved state. It fans phase-1 search out across four
// symmetry-seeded workers (golang.org/x/sync/errgroup), sharing the
// shortest solution found so far through an atomic bound and a
// mutex-guarded record, and stops every worker as soon as one reaches
// maxMoves or the timeout elapses. Table construction (once per
// process, see tables.Load) happens before the deadline clock starts,
// so a cold first call is not charged against the timeout.
func Solve(facelets string, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	fc, err := facelet.Parse(facelets)
	if err != nil {
		return Result{Status: StatusInvalidInput}, err
	}
	cc, err := fc.ToCubie()
	if err != nil {
		return Result{Status: StatusInvalidInput}, err
	}

	ts, err := tables.Load(tables.WithCacheDir(cfg.tableDir), tables.WithLogger(cfg.logger))
	if err != nil {
		return Result{Status: StatusInvalidInput}, err
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	seeds := seedCubes(*cc)
	best := &atomic.Int32{}
	best.Store(int32(cfg.maxMoves + 1))

	var mu sync.Mutex
	var bestMoves []cubie.Move
	haveBest := false

	g, gctx := errgroup.WithContext(ctx)
	for _, sv := range seeds {
		sv := sv
		g.Go(func() error {
			moves, ok := search.Solve(sv.cube, search.Options{
				Move:   ts.Move,
				Prune:  ts.Prune,
				MaxLen: cfg.maxMoves,
				Best:   best,
				Ctx:    gctx,
			})
			if !ok {
				return nil
			}
			final := sv.toOriginal(moves)

			mu.Lock()
			if !haveBest || len(final) < len(bestMoves) {
				bestMoves = final
				haveBest = true
			}
			mu.Unlock()

			cancel() // this worker returned a solution; stop the others.
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	if !haveBest {
		// Only reachable if every worker's search.Solve returned ok=false:
		// no worker's phase-1 search reached a G1 coset member, or the
		// deadline cut off the first fallback phase-2 search from the
		// coset member it reached (see search.Solve).
		cfg.logger.Warn().Str("facelets", facelets).Dur("elapsed", elapsed).
			Msg("solve deadline elapsed without a solution")
		return Result{SolveTime: elapsed, Status: StatusSolvedBestEffort}, nil
	}

	status := StatusSolvedBestEffort
	if len(bestMoves) <= cfg.maxMoves {
		status = StatusSolvedTarget
	}
	return Result{
		Moves:     bestMoves,
		MoveCount: len(bestMoves),
		SolveTime: elapsed,
		Status:    status,
	}, nil
}
