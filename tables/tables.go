package tables

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/twophase/cube/coord"
	"github.com/twophase/cube/movetable"
	"github.com/twophase/cube/prune"
	"github.com/twophase/cube/symmetry"
)

// Set aggregates every move and pruning table the search needs.
type Set struct {
	Move  *movetable.Tables
	Prune *prune.Tables
}

var (
	once     sync.Once
	built    *Set
	buildErr error
)

// Option configures Load.
type Option func(*config)

type config struct {
	dir    string
	logger zerolog.Logger
}

// WithCacheDir sets the directory Load reads/writes raw table files
// from. An empty directory (the default) disables disk caching: tables
// are built in RAM on first call and kept for the process's lifetime.
func WithCacheDir(dir string) Option {
	return func(c *config) { c.dir = dir }
}

// WithLogger overrides the zerolog.Logger used for build progress.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Load returns the process-wide table set, building it at most once
// regardless of how many times or with what options it is called
// concurrently; only the first caller's options take effect. This is
// the mechanism spec.md §9 relies on to exclude table-build time from
// a solve's deadline: Load must return before solver.Solve starts its
// clock.
func Load(opts ...Option) (*Set, error) {
	once.Do(func() {
		cfg := config{logger: log.Logger}
		for _, o := range opts {
			o(&cfg)
		}
		built, buildErr = load(cfg)
	})
	return built, buildErr
}

func load(cfg config) (*Set, error) {
	if cfg.dir != "" {
		if s, err := loadFromDisk(cfg.dir); err == nil {
			cfg.logger.Info().Str("dir", cfg.dir).Msg("loaded cube tables from cache")
			return s, nil
		}
	}
	cfg.logger.Info().Msg("building cube move tables")
	mv := movetable.Build()
	cfg.logger.Info().Msg("building cube pruning tables")
	pr := prune.Build(mv)
	s := &Set{Move: mv, Prune: pr}
	if cfg.dir != "" {
		if err := saveToDisk(cfg.dir, s); err != nil {
			cfg.logger.Warn().Err(err).Msg("failed to persist cube tables, continuing with in-memory tables")
		}
	}
	return s, nil
}

func loadFromDisk(dir string) (*Set, error) {
	mv := &movetable.Tables{}
	var err error
	if mv.Twist, err = readUint16(dir, fileMoveTwist, coord.NumTwist*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.Flip, err = readUint16(dir, fileMoveFlip, coord.NumFlip*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.SliceSorted, err = readUint16(dir, fileMoveSliceSorted, coord.NumSliceSorted*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.SliceComb, err = readUint16(dir, fileMoveSliceComb, coord.NumSliceComb*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.UEdges, err = readUint16(dir, fileMoveUEdges, coord.NumSliceSorted*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.DEdges, err = readUint16(dir, fileMoveDEdges, coord.NumSliceSorted*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.Corners, err = readUint16(dir, fileMoveCorners, coord.NumCorners*coord.NumMove); err != nil {
		return nil, err
	}
	if mv.UDEdges, err = readUint16(dir, fileMoveUDEdges, coord.NumUDEdges*coord.NumMove); err != nil {
		return nil, err
	}
	pr := &prune.Tables{}
	if pr.TwistSlice, err = readUint8(dir, filePruneTwistSlice, coord.NumTwist*coord.NumSliceComb); err != nil {
		return nil, err
	}
	// The flipslice symmetry classes depend only on coord, so they are
	// rebuilt here (cheap, deterministic) rather than cached: only the
	// resulting per-class depth table needs disk persistence.
	classes := symmetry.BuildFlipSliceClasses()
	if pr.FlipSlice, err = readUint8(dir, filePruneFlipSlice, classes.NumClasses()); err != nil {
		return nil, err
	}
	pr.FlipSliceClasses = classes
	if pr.Corners, err = readUint8(dir, filePruneCorners, coord.NumCorners); err != nil {
		return nil, err
	}
	if pr.UDEdges, err = readUint8(dir, filePruneUDEdges, coord.NumUDEdges); err != nil {
		return nil, err
	}
	if pr.CornSlice, err = readUint8(dir, filePruneCornSlice, coord.NumCorners*prune.SliceOrderCount); err != nil {
		return nil, err
	}
	return &Set{Move: mv, Prune: pr}, nil
}

func saveToDisk(dir string, s *Set) error {
	writes := []struct {
		name string
		data []uint16
	}{
		{fileMoveTwist, s.Move.Twist},
		{fileMoveFlip, s.Move.Flip},
		{fileMoveSliceSorted, s.Move.SliceSorted},
		{fileMoveSliceComb, s.Move.SliceComb},
		{fileMoveUEdges, s.Move.UEdges},
		{fileMoveDEdges, s.Move.DEdges},
		{fileMoveCorners, s.Move.Corners},
		{fileMoveUDEdges, s.Move.UDEdges},
	}
	for _, w := range writes {
		if err := writeUint16(dir, w.name, w.data); err != nil {
			return err
		}
	}
	byteWrites := []struct {
		name string
		data []uint8
	}{
		{filePruneTwistSlice, s.Prune.TwistSlice},
		{filePruneFlipSlice, s.Prune.FlipSlice},
		{filePruneCorners, s.Prune.Corners},
		{filePruneUDEdges, s.Prune.UDEdges},
		{filePruneCornSlice, s.Prune.CornSlice},
	}
	for _, w := range byteWrites {
		if err := writeUint8(dir, w.name, w.data); err != nil {
			return err
		}
	}
	return nil
}
