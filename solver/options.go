package solver

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option configures Solve.
type Option func(*config)

type config struct {
	maxMoves int
	timeout  time.Duration
	tableDir string
	logger   zerolog.Logger
}

func defaultConfig() config {
	return config{
		maxMoves: 20,
		timeout:  10 * time.Second,
		logger:   log.Logger,
	}
}

// WithMaxMoves caps the total move count Solve will accept as meeting
// the caller's target (default 20).
func WithMaxMoves(n int) Option { return func(c *config) { c.maxMoves = n } }

// WithTimeout bounds wall-clock search time, excluding any first-call
// table construction (default 10s).
func WithTimeout(d time.Duration) Option { return func(c *config) { c.timeout = d } }

// WithTablesDir enables on-disk table caching under dir.
func WithTablesDir(dir string) Option { return func(c *config) { c.tableDir = dir } }

// WithLogger overrides the zerolog.Logger used for solve progress.
func WithLogger(l zerolog.Logger) Option { return func(c *config) { c.logger = l } }
