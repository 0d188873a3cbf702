package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/pbnjay/memory"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/logger"
)

// ErrNoPrimary is returned when Config.Primary is nil.
var ErrNoPrimary = errors.New("solver: no primary input configured")

// Run executes the primary strategy and, on grid.ErrResourceExhausted with a
// fallback configured, the streaming strategy against the fallback input.
// The returned report carries elapsed time and heap usage in either case.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Primary == nil {
		return nil, ErrNoPrimary
	}
	if cfg.Log == nil {
		cfg.Log = logger.Log
	}
	began := time.Now()

	rep, err := runInMemory(ctx, cfg)
	if errors.Is(err, grid.ErrResourceExhausted) && cfg.Fallback != nil {
		cfg.Log.WithError(err).WithField("fallback", cfg.Fallback.Name()).
			Warn("primary input exceeds the memory budget, switching to streaming search")
		cause := err
		rep, err = runStreaming(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("solver: fallback %s failed after %v: %w", cfg.Fallback.Name(), cause, err)
		}
		rep.FallbackCause = cause
	}
	if err != nil {
		return nil, err
	}

	rep.Elapsed = time.Since(began)
	rep.HeapMB = heapMB()
	return rep, nil
}

// runInMemory is phase 1: grid.Load under budget, then Distance or Path.
func runInMemory(ctx context.Context, cfg Config) (*Report, error) {
	log := cfg.Log.WithField("input", cfg.Primary.Name())
	log.Info("loading maze")

	opts := []grid.Option{
		grid.WithMaxLine(cfg.MaxLine),
		grid.WithBudget(budget(cfg.MemoryLimit), cfg.Mode.bytesPerCell()),
	}
	if cfg.Strict {
		opts = append(opts, grid.WithStrict())
	}
	g, err := grid.Load(cfg.Primary, opts...)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Strategy: StrategyInMemory,
		Mode:     cfg.Mode,
		Input:    cfg.Primary.Name(),
		Dims:     g.Dimensions(),
		Grid:     g,
	}
	log.WithField("size", rep.Dims).Info("maze loaded")

	if !locate(g, rep, log) {
		return rep, nil
	}

	search := bfs.Distance
	if cfg.Mode == ModePath {
		search = bfs.Path
	}
	rep.Result, err = search(g, rep.Start, rep.Goal, searchOptions(ctx, cfg, log)...)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// runStreaming is phase 2: grid.Stream over the fallback input, distance only.
func runStreaming(ctx context.Context, cfg Config) (*Report, error) {
	log := cfg.Log.WithField("input", cfg.Fallback.Name())
	if cfg.Mode == ModePath {
		log.Warn("streaming search reports distance only, no path will be drawn")
	}

	opts := []grid.Option{grid.WithMaxLine(cfg.MaxLine)}
	if cfg.Strict {
		opts = append(opts, grid.WithStrict())
	}
	st, err := grid.OpenStream(cfg.Fallback, opts...)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Strategy: StrategyStreaming,
		Mode:     ModeDistance,
		Input:    cfg.Fallback.Name(),
		Dims:     st.Dimensions(),
		Grid:     st,
	}
	log.WithField("size", rep.Dims).Info("maze measured")

	if !locate(st, rep, log) {
		return rep, nil
	}

	searchOpts := append(searchOptions(ctx, cfg, log), bfs.WithSparseTable())
	rep.Result, err = bfs.Distance(st, rep.Start, rep.Goal, searchOpts...)
	rep.Lookups = st.Lookups()
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// locate fills Start and Goal, or Missing when a marker is absent.
// It reports whether a search should follow.
func locate(w grid.RowWalker, rep *Report, log logrus.FieldLogger) bool {
	start, goal, err := grid.Locate(w)
	if err != nil {
		rep.Missing = err
		log.WithError(err).Warn("markers not found, search skipped")
		return false
	}
	rep.Start, rep.Goal = start, goal
	log.WithFields(logrus.Fields{"start": start, "goal": goal}).Info("markers located")
	return true
}

// searchOptions wires cancellation and progress logging into bfs.
func searchOptions(ctx context.Context, cfg Config, log logrus.FieldLogger) []bfs.Option {
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if every := cfg.ProgressEvery; every > 0 {
		seen := 0
		opts = append(opts, bfs.WithOnVisit(func(at grid.Coord, depth int) error {
			seen++
			if seen%every == 0 {
				log.WithFields(logrus.Fields{"explored": seen, "depth": depth, "at": at}).Info("search progress")
			}
			return nil
		}))
	}
	return opts
}

// systemShare is the part of physical memory granted to the in-memory phase
// when neither a limit nor GOMEMLIMIT is set.
const systemShare = 0.75

// budget resolves the configured limit: positive values win, negative
// disables the check, zero defers to the runtime soft limit and then to
// systemShare of physical memory. It is 0 (no check) only when the
// platform does not report its memory size.
func budget(limit int64) int64 {
	switch {
	case limit > 0:
		return limit
	case limit < 0:
		return 0
	}
	if soft := debug.SetMemoryLimit(-1); soft != math.MaxInt64 {
		return soft
	}
	total := memory.TotalMemory()
	if total == 0 || total > math.MaxInt64 {
		return 0
	}
	return int64(float64(total) * systemShare)
}

func heapMB() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc >> 20
}
