package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartInvalid is returned when start is outside the grid or on an impassable cell.
	ErrStartInvalid = errors.New("bfs: start cell is out of bounds or blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// NoPath is the Distance reported when goal cannot be reached.
const NoPath = -1

// Approximate search-state bytes per grid cell, used for memory budgeting.
const (
	// DistanceBytesPerCell: one int32 table slot plus one queued Coord.
	DistanceBytesPerCell = 4 + 8
	// PathBytesPerCell: one arena node, one queued index and a visited-set entry.
	PathBytesPerCell = 16 + 4 + 40
)

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and queued.
	OnEnqueue func(at grid.Coord, depth int)

	// OnDequeue is called when a cell leaves the frontier.
	OnDequeue func(at grid.Coord, depth int)

	// OnVisit is called when a cell is expanded. A non-nil error aborts the search.
	OnVisit func(at grid.Coord, depth int) error

	// Sparse selects the map-backed distance table (Distance only).
	Sparse bool

	// FrontierHint pre-sizes the frontier.
	FrontierHint int

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// the dense table, and no frontier pre-sizing.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnDequeue: func(grid.Coord, int) {},
		OnVisit:   func(grid.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback for discovered cells.
func WithOnEnqueue(fn func(at grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback for cells leaving the frontier.
func WithOnDequeue(fn func(at grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback for expanded cells; an error stops the search.
func WithOnVisit(fn func(at grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithSparseTable makes Distance keep its table in a map keyed by grid.Coord.
func WithSparseTable() Option {
	return func(o *Options) { o.Sparse = true }
}

// WithFrontierHint pre-allocates room for n queued cells.
//
//	n > 0: initial capacity
//	n == 0: grow on demand
//	n < 0: invalid option → ErrOptionViolation
func WithFrontierHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: FrontierHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.FrontierHint = n
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Distance is the minimal number of steps, or NoPath.
	Distance int
	// Path lists cells from start to goal inclusive (Path only; nil otherwise or when unreachable).
	Path []grid.Coord
	// Explored counts dequeued cells.
	Explored int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Found reports whether goal was reached.
func (r *Result) Found() bool { return r.Distance != NoPath }
