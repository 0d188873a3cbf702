package solver

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/source"
)

// Mode selects what the search returns.
type Mode int

const (
	// ModeDistance reports only the minimal distance.
	ModeDistance Mode = iota
	// ModePath also reconstructs the path.
	ModePath
)

// String returns the mode name used in flags and config.
func (m Mode) String() string {
	if m == ModePath {
		return "path"
	}
	return "distance"
}

// ParseMode accepts "distance" or "path", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "":
		return ModeDistance, nil
	case "path":
		return ModePath, nil
	}
	return ModeDistance, fmt.Errorf("solver: unknown mode %q (want distance or path)", s)
}

// bytesPerCell is the search-state charge used when budgeting memory.
func (m Mode) bytesPerCell() int64 {
	if m == ModePath {
		return bfs.PathBytesPerCell
	}
	return bfs.DistanceBytesPerCell
}

// Strategy names the grid representation a report was produced with.
type Strategy string

const (
	// StrategyInMemory loads the whole grid (grid.Dense).
	StrategyInMemory Strategy = "in-memory"
	// StrategyStreaming re-reads the source per lookup (grid.Stream).
	StrategyStreaming Strategy = "streaming"
)

// Outcome classifies a finished run.
type Outcome string

const (
	OutcomeFound           Outcome = "found"
	OutcomeUnreachable     Outcome = "unreachable"
	OutcomeMarkersNotFound Outcome = "markers-not-found"
)

// Config describes one run.
type Config struct {
	// Primary is searched first, fully in memory.
	Primary source.Source
	// Fallback is searched in streaming mode if Primary exceeds the budget. Nil disables it.
	Fallback source.Source
	// Mode selects distance-only or path reconstruction for the primary phase.
	Mode Mode
	// MemoryLimit in bytes for the primary phase. 0 uses the runtime soft
	// limit (GOMEMLIMIT) when one is set, else 75% of physical memory;
	// negative disables the check.
	MemoryLimit int64
	// ProgressEvery logs a progress line after this many expanded cells; 0 disables it.
	ProgressEvery int
	// Strict rejects characters outside the maze alphabet.
	Strict bool
	// MaxLine bounds the length of a row in bytes; 0 uses the source default.
	MaxLine int
	// Log receives progress and phase messages. Nil uses logger.Log.
	Log logrus.FieldLogger
}

// Report is the result of a run.
type Report struct {
	Strategy Strategy
	Mode     Mode
	Input    string
	Dims     grid.Dimensions
	Start    grid.Coord
	Goal     grid.Coord

	// Result is nil when the markers were not found.
	Result *bfs.Result
	// Grid is the searched grid, kept for rendering.
	Grid grid.Grid
	// Missing explains why no search ran (wraps grid.ErrMarkersNotFound).
	Missing error
	// FallbackCause is the primary-phase error that triggered the fallback.
	FallbackCause error
	// Lookups counts source re-reads in streaming mode.
	Lookups int64

	Elapsed time.Duration
	HeapMB  uint64
}

// Outcome classifies the report.
func (r *Report) Outcome() Outcome {
	switch {
	case r.Result == nil:
		return OutcomeMarkersNotFound
	case r.Result.Found():
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}
