package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/logger"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solver"
	"github.com/katalvlaran/labyrinth/source"
)

// solverConfig maps user settings onto a solver run.
func solverConfig(cfg config.Config, mode solver.Mode) solver.Config {
	sc := solver.Config{
		Primary:       source.File(cfg.Input),
		Mode:          mode,
		MemoryLimit:   cfg.MemoryLimitBytes(),
		ProgressEvery: cfg.ProgressEvery,
		Strict:        cfg.Strict,
		MaxLine:       cfg.MaxLine,
		Log:           logger.Log,
	}
	if cfg.Fallback != "" {
		sc.Fallback = source.File(cfg.Fallback)
	}
	return sc
}

// printFailure writes one distinct message per failure kind.
func printFailure(w io.Writer, err error) {
	switch {
	case errors.Is(err, source.ErrUnreadable):
		fmt.Fprintf(w, "Could not read the maze: %v\n", err)
	case errors.Is(err, grid.ErrResourceExhausted):
		fmt.Fprintf(w, "The maze does not fit in memory and no fallback succeeded: %v\n", err)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, "Search interrupted.")
	default:
		fmt.Fprintf(w, "Search failed: %v\n", err)
	}
}

// printReport writes timings, the maze summary, the outcome and, for a found
// path, the cropped view (and the PNG when configured).
func printReport(w io.Writer, rep *solver.Report, cfg config.Config) error {
	fmt.Fprintf(w, "Elapsed: %dms\n", rep.Elapsed.Milliseconds())
	fmt.Fprintf(w, "Memory used: %dMB\n", rep.HeapMB)
	fmt.Fprintf(w, "Maze %s: %s (%s)\n", rep.Input, rep.Dims, rep.Strategy)
	if rep.FallbackCause != nil {
		fmt.Fprintf(w, "Fell back to streaming search: %v\n", rep.FallbackCause)
	}

	switch rep.Outcome() {
	case solver.OutcomeMarkersNotFound:
		fmt.Fprintf(w, "Start or goal not found: %v\n", rep.Missing)
		return nil
	case solver.OutcomeUnreachable:
		fmt.Fprintf(w, "Start %c: %v\nGoal %c: %v\n", grid.Start, rep.Start, grid.Goal, rep.Goal)
		fmt.Fprintf(w, "No path from %c to %c after exploring %d cells.\n", grid.Start, grid.Goal, rep.Result.Explored)
		return nil
	}

	res := rep.Result
	fmt.Fprintf(w, "Start %c: %v\nGoal %c: %v\n", grid.Start, rep.Start, grid.Goal, rep.Goal)
	fmt.Fprintf(w, "Explored %d cells, largest frontier %d\n", res.Explored, res.MaxFrontier)
	if rep.Strategy == solver.StrategyStreaming {
		fmt.Fprintf(w, "Source re-reads: %d\n", rep.Lookups)
	}
	fmt.Fprintf(w, "Path found! Shortest distance: %d steps\n", res.Distance)
	if res.Path == nil {
		return nil
	}

	opts := renderOptions(cfg)
	view, err := render.ASCII(rep.Grid, res.Path, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", view)

	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, rep, opts); err != nil {
			return err
		}
		fmt.Fprintf(w, "Image written to %s\n", cfg.PNG)
	}
	return nil
}

// renderOptions maps settings onto the view. A zero margin is taken
// literally; render reads zero as its default.
func renderOptions(cfg config.Config) render.Options {
	margin := cfg.Margin
	if margin <= 0 {
		margin = -1
	}
	return render.Options{
		Margin:    margin,
		MaxWidth:  viewWidth(cfg.MaxWidth),
		MaxHeight: cfg.MaxHeight,
		Scale:     cfg.Scale,
	}
}

// viewWidth prefers an explicit width, then the terminal width, then the default.
func viewWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return render.DefaultMaxWidth
}

func writePNG(path string, rep *solver.Report, opts render.Options) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	// the image is not bound by the terminal
	opts.MaxWidth, opts.MaxHeight = rep.Dims.MaxCols, rep.Dims.Rows
	if err := render.PNG(fh, rep.Grid, rep.Result.Path, opts); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
