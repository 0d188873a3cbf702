package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// cancelEvery is how many dequeues pass between context checks.
const cancelEvery = 1024

// walker holds the state shared by Distance and Path.
type walker struct {
	g    grid.Grid
	opts Options
	ctx  context.Context
	res  *Result
}

// prepare validates the grid, the options and the start cell.
func prepare(g grid.Grid, start grid.Coord, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cell, err := g.At(int(start.Row), int(start.Col))
	if err != nil {
		return nil, fmt.Errorf("bfs: reading start %v: %w", start, err)
	}
	if !cell.Passable() {
		return nil, fmt.Errorf("%w: %v holds %q", ErrStartInvalid, start, cell)
	}

	return &walker{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		res:  &Result{Distance: NoPath},
	}, nil
}

// cancelled reports the context error, polling once every cancelEvery dequeues.
func (w *walker) cancelled() error {
	if w.res.Explored%cancelEvery != 0 {
		return nil
	}
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// visit counts the dequeued cell and runs the dequeue and visit hooks.
func (w *walker) visit(at grid.Coord, depth int) error {
	w.opts.OnDequeue(at, depth)
	w.res.Explored++
	if err := w.opts.OnVisit(at, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", at, err)
	}
	return nil
}

// inBounds reports whether at lies inside its row. Cols is 0 for missing rows.
func (w *walker) inBounds(at grid.Coord) bool {
	return at.Col >= 0 && int(at.Col) < w.g.Cols(int(at.Row))
}

// passable reads the cell at an in-bounds coordinate.
func (w *walker) passable(at grid.Coord) (bool, error) {
	cell, err := w.g.At(int(at.Row), int(at.Col))
	if err != nil {
		return false, fmt.Errorf("bfs: reading %v: %w", at, err)
	}
	return cell.Passable(), nil
}

// observe records the frontier high-water mark.
func (w *walker) observe(size int) {
	if size > w.res.MaxFrontier {
		w.res.MaxFrontier = size
	}
}
