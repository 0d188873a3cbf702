package render

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrEmptyPath is returned when there is nothing to draw.
var ErrEmptyPath = errors.New("render: path is empty")

// Defaults applied to zero-valued Options.
const (
	DefaultMargin    = 2
	DefaultMaxWidth  = 80
	DefaultMaxHeight = 40
	DefaultScale     = 8
)

// Legend is printed under every ASCII view.
const Legend = "Legend: A=start B=goal #=wall .=free *=path"

// PathMark replaces free cells that lie on the path.
const PathMark = '*'

// Options controls the cropped view.
type Options struct {
	Margin    int // cells around the path's bounding box; negative means none
	MaxWidth  int // columns; 0 selects the default
	MaxHeight int // rows; 0 selects the default
	Scale     int // PNG pixels per cell; 0 selects the default
}

func (o Options) withDefaults() Options {
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	} else if o.Margin < 0 {
		o.Margin = 0
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// window is an inclusive rectangle of grid cells.
type window struct {
	top, left, bottom, right int
	truncated                bool
}

func (w window) width() int  { return w.right - w.left + 1 }
func (w window) height() int { return w.bottom - w.top + 1 }

// crop computes the view for path: its bounding box plus margin, clipped to
// the grid rows and the widest row inside them, then cut down to the
// maximum size keeping the top-left corner.
func crop(g grid.Grid, path []grid.Coord, o Options) (window, error) {
	if len(path) == 0 {
		return window{}, ErrEmptyPath
	}
	w := window{
		top: int(path[0].Row), bottom: int(path[0].Row),
		left: int(path[0].Col), right: int(path[0].Col),
	}
	for _, at := range path[1:] {
		w.top = min(w.top, int(at.Row))
		w.bottom = max(w.bottom, int(at.Row))
		w.left = min(w.left, int(at.Col))
		w.right = max(w.right, int(at.Col))
	}

	w.top = max(0, w.top-o.Margin)
	w.bottom = min(g.Rows()-1, w.bottom+o.Margin)
	widest := 0
	for r := w.top; r <= w.bottom; r++ {
		widest = max(widest, g.Cols(r))
	}
	w.left = max(0, w.left-o.Margin)
	w.right = min(widest-1, w.right+o.Margin)

	if w.width() > o.MaxWidth {
		w.right = w.left + o.MaxWidth - 1
		w.truncated = true
	}
	if w.height() > o.MaxHeight {
		w.bottom = w.top + o.MaxHeight - 1
		w.truncated = true
	}
	return w, nil
}

// pathSet indexes the path cells that fall inside w.
func pathSet(path []grid.Coord, w window) map[grid.Coord]struct{} {
	set := make(map[grid.Coord]struct{}, len(path))
	for _, at := range path {
		r, c := int(at.Row), int(at.Col)
		if r >= w.top && r <= w.bottom && c >= w.left && c <= w.right {
			set[at] = struct{}{}
		}
	}
	return set
}
