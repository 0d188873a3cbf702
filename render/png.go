package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/labyrinth/grid"
)

// Cell colors for PNG output.
var (
	colorWall  = [3]int{40, 40, 40}
	colorFree  = [3]int{250, 250, 250}
	colorPath  = [3]int{220, 50, 47}
	colorStart = [3]int{38, 139, 34}
	colorGoal  = [3]int{38, 110, 210}
	colorVoid  = [3]int{200, 200, 200}
)

// PNG draws the same view as ASCII into w, o.Scale pixels per cell.
func PNG(w io.Writer, g grid.Grid, path []grid.Coord, o Options) error {
	o = o.withDefaults()
	win, err := crop(g, path, o)
	if err != nil {
		return err
	}
	onPath := pathSet(path, win)
	s := o.Scale

	dc := gg.NewContext(win.width()*s, win.height()*s)
	for r := win.top; r <= win.bottom; r++ {
		for c := win.left; c <= win.right; c++ {
			cell, err := g.At(r, c)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			rgb := colorOf(cell)
			if _, ok := onPath[grid.Pos(r, c)]; ok && cell != grid.Start && cell != grid.Goal {
				rgb = colorPath
			}
			dc.SetRGB255(rgb[0], rgb[1], rgb[2])
			dc.DrawRectangle(float64((c-win.left)*s), float64((r-win.top)*s), float64(s), float64(s))
			dc.Fill()
		}
	}

	return dc.EncodePNG(w)
}

func colorOf(c grid.Cell) [3]int {
	switch c {
	case grid.Wall:
		return colorWall
	case grid.Start:
		return colorStart
	case grid.Goal:
		return colorGoal
	case grid.OutOfBounds:
		return colorVoid
	default:
		return colorFree
	}
}
