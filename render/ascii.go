package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// ASCII renders the cropped region around path as text, one line per row,
// followed by Legend. Markers keep their letters; other path cells become
// PathMark. Cells missing from short rows print as blanks and trailing blanks
// are trimmed.
//
// Complexity: O(view cells) grid lookups.
func ASCII(g grid.Grid, path []grid.Coord, o Options) (string, error) {
	o = o.withDefaults()
	w, err := crop(g, path, o)
	if err != nil {
		return "", err
	}
	onPath := pathSet(path, w)

	var sb strings.Builder
	line := make([]byte, 0, w.width())
	for r := w.top; r <= w.bottom; r++ {
		line = line[:0]
		for c := w.left; c <= w.right; c++ {
			cell, err := g.At(r, c)
			if err != nil {
				return "", fmt.Errorf("render: %w", err)
			}
			ch := byte(cell)
			if _, ok := onPath[grid.Pos(r, c)]; ok && cell != grid.Start && cell != grid.Goal {
				ch = PathMark
			}
			line = append(line, ch)
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	if w.truncated {
		fmt.Fprintf(&sb, "(view truncated to %dx%d from row %d, col %d)\n", w.height(), w.width(), w.top, w.left)
	}
	sb.WriteString(Legend)

	return sb.String(), nil
}
