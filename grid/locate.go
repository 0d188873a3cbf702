package grid

import (
	"bytes"
	"fmt"
)

// Locate scans w row by row and returns the coordinates of the first Start
// and the first Goal marker in row-major order. Scanning stops as soon as both
// are known; later duplicates are never inspected.
//
// Returns ErrMarkersNotFound (wrapped, naming the missing marker) when either
// marker is absent after a full scan, or the walker's read error.
func Locate(w RowWalker) (start, goal Coord, err error) {
	haveStart, haveGoal := false, false
	err = w.WalkRows(func(row int, line []byte) bool {
		if !haveStart {
			if col := bytes.IndexByte(line, byte(Start)); col >= 0 {
				start, haveStart = Pos(row, col), true
			}
		}
		if !haveGoal {
			if col := bytes.IndexByte(line, byte(Goal)); col >= 0 {
				goal, haveGoal = Pos(row, col), true
			}
		}
		return !(haveStart && haveGoal)
	})
	if err != nil {
		return Coord{}, Coord{}, err
	}

	switch {
	case !haveStart && !haveGoal:
		return Coord{}, Coord{}, fmt.Errorf("%w: missing %q and %q", ErrMarkersNotFound, Start, Goal)
	case !haveStart:
		return Coord{}, Coord{}, fmt.Errorf("%w: missing %q", ErrMarkersNotFound, Start)
	case !haveGoal:
		return Coord{}, Coord{}, fmt.Errorf("%w: missing %q", ErrMarkersNotFound, Goal)
	}

	return start, goal, nil
}
