package grid

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/source"
)

// shape is the result of a measuring pass over a source.
type shape struct {
	dims    Dimensions
	lengths []int32 // per-row length; only filled when requested
}

// measure scans src once, counting rows, the longest row and total cells.
// With keepLengths it also records every row length.
// In strict mode the first character outside the alphabet aborts the pass.
func measure(src source.Source, o options, keepLengths bool) (shape, error) {
	var (
		sh     shape
		badErr error
	)
	err := source.ScanLines(src, o.maxLine, func(row int, line []byte) bool {
		if row >= maxIndex || len(line) > maxIndex {
			badErr = fmt.Errorf("%w: row %d of %s", ErrTooLarge, row, src.Name())
			return false
		}
		if o.strict {
			for col, ch := range line {
				if !Cell(ch).Valid() {
					badErr = fmt.Errorf("%w: %q at %v in %s", ErrInvalidCell, ch, Pos(row, col), src.Name())
					return false
				}
			}
		}
		sh.dims.Rows++
		sh.dims.Cells += int64(len(line))
		if len(line) > sh.dims.MaxCols {
			sh.dims.MaxCols = len(line)
		}
		if keepLengths {
			sh.lengths = append(sh.lengths, int32(len(line)))
		}
		return true
	})
	if err != nil {
		return shape{}, err
	}
	if badErr != nil {
		return shape{}, badErr
	}

	return sh, nil
}

// sliceHeader approximates the per-row bookkeeping of a [][]byte.
const sliceHeader = 24

// EstimateBytes returns the approximate memory needed to hold a grid of
// dims in memory and search it with searchBytesPerCell of state per cell.
func EstimateBytes(dims Dimensions, searchBytesPerCell int64) int64 {
	return dims.Cells*(1+searchBytesPerCell) + int64(dims.Rows)*sliceHeader
}
