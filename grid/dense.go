package grid

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/source"
)

// Dense is a fully materialized grid. It is immutable after Load.
type Dense struct {
	rows [][]byte
	dims Dimensions
}

// Load reads src into memory.
//
// Behavior:
//  1. First pass: count rows, the longest row, and the total number of cells.
//  2. If a budget is configured (WithBudget), compare EstimateBytes against it
//     and fail with ErrResourceExhausted before allocating anything.
//  3. Second pass: copy each row into its own slice.
//
// No partial grid is ever returned.
//
// Complexity: O(total characters) time and memory.
func Load(src source.Source, opts ...Option) (*Dense, error) {
	o := collect(opts)

	sh, err := measure(src, o, false)
	if err != nil {
		return nil, err
	}
	if o.budget > 0 {
		if need := EstimateBytes(sh.dims, o.bytesPerCell); need > o.budget {
			return nil, fmt.Errorf("%w: %s needs ~%d bytes for %s, budget %d",
				ErrResourceExhausted, src.Name(), need, sh.dims, o.budget)
		}
	}

	rows := make([][]byte, 0, sh.dims.Rows)
	err = source.ScanLines(src, o.maxLine, func(_ int, line []byte) bool {
		row := make([]byte, len(line))
		copy(row, line)
		rows = append(rows, row)
		return true
	})
	if err != nil {
		return nil, err
	}

	return newDense(rows), nil
}

// FromLines builds a Dense grid directly from strings.
func FromLines(lines ...string) *Dense {
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return newDense(rows)
}

func newDense(rows [][]byte) *Dense {
	d := &Dense{rows: rows}
	d.dims.Rows = len(rows)
	for _, r := range rows {
		d.dims.Cells += int64(len(r))
		if len(r) > d.dims.MaxCols {
			d.dims.MaxCols = len(r)
		}
	}
	return d
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return len(d.rows) }

// Cols returns the length of row, or 0 if row is out of range.
func (d *Dense) Cols(row int) int {
	if row < 0 || row >= len(d.rows) {
		return 0
	}
	return len(d.rows[row])
}

// At returns the cell at (row, col) or OutOfBounds. The error is always nil.
// Complexity: O(1).
func (d *Dense) At(row, col int) (Cell, error) {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= len(d.rows[row]) {
		return OutOfBounds, nil
	}
	return Cell(d.rows[row][col]), nil
}

// Dimensions returns the grid shape.
func (d *Dense) Dimensions() Dimensions { return d.dims }

// WalkRows visits the in-memory rows in order.
func (d *Dense) WalkRows(fn func(row int, line []byte) bool) error {
	for i, r := range d.rows {
		if !fn(i, r) {
			break
		}
	}
	return nil
}
