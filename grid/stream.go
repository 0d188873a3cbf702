package grid

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/source"
)

// Stream is a low-memory grid that never holds cell data. Only row lengths
// are kept; each At call re-opens the source and reads up to the requested row.
// It is the degraded-mode accessor used when Dense does not fit in memory.
//
// Stream is not safe for concurrent use.
type Stream struct {
	src     source.Source
	maxLine int
	lengths []int32
	dims    Dimensions
	lookups int64
}

// OpenStream measures src once and returns a Stream over it.
// Complexity: O(total characters) time, O(rows) memory.
func OpenStream(src source.Source, opts ...Option) (*Stream, error) {
	o := collect(opts)
	sh, err := measure(src, o, true)
	if err != nil {
		return nil, err
	}

	return &Stream{src: src, maxLine: o.maxLine, lengths: sh.lengths, dims: sh.dims}, nil
}

// Rows returns the number of rows seen when the stream was opened.
func (s *Stream) Rows() int { return len(s.lengths) }

// Cols returns the recorded length of row, or 0 if row is out of range.
func (s *Stream) Cols(row int) int {
	if row < 0 || row >= len(s.lengths) {
		return 0
	}
	return int(s.lengths[row])
}

// At reads the cell at (row, col) from the source.
// Positions outside the recorded shape return OutOfBounds without any I/O.
// If the source has shrunk since it was opened, missing cells read as OutOfBounds.
func (s *Stream) At(row, col int) (Cell, error) {
	if col < 0 || col >= s.Cols(row) {
		return OutOfBounds, nil
	}
	s.lookups++

	cell := OutOfBounds
	err := source.ScanLines(s.src, s.maxLine, func(r int, line []byte) bool {
		if r < row {
			return true
		}
		if col < len(line) {
			cell = Cell(line[col])
		}
		return false
	})
	if err != nil {
		return OutOfBounds, fmt.Errorf("grid: read %v from %s: %w", Pos(row, col), s.src.Name(), err)
	}

	return cell, nil
}

// WalkRows performs one sequential pass over the source.
func (s *Stream) WalkRows(fn func(row int, line []byte) bool) error {
	return source.ScanLines(s.src, s.maxLine, fn)
}

// Dimensions returns the shape recorded when the stream was opened.
func (s *Stream) Dimensions() Dimensions { return s.dims }

// Lookups returns how many times At went back to the source.
func (s *Stream) Lookups() int64 { return s.lookups }

// Name returns the name of the underlying source.
func (s *Stream) Name() string { return s.src.Name() }
