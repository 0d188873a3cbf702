package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrResourceExhausted indicates the estimated memory for the grid and its
	// search state exceeds the configured budget.
	ErrResourceExhausted = errors.New("grid: memory budget exceeded")

	// ErrInvalidCell indicates a character outside the maze alphabet (strict mode only).
	ErrInvalidCell = errors.New("grid: invalid cell character")

	// ErrTooLarge indicates a row count or row length beyond the coordinate range.
	ErrTooLarge = errors.New("grid: dimensions exceed coordinate range")

	// ErrMarkersNotFound indicates the start and/or goal marker is absent.
	ErrMarkersNotFound = errors.New("grid: start or goal marker not found")
)

// Cell is a single maze character.
type Cell byte

const (
	// Wall blocks movement.
	Wall Cell = '#'
	// Free is an open cell.
	Free Cell = '.'
	// Start marks the search origin.
	Start Cell = 'A'
	// Goal marks the search target.
	Goal Cell = 'B'
	// OutOfBounds is returned for positions outside a row; it is impassable.
	OutOfBounds Cell = ' '
)

// Passable reports whether a search may step onto c.
func (c Cell) Passable() bool {
	return c != Wall && c != OutOfBounds
}

// Valid reports whether c belongs to the maze alphabet.
func (c Cell) Valid() bool {
	switch c {
	case Wall, Free, Start, Goal:
		return true
	}
	return false
}

// maxIndex bounds rows and columns so every Coord fits in int32.
const maxIndex = math.MaxInt32

// Coord identifies a cell by row and column. Equality is by value.
type Coord struct {
	Row, Col int32
}

// Unit moves in search order: up, down, left, right.
var (
	Up    = Coord{Row: -1}
	Down  = Coord{Row: 1}
	Left  = Coord{Col: -1}
	Right = Coord{Col: 1}

	// Moves lists the four orthogonal steps in the order neighbors are expanded.
	Moves = [4]Coord{Up, Down, Left, Right}
)

// Pos builds a Coord from int indices.
func Pos(row, col int) Coord {
	return Coord{Row: int32(row), Col: int32(col)}
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := int(c.Row-o.Row), int(c.Col-o.Col)
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// String formats c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Dimensions summarizes a grid's shape.
type Dimensions struct {
	Rows    int   // number of lines
	MaxCols int   // longest line
	Cells   int64 // total characters over all rows
}

// String formats the shape as "RxC".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.MaxCols)
}

// Grid is the read-only cell lookup shared by Dense and Stream.
type Grid interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the length of row; 0 when row is out of range.
	Cols(row int) int
	// At returns the cell at (row, col), or OutOfBounds when the position lies
	// outside the grid. An error is returned only if the backing store fails.
	At(row, col int) (Cell, error)
}

// RowWalker visits rows in order. fn returns false to stop early.
type RowWalker interface {
	WalkRows(fn func(row int, line []byte) bool) error
}
