package bfs

import "github.com/katalvlaran/labyrinth/grid"

// Table slot markers. Valid distances are >= 0.
const (
	unvisited int32 = -1
	blocked   int32 = -2 // impassable, remembered so it is read only once
)

// distanceTable maps in-bounds coordinates to their BFS distance.
// Callers only pass coordinates within the grid's row extents.
type distanceTable interface {
	get(at grid.Coord) int32
	set(at grid.Coord, d int32)
}

// denseTable packs ragged rows into one slice: row r starts at offsets[r].
type denseTable struct {
	offsets []int64
	dist    []int32
}

// newDenseTable sizes the table to g, every slot unvisited.
// Complexity: O(cells) time and memory.
func newDenseTable(g grid.Grid) *denseTable {
	rows := g.Rows()
	offsets := make([]int64, rows)
	var total int64
	for r := 0; r < rows; r++ {
		offsets[r] = total
		total += int64(g.Cols(r))
	}
	dist := make([]int32, total)
	for i := range dist {
		dist[i] = unvisited
	}
	return &denseTable{offsets: offsets, dist: dist}
}

func (t *denseTable) get(at grid.Coord) int32 {
	return t.dist[t.offsets[at.Row]+int64(at.Col)]
}

func (t *denseTable) set(at grid.Coord, d int32) {
	t.dist[t.offsets[at.Row]+int64(at.Col)] = d
}

// sparseTable only holds entries for touched cells.
type sparseTable map[grid.Coord]int32

func (t sparseTable) get(at grid.Coord) int32 {
	if d, ok := t[at]; ok {
		return d
	}
	return unvisited
}

func (t sparseTable) set(at grid.Coord, d int32) {
	t[at] = d
}
