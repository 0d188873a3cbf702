package bfs

import "github.com/katalvlaran/labyrinth/grid"

func denseFixture() *grid.Dense {
	return grid.FromLines("A..#", ".", "", "...B..")
}

func coord(r, c int) grid.Coord { return grid.Pos(r, c) }
