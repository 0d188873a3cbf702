// Package labyrinth finds the shortest route between two marked cells of a
// text maze.
//
// What is a maze here?
//
//	A text file, one grid row per line:
//		'#' wall, '.' free, 'A' start, 'B' goal
//	Rows may differ in length; a missing cell is outside the grid.
//	Moves are one step up, down, left or right; every step costs 1.
//
// The work is split across small packages:
//
//	source/ — named, re-openable inputs (plain or brotli-compressed files, in-memory lines)
//	grid/   — Dense (fully loaded) and Stream (re-reads the source per lookup) grids, Locate
//	bfs/    — Distance and Path searches with hooks, cancellation and a sparse table mode
//	render/ — cropped ASCII view and PNG image of a found path
//	solver/ — in-memory search under a memory budget, streaming fallback, Report
//	config/ — flags, LABYRINTH_* environment, .env and config file resolution
//	logger/ — shared logrus logger
//
// Quick example:
//
//	A.#
//	.#.
//	..B
//
//	$ labyrinth distance -i maze.txt
//	Path found! Shortest distance: 4 steps
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
