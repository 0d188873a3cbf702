package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
)

// randomMaze builds a ragged grid with ~30% walls and returns two free cells.
func randomMaze(rnd *rand.Rand) (*grid.Dense, grid.Coord, grid.Coord) {
	rows := 1 + rnd.Intn(12)
	lines := make([][]byte, rows)
	var free []grid.Coord
	for r := range lines {
		lines[r] = make([]byte, 1+rnd.Intn(12))
		for c := range lines[r] {
			if rnd.Intn(10) < 3 {
				lines[r][c] = '#'
				continue
			}
			lines[r][c] = '.'
			free = append(free, grid.Pos(r, c))
		}
	}
	if len(free) == 0 {
		lines[0][0] = '.'
		free = append(free, grid.Pos(0, 0))
	}
	start := free[rnd.Intn(len(free))]
	goal := free[rnd.Intn(len(free))]

	strs := make([]string, rows)
	for r := range lines {
		strs[r] = string(lines[r])
	}
	return grid.FromLines(strs...), start, goal
}

// TestProperties checks, over random grids, that:
//   - Distance, sparse Distance and Path agree on the minimal distance;
//   - len(Path)-1 == Distance and the path starts at start and ends at goal;
//   - consecutive path cells differ by one unit move and none is blocked;
//   - no coordinate is ever enqueued twice;
//   - a second run yields the same distance and path.
func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		g, start, goal := randomMaze(rnd)

		enqueued := map[grid.Coord]int{}
		count := bfs.WithOnEnqueue(func(at grid.Coord, _ int) { enqueued[at]++ })

		dist, err := bfs.Distance(g, start, goal, count)
		require.NoError(t, err)
		for at, n := range enqueued {
			require.Equal(t, 1, n, "Distance enqueued %v twice", at)
		}

		sparse, err := bfs.Distance(g, start, goal, bfs.WithSparseTable())
		require.NoError(t, err)
		require.Equal(t, dist.Distance, sparse.Distance)

		enqueued = map[grid.Coord]int{}
		path, err := bfs.Path(g, start, goal, count)
		require.NoError(t, err)
		for at, n := range enqueued {
			require.Equal(t, 1, n, "Path enqueued %v twice", at)
		}
		require.Equal(t, dist.Distance, path.Distance)

		if !dist.Found() {
			require.Nil(t, path.Path)
			continue
		}
		require.Len(t, path.Path, dist.Distance+1)
		require.Equal(t, start, path.Path[0])
		require.Equal(t, goal, path.Path[len(path.Path)-1])
		for j, at := range path.Path {
			cell, _ := g.At(int(at.Row), int(at.Col))
			require.True(t, cell.Passable(), "path cell %v is %q", at, cell)
			if j > 0 {
				require.Equal(t, 1, at.Manhattan(path.Path[j-1]), "step %d", j)
			}
		}

		again, err := bfs.Path(g, start, goal)
		require.NoError(t, err)
		require.Equal(t, path.Path, again.Path)
		require.Equal(t, path.Distance, again.Distance)
	}
}

// TestFrontierBound keeps the frontier within the number of free cells.
func TestFrontierBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		g, start, goal := randomMaze(rnd)
		free := 0
		_ = g.WalkRows(func(_ int, line []byte) bool {
			for _, ch := range line {
				if grid.Cell(ch).Passable() {
					free++
				}
			}
			return true
		})
		for name, run := range engines {
			res, err := run(g, start, goal)
			require.NoError(t, err, name)
			require.LessOrEqual(t, res.MaxFrontier, free, name)
			require.LessOrEqual(t, res.Explored, free, name)
		}
	}
}
