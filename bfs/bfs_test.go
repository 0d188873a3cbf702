package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/source"
)

// search is the common signature of Distance and Path.
type search func(grid.Grid, grid.Coord, grid.Coord, ...bfs.Option) (*bfs.Result, error)

var engines = map[string]search{
	"Distance": bfs.Distance,
	"Sparse": func(g grid.Grid, s, t grid.Coord, opts ...bfs.Option) (*bfs.Result, error) {
		return bfs.Distance(g, s, t, append(opts, bfs.WithSparseTable())...)
	},
	"Path": bfs.Path,
}

// solve locates the markers in lines and runs every engine on the result.
func solve(t *testing.T, lines ...string) map[string]*bfs.Result {
	t.Helper()
	g := grid.FromLines(lines...)
	start, goal, err := grid.Locate(g)
	require.NoError(t, err)

	out := make(map[string]*bfs.Result, len(engines))
	for name, run := range engines {
		res, err := run(g, start, goal)
		require.NoError(t, err, name)
		out[name] = res
	}
	return out
}

// TestScenarios covers the reference mazes with known answers.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  int
	}{
		{"ThreeByThree", []string{"A.#", ".#.", "..B"}, 4},
		{"WallSeparated", []string{"A#B"}, bfs.NoPath},
		{"Adjacent", []string{"AB"}, 1},
		{"Corridor", []string{"A.....B"}, 6},
		// row 2 is shorter than the goal column; its missing cells block the right side
		{"RaggedShortRow", []string{"A....", "#.#..", "..", "....B"}, 7},
		// row 1 is a single cell; the route drops through it
		{"RaggedNoBridge", []string{"A###", ".", "...B"}, 5},
		{"Enclosed", []string{"###", "#A#", "###", "..B"}, bfs.NoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for name, res := range solve(t, tc.lines...) {
				require.Equal(t, tc.want, res.Distance, name)
				require.Equal(t, tc.want != bfs.NoPath, res.Found(), name)
			}
		})
	}
}

// TestScenario_PathLength checks the 3×3 reference path in full.
func TestScenario_PathLength(t *testing.T) {
	res := solve(t, "A.#", ".#.", "..B")["Path"]
	require.Len(t, res.Path, 5)
	require.Equal(t, []grid.Coord{
		grid.Pos(0, 0), grid.Pos(1, 0), grid.Pos(2, 0), grid.Pos(2, 1), grid.Pos(2, 2),
	}, res.Path)
}

// TestStartEqualsGoal returns distance 0 and a single-cell path.
func TestStartEqualsGoal(t *testing.T) {
	g := grid.FromLines("A")
	for name, run := range engines {
		res, err := run(g, grid.Pos(0, 0), grid.Pos(0, 0))
		require.NoError(t, err, name)
		require.Equal(t, 0, res.Distance, name)
		require.Equal(t, 1, res.Explored, name)
	}
	res, err := bfs.Path(g, grid.Pos(0, 0), grid.Pos(0, 0))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{grid.Pos(0, 0)}, res.Path)
}

// TestErrors verifies invalid inputs and options are rejected.
func TestErrors(t *testing.T) {
	g := grid.FromLines("A#", ".B")
	for name, run := range engines {
		_, err := run(nil, grid.Pos(0, 0), grid.Pos(1, 1))
		require.ErrorIs(t, err, bfs.ErrGridNil, name)

		_, err = run(g, grid.Pos(0, 1), grid.Pos(1, 1))
		require.ErrorIs(t, err, bfs.ErrStartInvalid, "%s: wall start", name)

		_, err = run(g, grid.Pos(5, 5), grid.Pos(1, 1))
		require.ErrorIs(t, err, bfs.ErrStartInvalid, "%s: outside start", name)

		_, err = run(g, grid.Pos(0, 0), grid.Pos(1, 1), bfs.WithFrontierHint(-1))
		require.ErrorIs(t, err, bfs.ErrOptionViolation, name)
	}
}

// TestGoalOutside reports NoPath, not an error, for a goal off the grid.
func TestGoalOutside(t *testing.T) {
	g := grid.FromLines("A..", "...")
	for name, run := range engines {
		res, err := run(g, grid.Pos(0, 0), grid.Pos(9, 9))
		require.NoError(t, err, name)
		require.False(t, res.Found(), name)
		require.Equal(t, 6, res.Explored, name)
		require.Nil(t, res.Path, name)
	}
}

// TestHooks asserts that hooks fire in BFS order with correct depths.
func TestHooks(t *testing.T) {
	g := grid.FromLines("A..B")
	for name, run := range engines {
		var enq, deq, vis []string
		entry := func(prefix string, at grid.Coord, d int) string {
			return fmt.Sprintf("%s%v@%d", prefix, at, d)
		}
		res, err := run(g, grid.Pos(0, 0), grid.Pos(0, 3),
			bfs.WithOnEnqueue(func(at grid.Coord, d int) { enq = append(enq, entry("e", at, d)) }),
			bfs.WithOnDequeue(func(at grid.Coord, d int) { deq = append(deq, entry("d", at, d)) }),
			bfs.WithOnVisit(func(at grid.Coord, d int) error { vis = append(vis, entry("v", at, d)); return nil }),
		)
		require.NoError(t, err, name)
		require.Equal(t, 3, res.Distance, name)

		want := []string{"(0, 0)@0", "(0, 1)@1", "(0, 2)@2", "(0, 3)@3"}
		require.Len(t, enq, 4, name)
		require.Len(t, deq, 4, name)
		require.Len(t, vis, 4, name)
		for i, suffix := range want {
			require.True(t, strings.HasSuffix(enq[i], suffix), "%s OnEnqueue[%d]=%s", name, i, enq[i])
			require.True(t, strings.HasSuffix(deq[i], suffix), "%s OnDequeue[%d]=%s", name, i, deq[i])
			require.True(t, strings.HasSuffix(vis[i], suffix), "%s OnVisit[%d]=%s", name, i, vis[i])
		}
	}
}

// TestVisitAbort propagates a hook error wrapped with the cell.
func TestVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	g := grid.FromLines("A...B")
	for name, run := range engines {
		_, err := run(g, grid.Pos(0, 0), grid.Pos(0, 4),
			bfs.WithOnVisit(func(at grid.Coord, _ int) error {
				if at.Col == 2 {
					return stop
				}
				return nil
			}),
		)
		require.ErrorIs(t, err, stop, name)
		require.Contains(t, err.Error(), "(0, 2)", name)
	}
}

// TestCancellation verifies that a cancelled context halts the search.
func TestCancellation(t *testing.T) {
	g := grid.FromLines(strings.Repeat(".", 50)+"A", strings.Repeat(".", 50)+"B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, run := range engines {
		_, err := run(g, grid.Pos(0, 50), grid.Pos(1, 50), bfs.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled, name)
	}
}

// TestStreamGrid runs every engine on a re-reading grid and compares with Dense.
func TestStreamGrid(t *testing.T) {
	lines := []string{"A.#...", "...#.", "#.#..#", "....B"}
	src := source.Lines("maze", lines...)
	st, err := grid.OpenStream(src)
	require.NoError(t, err)
	start, goal, err := grid.Locate(st)
	require.NoError(t, err)

	want := solve(t, lines...)["Distance"].Distance
	for name, run := range engines {
		res, err := run(st, start, goal)
		require.NoError(t, err, name)
		require.Equal(t, want, res.Distance, name)
	}
	require.Positive(t, st.Lookups())
}

// brokenGrid fails every lookup past the first row.
type brokenGrid struct{ *grid.Dense }

func (b brokenGrid) At(row, col int) (grid.Cell, error) {
	if row > 0 {
		return grid.OutOfBounds, errors.New("disk on fire")
	}
	return b.Dense.At(row, col)
}

// TestReadError surfaces lookup failures instead of treating them as walls.
func TestReadError(t *testing.T) {
	g := brokenGrid{grid.FromLines("A.", ".B")}
	for name, run := range engines {
		_, err := run(g, grid.Pos(0, 0), grid.Pos(1, 1))
		require.Error(t, err, name)
		require.Contains(t, err.Error(), "disk on fire", name)
	}
}

// TestSerpentine forces the search through every corridor of a winding maze.
//
//	A . . . .
//	# # # # .
//	. . . . .
//	. # # # #
//	. . . . B
func TestSerpentine(t *testing.T) {
	for name, res := range solve(t, openMaze(5)...) {
		require.Equal(t, 16, res.Distance, name)
	}
	res := solve(t, openMaze(5)...)["Path"]
	require.Len(t, res.Path, 17)
}
