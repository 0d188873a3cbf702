package bfs

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// noParent marks the root of the predecessor tree.
const noParent int32 = -1

// node is one discovered cell. parent is the arena index of its predecessor.
type node struct {
	at     grid.Coord
	parent int32
	depth  int32
}

// Path runs BFS on g from start and returns the cells of a shortest path to
// goal, start and goal included. Result.Distance equals len(Result.Path)-1.
//
// Every discovered cell is appended once to an arena and never modified; the
// frontier holds arena indices. A cell joins the visited set when it is
// discovered, not when it is expanded, so no coordinate is queued twice.
// When goal is dequeued the predecessor chain is followed by index back to
// start and laid out in start-to-goal order.
//
// Complexity: O(V + E) lookups, O(explored) memory.
func Path(g grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	arena := make([]node, 0, w.opts.FrontierHint)
	visited := mapset.New[grid.Coord]()
	queue := newFrontier[int32](w.opts.FrontierHint)

	discover := func(at grid.Coord, parent, depth int32) error {
		if len(arena) == math.MaxInt32 {
			return fmt.Errorf("bfs: path arena full at %v: %w", at, grid.ErrResourceExhausted)
		}
		visited.Put(at)
		arena = append(arena, node{at: at, parent: parent, depth: depth})
		w.opts.OnEnqueue(at, int(depth))
		queue.push(int32(len(arena) - 1))
		return nil
	}

	if err := discover(start, noParent, 0); err != nil {
		return w.res, err
	}
	w.observe(queue.len())

	for queue.len() > 0 {
		if err := w.cancelled(); err != nil {
			return w.res, err
		}

		idx := queue.pop()
		cur := arena[idx]
		if err := w.visit(cur.at, int(cur.depth)); err != nil {
			return w.res, err
		}
		if cur.at == goal {
			w.res.Distance = int(cur.depth)
			w.res.Path = reconstruct(arena, idx)
			return w.res, nil
		}

		for _, move := range grid.Moves {
			next := cur.at.Add(move)
			if !w.inBounds(next) || visited.Has(next) {
				continue
			}
			ok, err := w.passable(next)
			if err != nil {
				return w.res, err
			}
			if !ok {
				// remembered so the cell is read only once
				visited.Put(next)
				continue
			}
			if err := discover(next, idx, cur.depth+1); err != nil {
				return w.res, err
			}
		}
		w.observe(queue.len())
	}

	return w.res, nil
}

// reconstruct follows parent indices from idx to the root and returns the
// coordinates in root-to-idx order.
func reconstruct(arena []node, idx int32) []grid.Coord {
	path := make([]grid.Coord, arena[idx].depth+1)
	for i := len(path) - 1; idx != noParent; i-- {
		path[i] = arena[idx].at
		idx = arena[idx].parent
	}
	return path
}
