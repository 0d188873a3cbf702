package bfs

import "github.com/katalvlaran/labyrinth/grid"

// Distance runs BFS on g from start and returns the minimal number of
// 4-directional steps to goal.
//
// Behavior:
//  1. Validate g, options and start (in bounds and passable).
//  2. Mark start with distance 0 and queue it.
//  3. Pop the oldest cell. If it is goal, its distance is minimal: return it.
//  4. Otherwise, for each neighbor (up, down, left, right) that lies inside
//     its row, is unvisited and passable, record distance+1 and queue it.
//  5. If the frontier empties first, report NoPath (not an error).
//
// Impassable neighbors are remembered in the table so each is read at most
// once, which matters when g re-reads its source on every lookup.
//
// Complexity: O(V + E) lookups; dense table O(V) memory, sparse O(explored).
func Distance(g grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	var table distanceTable
	if w.opts.Sparse {
		table = sparseTable{}
	} else {
		table = newDenseTable(g)
	}
	queue := newFrontier[grid.Coord](w.opts.FrontierHint)

	table.set(start, 0)
	w.opts.OnEnqueue(start, 0)
	queue.push(start)
	w.observe(queue.len())

	for queue.len() > 0 {
		if err := w.cancelled(); err != nil {
			return w.res, err
		}

		cur := queue.pop()
		d := table.get(cur)
		if err := w.visit(cur, int(d)); err != nil {
			return w.res, err
		}
		if cur == goal {
			w.res.Distance = int(d)
			return w.res, nil
		}

		for _, move := range grid.Moves {
			next := cur.Add(move)
			if !w.inBounds(next) || table.get(next) != unvisited {
				continue
			}
			ok, err := w.passable(next)
			if err != nil {
				return w.res, err
			}
			if !ok {
				table.set(next, blocked)
				continue
			}
			table.set(next, d+1)
			w.opts.OnEnqueue(next, int(d+1))
			queue.push(next)
		}
		w.observe(queue.len())
	}

	return w.res, nil
}
