// Package bfs finds shortest paths between two cells of a grid.Grid using
// breadth-first search with 4-directional moves.
//
// What
//
//   - Distance returns the minimal number of steps from start to goal.
//   - Path additionally returns the ordered cells from start to goal.
//   - Both run against the grid.Grid contract, so they work unchanged on an
//     in-memory grid.Dense or a re-reading grid.Stream.
//   - Hooks fire at three stages, as the frontier is processed:
//   - OnEnqueue (a cell is discovered and queued)
//   - OnDequeue (a cell leaves the frontier)
//   - OnVisit   (a cell is expanded; may abort with an error)
//
// Guarantees
//
//   - The frontier is strict FIFO, so cells are expanded in non-decreasing
//     distance and the first time goal is dequeued its distance is minimal.
//   - A cell is marked visited when it is discovered, so no cell is ever
//     enqueued twice; the frontier never exceeds the number of free cells.
//   - Neighbors are expanded up, down, left, right. Paths are deterministic.
//   - The grid is never modified; repeated runs return identical results.
//
// Distance tables
//
//	Distance records visited state in a DistanceTable. The default dense
//	table is a flat int32 slice with one slot per cell (ragged rows are
//	packed by per-row offsets). WithSparseTable switches to a map keyed by
//	grid.Coord, whose size follows the explored region instead of the grid;
//	the streaming fallback uses it.
//
// Path reconstruction
//
//	Path stores each discovered cell once in an arena indexed by discovery
//	order, with the arena index of its predecessor. The frontier holds arena
//	indices. Reaching goal, the chain is followed by index back to start and
//	reversed.
//
// Complexity (V = cells, E ≤ 4V)
//
//   - Time:   O(V + E) lookups; on a grid.Stream each lookup re-reads the source.
//   - Memory: O(V) dense, O(reachable) sparse and Path.
//
// Errors
//
//   - ErrGridNil            if the grid is nil.
//   - ErrStartInvalid       if start is outside the grid or not passable.
//   - ErrOptionViolation    for invalid options.
//   - Wrapped grid read errors, context errors, and OnVisit hook errors.
//
// An unreachable goal is not an error: Result.Found reports false and
// Result.Distance is NoPath.
package bfs
