// Package grid loads character mazes and exposes them as addressable cells.
//
// What:
//
//   - Cell is one maze character: '#' wall, '.' free, 'A' start, 'B' goal.
//   - Coord is a (Row, Col) value type, comparable and usable as a map key.
//   - Grid is the cell-lookup contract shared by both loaders:
//     Rows(), Cols(row), At(row, col).
//   - Dense materializes every row in memory (two passes over the source).
//   - Stream keeps only row lengths and re-reads the source on each lookup.
//   - Locate finds the first start and goal markers in row-major order.
//
// Rows may differ in length. Any (row, col) outside a row's extent reads as
// OutOfBounds, which is impassable, exactly like a wall.
//
// Complexity:
//
//   - Load:       O(total characters) time and memory.
//   - OpenStream: O(total characters) time, O(rows) memory.
//   - Stream.At:  O(bytes before the requested row) time, O(row length) memory.
//   - Locate:     O(characters up to the later of the two markers).
//
// Errors:
//
//   - ErrResourceExhausted: the configured memory budget cannot hold the grid and its search state.
//   - ErrInvalidCell: a character outside "#.AB" was found in strict mode.
//   - ErrTooLarge: a dimension does not fit the 32-bit coordinate range.
//   - ErrMarkersNotFound: the start or goal marker is missing.
//   - Source errors (source.ErrUnreadable, source.ErrLineTooLong) pass through wrapped.
package grid
