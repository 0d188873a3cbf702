// Package render draws a found path over the region of the maze it crosses.
//
// The view is the bounding box of the path widened by a margin, clipped to
// the grid and to a maximum size. ASCII marks path cells with '*' and ends
// with a fixed legend; PNG draws one square per cell.
package render
