// Package solver drives a complete maze run: load, locate, search, report.
//
// Run is an explicit two-phase driver.
//
//  1. Primary: load the primary input fully into memory (grid.Load) under a
//     memory budget and search it with the requested mode.
//  2. Fallback: only if phase 1 reports grid.ErrResourceExhausted and a
//     fallback input is configured, open the fallback input as a grid.Stream
//     and run a distance-only search with a sparse table. Nothing from phase 1
//     is reused; the fallback input supplies its own markers and cells.
//
// Outcomes that are not faults (missing markers, unreachable goal) come back
// inside the Report with a nil error. Only I/O, resource and cancellation
// failures are errors.
package solver
