// Package source provides the line-oriented text inputs a maze is read from.
//
// What:
//
//   - Source abstracts "something that can be opened and read as lines".
//   - File opens a path on disk; paths ending in ".br" are brotli-decoded.
//   - Lines serves an in-memory maze, useful for tests and examples.
//   - ScanLines performs one sequential pass, one callback per line.
//
// Every Open returns a fresh reader positioned at the first line, so a
// Source may be scanned any number of times. The streaming grid relies on
// this to re-read rows on demand.
//
// Errors:
//
//   - ErrUnreadable: the source could not be opened or read.
//   - ErrLineTooLong: a line exceeded the configured maximum length.
package source
