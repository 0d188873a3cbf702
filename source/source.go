package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
)

// Sentinel errors for source operations.
var (
	// ErrUnreadable indicates the source could not be opened or read.
	ErrUnreadable = errors.New("source: input unreadable")

	// ErrLineTooLong indicates a line longer than the scanner limit.
	ErrLineTooLong = errors.New("source: line exceeds maximum length")
)

// DefaultMaxLine is the default upper bound on a single line, in bytes.
// It comfortably covers rows of 32,000 cells.
const DefaultMaxLine = 1 << 20

// brotliExt marks files stored brotli-compressed.
const brotliExt = ".br"

// Source is a re-openable, line-oriented text input.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Open returns a reader positioned at the first byte of the input.
	Open() (io.ReadCloser, error)
}

// fileSource reads a maze from disk.
type fileSource struct {
	path string
}

// File returns a Source backed by the file at path.
// A ".br" suffix selects transparent brotli decompression.
func File(path string) Source {
	return &fileSource{path: path}
}

// Name returns the file path.
func (f *fileSource) Name() string { return f.path }

// Open opens the file, wrapping it in a brotli reader when needed.
func (f *fileSource) Open() (io.ReadCloser, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !strings.HasSuffix(f.path, brotliExt) {
		return fh, nil
	}

	return &brotliFile{Reader: brotli.NewReader(fh), file: fh}, nil
}

// brotliFile couples a decompressing reader with the underlying file handle.
type brotliFile struct {
	*brotli.Reader
	file *os.File
}

// Close closes the underlying file.
func (b *brotliFile) Close() error { return b.file.Close() }

// memSource keeps its lines in memory.
type memSource struct {
	name string
	text string
}

// Lines returns an in-memory Source whose content is lines joined by '\n'.
func Lines(name string, lines ...string) Source {
	return &memSource{name: name, text: strings.Join(lines, "\n")}
}

// Name returns the name given to Lines.
func (m *memSource) Name() string { return m.name }

// Open returns a reader over the joined lines.
func (m *memSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(m.text)), nil
}

// ScanLines opens src and calls fn for each line in order, without the
// trailing newline (and without a trailing '\r'). The line slice is only
// valid for the duration of the call. Returning false from fn stops the scan.
// maxLine <= 0 selects DefaultMaxLine.
//
// Complexity: O(total bytes) time, O(maxLine) memory.
func ScanLines(src Source, maxLine int, fn func(row int, line []byte) bool) error {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	// the scanner limit also covers the "\r\n" terminator
	limit := maxLine + 2
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, min(64*1024, limit)), limit)
	for row := 0; sc.Scan(); row++ {
		line := sc.Bytes()
		if len(line) > maxLine {
			return fmt.Errorf("%w: %s (limit %d bytes)", ErrLineTooLong, src.Name(), maxLine)
		}
		if !fn(row, line) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: %s (limit %d bytes)", ErrLineTooLong, src.Name(), maxLine)
		}
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, src.Name(), err)
	}

	return nil
}
