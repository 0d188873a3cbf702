package grid

import "github.com/katalvlaran/labyrinth/source"

// Option configures Load and OpenStream.
type Option func(*options)

// options holds loader settings.
type options struct {
	maxLine      int
	strict       bool
	budget       int64 // bytes; 0 disables the check
	bytesPerCell int64 // search-state overhead charged per cell
}

// defaultOptions: DefaultMaxLine, lenient characters, no memory budget.
func defaultOptions() options {
	return options{maxLine: source.DefaultMaxLine}
}

// WithMaxLine bounds the length of a single row in bytes.
// Non-positive values keep the default.
func WithMaxLine(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLine = n
		}
	}
}

// WithStrict rejects any character outside "#.AB" with ErrInvalidCell.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithBudget enables the memory check in Load: the grid bytes plus
// searchBytesPerCell for every cell must fit in limit. limit <= 0 disables it.
func WithBudget(limit, searchBytesPerCell int64) Option {
	return func(o *options) {
		if limit > 0 {
			o.budget = limit
			o.bytesPerCell = searchBytesPerCell
		}
	}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
