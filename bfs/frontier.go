package bfs

// compactMin is the smallest consumed prefix worth reclaiming.
const compactMin = 1024

// frontier is a FIFO queue backed by a slice with a moving head.
// The consumed prefix is reclaimed once it dominates the slice,
// keeping push and pop amortized O(1).
type frontier[T any] struct {
	items []T
	head  int
}

func newFrontier[T any](hint int) *frontier[T] {
	return &frontier[T]{items: make([]T, 0, hint)}
}

func (f *frontier[T]) push(v T) {
	f.items = append(f.items, v)
}

// pop removes and returns the oldest item. The caller checks len first.
func (f *frontier[T]) pop() T {
	v := f.items[f.head]
	f.head++
	if f.head >= compactMin && f.head*2 >= len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
	}
	return v
}

func (f *frontier[T]) len() int {
	return len(f.items) - f.head
}
