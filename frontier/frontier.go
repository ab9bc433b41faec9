// Package frontier implements the three removal disciplines the search
// algorithms are parameterized by: FIFO (shallowest first), LIFO (deepest
// first) and priority-by-score with deterministic tie-breaking.
package frontier

// Frontier is an ordered multiset of pending items. The discipline decides
// which item Take removes; Put never rejects.
type Frontier[T any] interface {
	Put(item T)
	Take() T
	Len() int
}

// FIFO removes items in insertion order, which yields shallowest-first
// expansion when used for search.
type FIFO[T any] struct {
	items []T
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO[T any]() *FIFO[T] { return &FIFO[T]{} }

// Put appends the item at the tail.
func (f *FIFO[T]) Put(item T) { f.items = append(f.items, item) }

// Take removes and returns the item at the head. It panics on an empty
// frontier; callers check Len first.
func (f *FIFO[T]) Take() T {
	item := f.items[0]
	var zero T
	f.items[0] = zero
	f.items = f.items[1:]
	return item
}

// Len returns the number of pending items.
func (f *FIFO[T]) Len() int { return len(f.items) }

// LIFO removes the most recently inserted item first, which yields
// deepest-first expansion when used for search.
type LIFO[T any] struct {
	items []T
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO[T any]() *LIFO[T] { return &LIFO[T]{} }

// Put appends the item at the tail.
func (l *LIFO[T]) Put(item T) { l.items = append(l.items, item) }

// Take removes and returns the item at the tail. It panics on an empty
// frontier; callers check Len first.
func (l *LIFO[T]) Take() T {
	n := len(l.items) - 1
	item := l.items[n]
	var zero T
	l.items[n] = zero
	l.items = l.items[:n]
	return item
}

// Len returns the number of pending items.
func (l *LIFO[T]) Len() int { return len(l.items) }
