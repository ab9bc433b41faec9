package frontier

import "container/heap"

// Priority removes the minimum-score item first. The score function is
// evaluated once, at insertion time. Equal scores are broken by a monotonic
// insertion counter, so removal order is fully deterministic and does not
// depend on the item type being comparable or ordered.
type Priority[T any] struct {
	score func(T) float64
	heap  scoreHeap[T]
	seq   uint64
}

// NewPriority returns an empty priority frontier ordered by score.
func NewPriority[T any](score func(T) float64) *Priority[T] {
	return &Priority[T]{score: score}
}

// Put inserts the item with its score.
func (p *Priority[T]) Put(item T) {
	p.seq++
	heap.Push(&p.heap, &scoreItem[T]{item: item, score: p.score(item), seq: p.seq})
}

// Take removes and returns the minimum-score item. It panics on an empty
// frontier; callers check Len first.
func (p *Priority[T]) Take() T {
	return heap.Pop(&p.heap).(*scoreItem[T]).item
}

// Len returns the number of pending items.
func (p *Priority[T]) Len() int { return len(p.heap) }

type scoreItem[T any] struct {
	item  T
	score float64
	seq   uint64
}

type scoreHeap[T any] []*scoreItem[T]

func (h scoreHeap[T]) Len() int { return len(h) }

func (h scoreHeap[T]) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}

func (h scoreHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap[T]) Push(x any) { *h = append(*h, x.(*scoreItem[T])) }

func (h *scoreHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
