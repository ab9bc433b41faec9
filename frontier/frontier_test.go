package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertions)
var (
	_ Frontier[int] = (*FIFO[int])(nil)
	_ Frontier[int] = (*LIFO[int])(nil)
	_ Frontier[int] = (*Priority[int])(nil)
)

func drain[T any](f Frontier[T]) []T {
	var out []T
	for f.Len() > 0 {
		out = append(out, f.Take())
	}
	return out
}

func TestFIFOOrder(t *testing.T) {
	f := NewFIFO[int]()
	for _, v := range []int{1, 2, 3} {
		f.Put(v)
	}

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []int{1, 2, 3}, drain[int](f))
	assert.Zero(t, f.Len())
}

func TestLIFOOrder(t *testing.T) {
	l := NewLIFO[int]()
	for _, v := range []int{1, 2, 3} {
		l.Put(v)
	}

	assert.Equal(t, []int{3, 2, 1}, drain[int](l))
}

func TestPriorityOrder(t *testing.T) {
	p := NewPriority(func(v int) float64 { return float64(v) })
	for _, v := range []int{5, 1, 4, 2, 3} {
		p.Put(v)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, drain[int](p))
}

func TestPriorityTieBreakByInsertion(t *testing.T) {
	// All items score the same; removal must follow insertion order even
	// though the item type carries no usable ordering of its own.
	type opaque struct{ id string }

	p := NewPriority(func(opaque) float64 { return 7 })
	p.Put(opaque{"first"})
	p.Put(opaque{"second"})
	p.Put(opaque{"third"})

	assert.Equal(t, opaque{"first"}, p.Take())
	assert.Equal(t, opaque{"second"}, p.Take())
	assert.Equal(t, opaque{"third"}, p.Take())
}

func TestPriorityScoreEvaluatedAtInsertion(t *testing.T) {
	score := 1.0
	p := NewPriority(func(string) float64 { return score })

	p.Put("early")
	score = 0
	p.Put("late")

	assert.Equal(t, "late", p.Take())
	assert.Equal(t, "early", p.Take())
}
