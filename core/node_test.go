package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdown is a minimal domain for exercising the node model: states are
// ints, the single action subtracts its value.
type countdown struct {
	*Base[int, int]
}

func (c *countdown) Actions(state int) []int {
	if state <= 0 {
		return nil
	}
	return []int{1, 2}
}

func (c *countdown) Result(state int, action int) int { return state - action }

// Interface compliance (compile-time assertion)
var _ Problem[int, int] = (*countdown)(nil)

func newCountdown(start, goal int) *countdown {
	return &countdown{Base: &Base[int, int]{InitialState: start, GoalState: goal}}
}

func TestRootInvariants(t *testing.T) {
	root := Root[int, int](9)

	assert.Equal(t, 9, root.State)
	assert.Nil(t, root.Parent)
	assert.Zero(t, root.Action)
	assert.Zero(t, root.PathCost)
	assert.Equal(t, 0, root.Depth())
	assert.True(t, root.Solved())
}

func TestExpand(t *testing.T) {
	p := newCountdown(5, 0)
	root := Root[int, int](5)

	var children []*Node[int, int]
	for child := range Expand[int, int](p, root) {
		children = append(children, child)
	}

	require.Len(t, children, 2)
	assert.Equal(t, 4, children[0].State)
	assert.Equal(t, 1, children[0].Action)
	assert.Equal(t, 3, children[1].State)
	assert.Equal(t, 2, children[1].Action)
	for _, child := range children {
		assert.Same(t, root, child.Parent)
		assert.Equal(t, 1.0, child.PathCost)
		assert.Equal(t, 1, child.Depth())
	}
}

func TestExpandIsLazy(t *testing.T) {
	p := newCountdown(5, 0)
	root := Root[int, int](5)

	seen := 0
	for range Expand[int, int](p, root) {
		seen++
		break
	}

	assert.Equal(t, 1, seen)
}

func TestPathRoundTrip(t *testing.T) {
	p := newCountdown(5, 0)

	// Walk a fixed chain: 5 -2-> 3 -1-> 2 -2-> 0.
	node := Root[int, int](5)
	for _, action := range []int{2, 1, 2} {
		node = &Node[int, int]{
			State:    p.Result(node.State, action),
			Parent:   node,
			Action:   action,
			PathCost: node.PathCost + 1,
		}
	}

	require.Equal(t, 3, node.Depth())
	assert.Equal(t, []int{2, 1, 2}, node.PathActions())
	assert.Equal(t, []int{5, 3, 2, 0}, node.PathStates())

	path := node.Path()
	require.Len(t, path, 2*node.Depth()+1)
	states := node.PathStates()
	actions := node.PathActions()
	for i, elem := range path {
		if i%2 == 0 {
			assert.Equal(t, states[i/2], elem)
		} else {
			assert.Equal(t, actions[i/2], elem)
		}
	}
}

func TestPathOfRoot(t *testing.T) {
	root := Root[int, int](5)

	assert.Empty(t, root.PathActions())
	assert.Equal(t, []int{5}, root.PathStates())
	assert.Equal(t, []any{5}, root.Path())
}

func TestSentinelNodes(t *testing.T) {
	failure := FailureNode[int, int]()
	cutoff := CutoffNode[int, int]()

	assert.True(t, failure.Failure())
	assert.False(t, failure.Cutoff())
	assert.False(t, failure.Solved())

	assert.True(t, cutoff.Cutoff())
	assert.False(t, cutoff.Failure())
	assert.False(t, cutoff.Solved())

	assert.True(t, math.IsInf(failure.PathCost, 1))
	assert.True(t, math.IsInf(cutoff.PathCost, 1))
}
