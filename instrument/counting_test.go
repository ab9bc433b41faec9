package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/statesearch/core"
)

// Interface compliance (compile-time assertion)
var _ core.Problem[int, int] = (*Counting[int, int])(nil)

type decrement struct {
	*core.Base[int, int]
}

func (d *decrement) Actions(state int) []int {
	if state == 0 {
		return nil
	}
	return []int{1}
}

func (d *decrement) Result(state int, action int) int { return state - action }

func TestCountingForwardsAndTallies(t *testing.T) {
	inner := &decrement{Base: &core.Base[int, int]{InitialState: 3, GoalState: 0}}
	c := NewCounting[int, int](inner)

	assert.Equal(t, 3, c.Initial())
	assert.Equal(t, []int{1}, c.Actions(3))
	assert.Equal(t, 2, c.Result(3, 1))
	assert.False(t, c.IsGoal(3))
	assert.True(t, c.IsGoal(0))
	assert.Equal(t, 1.0, c.StepCost(3, 1, 2))
	assert.Zero(t, c.Heuristic(core.Root[int, int](3)))

	assert.Equal(t, 1, c.Count(CountActions))
	assert.Equal(t, 1, c.Count(CountResult))
	assert.Equal(t, 2, c.Count(CountIsGoal))
	assert.Equal(t, 1, c.Count(CountStepCost))
	assert.Equal(t, 1, c.Count(CountHeuristic))
	assert.Equal(t, 1, c.Expansions())
}

func TestCountingCountsAreCopies(t *testing.T) {
	inner := &decrement{Base: &core.Base[int, int]{InitialState: 3, GoalState: 0}}
	c := NewCounting[int, int](inner)

	c.Actions(3)
	counts := c.Counts()
	counts[CountActions] = 99

	assert.Equal(t, 1, c.Count(CountActions))
}

func TestCountingObservesWholeSearch(t *testing.T) {
	inner := &decrement{Base: &core.Base[int, int]{InitialState: 3, GoalState: 0}}
	c := NewCounting[int, int](inner)

	// Drive a minimal by-hand search loop through the wrapper to confirm
	// every expansion is visible.
	node := core.Root[int, int](c.Initial())
	for !c.IsGoal(node.State) {
		for child := range core.Expand[int, int](c, node) {
			node = child
		}
	}

	assert.Equal(t, 0, node.State)
	assert.Equal(t, 3, c.Expansions())
	assert.Equal(t, 3, c.Count(CountResult))
	assert.Equal(t, 4, c.Count(CountIsGoal))
}
