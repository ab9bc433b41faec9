package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseDefaults(t *testing.T) {
	b := &Base[string, string]{InitialState: "start", GoalState: "goal"}

	assert.Equal(t, "start", b.Initial())
	assert.Equal(t, "goal", b.Goal())
	assert.True(t, b.IsGoal("goal"))
	assert.False(t, b.IsGoal("start"))
	assert.Equal(t, 1.0, b.StepCost("start", "a", "goal"))
	assert.Zero(t, b.Heuristic(Root[string, string]("start")))
}

func TestBaseUnimplementedPanics(t *testing.T) {
	b := &Base[string, string]{}

	assert.PanicsWithValue(t, "statesearch: Problem.Actions not implemented", func() {
		b.Actions("s")
	})
	assert.PanicsWithValue(t, "statesearch: Problem.Result not implemented", func() {
		b.Result("s", "a")
	})
}
