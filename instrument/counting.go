// Package instrument provides an explicit delegating wrapper around the
// Problem contract that tallies every call per method. Because the search
// algorithms reach domains only through the contract surface, wrapping a
// problem is enough to observe all of its traffic; no reflection or
// interception is involved.
package instrument

import "github.com/hupe1980/statesearch/core"

// Counter keys, one per contract method.
const (
	CountActions   = "actions"
	CountResult    = "result"
	CountIsGoal    = "is_goal"
	CountStepCost  = "step_cost"
	CountHeuristic = "heuristic"
)

// Counting wraps an inner Problem, forwards every call unchanged and
// increments a named counter per method. One Actions call corresponds to
// one node expansion, so CountActions doubles as the expansion count.
//
// Counting is not safe for concurrent use; give each search its own
// wrapper.
type Counting[S comparable, A any] struct {
	inner  core.Problem[S, A]
	counts map[string]int
}

// NewCounting wraps the given problem with fresh counters.
func NewCounting[S comparable, A any](inner core.Problem[S, A]) *Counting[S, A] {
	return &Counting[S, A]{inner: inner, counts: map[string]int{}}
}

// Initial forwards to the inner problem. It is not counted: it reads stored
// configuration rather than exercising the domain.
func (c *Counting[S, A]) Initial() S { return c.inner.Initial() }

// Actions forwards to the inner problem and counts the call.
func (c *Counting[S, A]) Actions(state S) []A {
	c.counts[CountActions]++
	return c.inner.Actions(state)
}

// Result forwards to the inner problem and counts the call.
func (c *Counting[S, A]) Result(state S, action A) S {
	c.counts[CountResult]++
	return c.inner.Result(state, action)
}

// IsGoal forwards to the inner problem and counts the call.
func (c *Counting[S, A]) IsGoal(state S) bool {
	c.counts[CountIsGoal]++
	return c.inner.IsGoal(state)
}

// StepCost forwards to the inner problem and counts the call.
func (c *Counting[S, A]) StepCost(state S, action A, next S) float64 {
	c.counts[CountStepCost]++
	return c.inner.StepCost(state, action, next)
}

// Heuristic forwards to the inner problem and counts the call.
func (c *Counting[S, A]) Heuristic(node *core.Node[S, A]) float64 {
	c.counts[CountHeuristic]++
	return c.inner.Heuristic(node)
}

// Count returns the tally for one method key.
func (c *Counting[S, A]) Count(key string) int { return c.counts[key] }

// Expansions returns the number of node expansions observed so far.
func (c *Counting[S, A]) Expansions() int { return c.counts[CountActions] }

// Counts returns a copy of all tallies.
func (c *Counting[S, A]) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
