package search

import (
	"github.com/hupe1980/statesearch/core"
	"github.com/hupe1980/statesearch/frontier"
)

// BreadthFirst explores the state space shallowest-first. It is a graph
// search: each state is admitted to the frontier at most once, with no
// reopening. The returned node carries the minimal number of actions from
// the initial state, which is cost-optimal only when every step costs 1.
//
// Returns the failure node if the frontier empties without a goal.
func BreadthFirst[S comparable, A any](p core.Problem[S, A]) *core.Node[S, A] {
	root := core.Root[S, A](p.Initial())

	open := frontier.NewFIFO[*core.Node[S, A]]()
	open.Put(root)

	visited := map[S]struct{}{root.State: {}}

	for open.Len() > 0 {
		node := open.Take()
		if p.IsGoal(node.State) {
			return node
		}

		for child := range core.Expand(p, node) {
			if _, seen := visited[child.State]; seen {
				continue
			}
			visited[child.State] = struct{}{}
			open.Put(child)
		}
	}

	return core.FailureNode[S, A]()
}
