package search

import (
	"github.com/hupe1980/statesearch/core"
	"github.com/hupe1980/statesearch/frontier"
)

// Score ranks a node for removal from a priority frontier; lower is better.
type Score[S comparable, A any] func(node *core.Node[S, A]) float64

// BestFirst removes nodes in ascending order of the score f. It is a graph
// search with reopening: a reached map keeps the cheapest node found per
// state, and a child is admitted only if its state is unseen or its path
// cost strictly improves on the best known. Stale frontier entries are not
// repaired or removed when a cheaper path supersedes them; they may still
// be taken and expanded later, but their children then fail the
// improvement test, so only provably improving duplicates propagate.
//
// The result is cost-optimal iff f never overestimates the true cost to a
// goal for any path still in the frontier. Returns the failure node if the
// frontier empties without a goal.
func BestFirst[S comparable, A any](p core.Problem[S, A], f Score[S, A]) *core.Node[S, A] {
	root := core.Root[S, A](p.Initial())

	open := frontier.NewPriority[*core.Node[S, A]](f)
	open.Put(root)

	reached := map[S]*core.Node[S, A]{root.State: root}

	for open.Len() > 0 {
		node := open.Take()
		if p.IsGoal(node.State) {
			return node
		}

		for child := range core.Expand(p, node) {
			if best, seen := reached[child.State]; seen && child.PathCost >= best.PathCost {
				continue
			}
			reached[child.State] = child
			open.Put(child)
		}
	}

	return core.FailureNode[S, A]()
}

// UniformCost is BestFirst scored by path cost alone. It returns a
// cheapest-path node for any problem with non-negative step costs.
func UniformCost[S comparable, A any](p core.Problem[S, A]) *core.Node[S, A] {
	return BestFirst(p, func(n *core.Node[S, A]) float64 { return n.PathCost })
}

// AStarOptions configures AStar.
type AStarOptions[S comparable, A any] struct {
	// Heuristic overrides the problem's own Heuristic method. Leave nil
	// to use the problem's, which defaults to 0 and degrades AStar to
	// UniformCost.
	Heuristic Score[S, A]
}

// AStar is BestFirst scored by path cost plus heuristic. With an admissible
// and consistent heuristic it returns a node of the same path cost as
// UniformCost while expanding no more nodes.
func AStar[S comparable, A any](p core.Problem[S, A], optFns ...func(o *AStarOptions[S, A])) *core.Node[S, A] {
	opts := AStarOptions[S, A]{}
	for _, fn := range optFns {
		fn(&opts)
	}

	h := opts.Heuristic
	if h == nil {
		h = p.Heuristic
	}

	return BestFirst(p, func(n *core.Node[S, A]) float64 { return n.PathCost + h(n) })
}
