package search

import (
	"github.com/hupe1980/statesearch/core"
	"github.com/hupe1980/statesearch/frontier"
)

// DefaultDepthLimit is the bound the statesearch facade applies when no
// explicit limit is configured.
const DefaultDepthLimit = 10

// DepthLimited explores the state space deepest-first, truncating every
// branch deeper than limit. It is a tree search: no visited tracking, so
// the same state may be re-explored via different paths.
//
// Children are goal-tested at generation time and returned without being
// queued. A node deeper than the limit records cutoff as the fallback
// result but does not halt sibling branches already queued. When the
// frontier empties the fallback is returned: the cutoff node if any branch
// was truncated, otherwise the failure node, which proves the whole
// depth-limit tree goal-free.
func DepthLimited[S comparable, A any](p core.Problem[S, A], limit int) *core.Node[S, A] {
	root := core.Root[S, A](p.Initial())
	if p.IsGoal(root.State) {
		return root
	}

	open := frontier.NewLIFO[*core.Node[S, A]]()
	open.Put(root)

	result := core.FailureNode[S, A]()

	for open.Len() > 0 {
		node := open.Take()

		if node.Depth() > limit {
			result = core.CutoffNode[S, A]()
			continue
		}

		for child := range core.Expand(p, node) {
			if p.IsGoal(child.State) {
				return child
			}
			open.Put(child)
		}
	}

	return result
}

// IterativeDeepeningOptions configures IterativeDeepening.
type IterativeDeepeningOptions struct {
	// MaxDepth caps the largest depth limit that will be tried. 0 means
	// unbounded, in which case an infinite or unsolvable state space that
	// keeps producing cutoffs makes the search run forever; callers
	// needing a guarantee set a cap or wrap the call with a timeout.
	MaxDepth int
}

// IterativeDeepening runs DepthLimited with limits 1, 2, 3, ... and returns
// the first result that is not cutoff, either a solution or a definitive
// failure. With a MaxDepth cap it returns the cutoff node once the cap is
// exhausted.
//
// Memory stays bounded by the deepest iteration while the solution depth
// matches BreadthFirst under unit step costs.
func IterativeDeepening[S comparable, A any](p core.Problem[S, A], optFns ...func(o *IterativeDeepeningOptions)) *core.Node[S, A] {
	opts := IterativeDeepeningOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	for limit := 1; opts.MaxDepth == 0 || limit <= opts.MaxDepth; limit++ {
		result := DepthLimited(p, limit)
		if !result.Cutoff() {
			return result
		}
	}

	return core.CutoffNode[S, A]()
}
