// Package search implements six canonical state-space search procedures on
// top of the core node model and the frontier disciplines:
//
//   - BreadthFirst: FIFO frontier, visited-state set, minimal action count
//     under unit step costs.
//   - DepthLimited: LIFO frontier bounded by depth, distinguishing cutoff
//     from definitive failure.
//   - IterativeDeepening: repeated DepthLimited calls with growing limits.
//   - BestFirst: priority frontier ordered by a caller-supplied score,
//     graph search with reopening through a reached map.
//   - UniformCost: BestFirst scored by path cost; optimal for non-negative
//     step costs.
//   - AStar: BestFirst scored by path cost plus heuristic; optimal for
//     admissible, consistent heuristics.
//
// Every procedure returns a *core.Node. Negative results are the tagged
// failure and cutoff nodes (see core.FailureNode and core.CutoffNode), not
// errors: both are expected outcomes of a well-posed search.
//
// All procedures are synchronous and single-threaded; their frontier and
// bookkeeping state is local to one call.
package search
