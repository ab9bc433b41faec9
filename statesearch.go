// Package statesearch provides a high-level façade over the core search
// engine and its collaborators (frontiers, instrumentation, reporting &
// logging) enabling quick experimentation with state-space problems. Most
// applications interact with this package by:
//  1. Implementing core.Problem for their domain (or embedding core.Base)
//  2. Calling Run with an algorithm name, or one of the search package's
//     procedures directly
//  3. Reconstructing the solution path from the returned node
//
// The façade delegates the actual searching to the search package while
// adding run IDs, timing and structured logging around each invocation. All
// defaults are safe for local development and testing.
package statesearch

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/statesearch/core"
	"github.com/hupe1980/statesearch/instrument"
	"github.com/hupe1980/statesearch/logging"
	"github.com/hupe1980/statesearch/search"
)

// Algorithm names accepted by Run.
const (
	AlgorithmBreadthFirst       = "breadth-first"
	AlgorithmDepthLimited       = "depth-limited"
	AlgorithmIterativeDeepening = "iterative-deepening"
	AlgorithmUniformCost        = "uniform-cost"
	AlgorithmAStar              = "a-star"
)

// Algorithms lists the names Run accepts. The generic best-first procedure
// is absent: it needs a scoring function and is called directly via
// search.BestFirst.
func Algorithms() []string {
	return []string{
		AlgorithmBreadthFirst,
		AlgorithmDepthLimited,
		AlgorithmIterativeDeepening,
		AlgorithmUniformCost,
		AlgorithmAStar,
	}
}

// Options configures a Run invocation.
type Options struct {
	// DepthLimit bounds depth-limited search. Defaults to
	// search.DefaultDepthLimit.
	DepthLimit int

	// MaxDepth caps iterative deepening. 0 leaves it unbounded, in which
	// case an unsolvable infinite state space never terminates.
	MaxDepth int

	// Logger receives one structured entry per run. Defaults to the NoOp
	// logger.
	Logger logging.Logger
}

// Run executes the named algorithm against the problem behind a counting
// wrapper, logging the outcome, expansion count and duration under a fresh
// run ID. An unknown algorithm name is an error; a search that finds no
// solution is not an error, inspect the returned node's Failure and Cutoff
// predicates instead.
func Run[S comparable, A any](p core.Problem[S, A], algorithm string, optFns ...func(o *Options)) (*core.Node[S, A], error) {
	opts := Options{
		DepthLimit: search.DefaultDepthLimit,
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	counting := instrument.NewCounting(p)

	var run func() *core.Node[S, A]
	switch algorithm {
	case AlgorithmBreadthFirst:
		run = func() *core.Node[S, A] { return search.BreadthFirst[S, A](counting) }
	case AlgorithmDepthLimited:
		run = func() *core.Node[S, A] { return search.DepthLimited[S, A](counting, opts.DepthLimit) }
	case AlgorithmIterativeDeepening:
		run = func() *core.Node[S, A] {
			return search.IterativeDeepening[S, A](counting, func(o *search.IterativeDeepeningOptions) {
				o.MaxDepth = opts.MaxDepth
			})
		}
	case AlgorithmUniformCost:
		run = func() *core.Node[S, A] { return search.UniformCost[S, A](counting) }
	case AlgorithmAStar:
		run = func() *core.Node[S, A] { return search.AStar[S, A](counting) }
	default:
		return nil, fmt.Errorf("statesearch: unknown algorithm %q", algorithm)
	}

	runID := uuid.NewString()
	start := time.Now()
	node := run()
	dur := time.Since(start)

	outcome := "solved"
	switch {
	case node.Failure():
		outcome = "failure"
	case node.Cutoff():
		outcome = "cutoff"
	}

	opts.Logger.Info("search completed",
		"run_id", runID,
		"algorithm", algorithm,
		"outcome", outcome,
		"expanded", counting.Expansions(),
		"duration", dur,
	)

	return node, nil
}
