package statesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statesearch/problems"
	"github.com/hupe1980/statesearch/search"
)

func TestRunByName(t *testing.T) {
	links, locations := problems.Romania()

	for _, name := range Algorithms() {
		p := problems.NewRoute(links, locations, "A", "B")

		node, err := Run[string, string](p, name)

		require.NoError(t, err, name)
		require.True(t, node.Solved(), name)
		assert.Equal(t, "B", node.State, name)
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	links, locations := problems.Romania()
	p := problems.NewRoute(links, locations, "A", "B")

	node, err := Run[string, string](p, "simulated-annealing")

	assert.Nil(t, node)
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestRunDepthLimitOption(t *testing.T) {
	links, locations := problems.Romania()
	p := problems.NewRoute(links, locations, "A", "B")

	node, err := Run[string, string](p, AlgorithmDepthLimited, func(o *Options) {
		o.DepthLimit = 1
	})

	require.NoError(t, err)
	assert.True(t, node.Cutoff())
}

func TestRunMaxDepthOption(t *testing.T) {
	// An unreachable goal on a cyclic graph: uncapped iterative deepening
	// would never terminate, the cap turns it into a cutoff.
	links, locations := problems.Romania()
	p := problems.NewRoute(links, locations, "A", "missing")

	node, err := Run[string, string](p, AlgorithmIterativeDeepening, func(o *Options) {
		o.MaxDepth = 3
	})

	require.NoError(t, err)
	assert.True(t, node.Cutoff())
}

func TestDefaultDepthLimitApplied(t *testing.T) {
	// The map's diameter is below the default limit, so the by-name run
	// matches the direct call.
	links, locations := problems.Romania()
	p := problems.NewRoute(links, locations, "A", "B")

	node, err := Run[string, string](p, AlgorithmDepthLimited)

	require.NoError(t, err)
	direct := search.DepthLimited[string, string](problems.NewRoute(links, locations, "A", "B"), search.DefaultDepthLimit)
	assert.Equal(t, direct.PathStates(), node.PathStates())
}
