package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreedyCliqueOnK5(t *testing.T) {
	g := build(t, 5, complete(5))
	// greedyClique is unexported; exercised indirectly through Solve's
	// InitialLB, which on a complete graph must equal n exactly.
	res := assertOptimal(t, g, 0, 5)
	require.Equal(t, 5, res.InitialLB)
}

func TestDsaturUpperBoundOnBipartite(t *testing.T) {
	g := build(t, 6, bipartiteComplete(3, 3))
	res := assertOptimal(t, g, 0, 2)
	require.GreaterOrEqual(t, res.InitialUB, res.K)
}
