package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkolor/chromab/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.ErrorIs(t, g.AddVertex("a"), core.ErrDuplicateVertex)
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}

	require.ErrorIs(t, g.AddEdge("a", "a"), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("a", "z"), core.ErrUnknownVertex)
	require.NoError(t, g.AddEdge("a", "b"))
	require.ErrorIs(t, g.AddEdge("b", "a"), core.ErrDuplicateEdge)
	require.True(t, g.HasEdge("a", "b") && g.HasEdge("b", "a"), "edge a-b should be visible from both endpoints")
	require.Equal(t, 1, g.EdgeCount())
}

func TestNeighborsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b", "d"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "d"))

	got, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "d"}, got)

	_, err = g.Neighbors("nope")
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))

	clone := g.Clone()
	require.NoError(t, clone.AddVertex("c"))
	require.NoError(t, clone.AddEdge("a", "c"))

	require.False(t, g.HasVertex("c"), "mutating the clone must not affect the original")
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, clone.EdgeCount())
}

func TestStats(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	stats := g.Stats()
	require.Equal(t, core.GraphStats{VertexCount: 3, EdgeCount: 2}, stats)
}
