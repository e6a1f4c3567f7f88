package coloring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vkolor/chromab/coloring"
	"github.com/vkolor/chromab/core"
	"github.com/vkolor/chromab/csr"
)

func build(t *testing.T, n int, edges [][2]int) *csr.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(i)
		require.NoError(t, g.AddVertex(ids[i]))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]), "edge %v", e)
	}
	cg, err := csr.Build(g)
	require.NoError(t, err)

	return cg
}

func vertexID(i int) string {
	return string(rune('a' + i))
}

func complete(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}

func cycle(n int) [][2]int {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}

	return edges
}

func bipartiteComplete(m, k int) [][2]int {
	var edges [][2]int
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			edges = append(edges, [2]int{i, m + j})
		}
	}

	return edges
}

func petersen() (int, [][2]int) {
	outer := cycle(5)
	var edges [][2]int
	edges = append(edges, outer...)
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{5 + i, 5 + (i+2)%5})
	}
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, 5 + i})
	}

	return 10, edges
}

func assertOptimal(t *testing.T, g *csr.Graph, strategy coloring.Strategy, wantK int) coloring.Result {
	t.Helper()
	res, err := coloring.Solve(g, coloring.Options{Strategy: strategy})
	require.NoError(t, err)
	require.True(t, res.Optimal, "Solve: got Optimal=false, want true")
	require.Equal(t, wantK, res.K)
	validateColoring(t, g, res)

	return res
}

// validateColoring checks every edge endpoint differs in color and every
// vertex in [0, g.N) has a color in [0, res.K) — the defining correctness
// property of any coloring Solve returns, independent of optimality.
func validateColoring(t *testing.T, g *csr.Graph, res coloring.Result) {
	t.Helper()
	require.Len(t, res.Coloring, g.N)
	for v := 0; v < g.N; v++ {
		c := res.Coloring[v]
		require.True(t, c >= 0 && c < res.K, "Coloring[%d] = %d out of range [0, %d)", v, c, res.K)
		for _, w := range g.Neighbors(v) {
			if w > v {
				require.NotEqual(t, c, res.Coloring[w], "edge (%d,%d) both colored %d", v, w, c)
			}
		}
	}
}

func TestSolveEmptyGraph(t *testing.T) {
	g := build(t, 0, nil)
	res, err := coloring.Solve(g, coloring.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, res.K)
	require.True(t, res.Optimal)
}

func TestSolveK5(t *testing.T) {
	g := build(t, 5, complete(5))
	for _, strat := range []coloring.Strategy{coloring.StrategySewell, coloring.StrategyFurini} {
		assertOptimal(t, g, strat, 5)
	}
}

func TestSolveC5(t *testing.T) {
	g := build(t, 5, cycle(5))
	for _, strat := range []coloring.Strategy{coloring.StrategySewell, coloring.StrategyFurini} {
		res := assertOptimal(t, g, strat, 3)
		// C5 is triangle-free (clique number 2) but has chromatic number 3:
		// the initial greedy-clique LB never reaches K, so Optimal must come
		// from exhaustion, not from InitialLB == K.
		require.Less(t, res.InitialLB, res.K, strat)
	}
}

func TestSolveK33(t *testing.T) {
	g := build(t, 6, bipartiteComplete(3, 3))
	for _, strat := range []coloring.Strategy{coloring.StrategySewell, coloring.StrategyFurini} {
		assertOptimal(t, g, strat, 2)
	}
}

func TestSolvePetersen(t *testing.T) {
	n, edges := petersen()
	g := build(t, n, edges)
	for _, strat := range []coloring.Strategy{coloring.StrategySewell, coloring.StrategyFurini} {
		assertOptimal(t, g, strat, 3)
	}
}

// TestStrategiesAgree checks both strategies find the same chromatic
// number on a handful of small graphs, and that Furini never visits more
// nodes than Sewell (the reduced-graph bound only adds pruning power, it
// never removes any).
func TestStrategiesAgree(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"K5", 5, complete(5)},
		{"C5", 5, cycle(5)},
		{"K33", 6, bipartiteComplete(3, 3)},
	}
	for _, tc := range cases {
		g := build(t, tc.n, tc.edges)
		sewellRes, err := coloring.Solve(g, coloring.Options{Strategy: coloring.StrategySewell})
		require.NoError(t, err, tc.name)
		furiniRes, err := coloring.Solve(g, coloring.Options{Strategy: coloring.StrategyFurini})
		require.NoError(t, err, tc.name)
		require.Equal(t, sewellRes.K, furiniRes.K, tc.name)
		require.LessOrEqual(t, furiniRes.NodesVisited, sewellRes.NodesVisited, tc.name)
	}
}

func TestSolveRejectsNilGraph(t *testing.T) {
	_, err := coloring.Solve(nil, coloring.Options{})
	require.ErrorIs(t, err, coloring.ErrNilGraph)
}

func TestSolveRejectsNegativeTimeLimit(t *testing.T) {
	g := build(t, 1, nil)
	_, err := coloring.Solve(g, coloring.Options{TimeLimit: -1})
	require.ErrorIs(t, err, coloring.ErrNegativeTimeLimit)
}

func TestSolveRejectsUnknownStrategy(t *testing.T) {
	g := build(t, 1, nil)
	_, err := coloring.Solve(g, coloring.Options{Strategy: coloring.Strategy(99)})
	require.ErrorIs(t, err, coloring.ErrUnknownStrategy)
}

// TestSolveDeterministic checks repeated Solve calls on the same graph and
// strategy produce identical K, Coloring, NodesVisited and BranchesCut.
func TestSolveDeterministic(t *testing.T) {
	g := build(t, 5, cycle(5))
	first, err := coloring.Solve(g, coloring.Options{Strategy: coloring.StrategyFurini})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := coloring.Solve(g, coloring.Options{Strategy: coloring.StrategyFurini})
		require.NoError(t, err)
		require.Equal(t, first.K, again.K, "run %d", i)
		require.Equal(t, first.NodesVisited, again.NodesVisited, "run %d", i)
		require.Equal(t, first.BranchesCut, again.BranchesCut, "run %d", i)
		require.Equal(t, first.Coloring, again.Coloring, "run %d", i)
	}
}

// TestProgressCallback checks a progress callback is always invoked at
// least once for a non-trivial search.
func TestProgressCallback(t *testing.T) {
	g := build(t, 6, bipartiteComplete(3, 3))
	calls := 0
	_, err := coloring.Solve(g, coloring.Options{
		Strategy: coloring.StrategyFurini,
		Progress: func(nodesVisited int64, ub, lb int, elapsed time.Duration, branchesCut int64) {
			calls++
		},
	})
	require.NoError(t, err)
	require.Greater(t, calls, 0, "progress callback never invoked")
}
