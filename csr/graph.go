package csr

import (
	"errors"
	"sort"

	"github.com/vkolor/chromab/core"
)

// ErrNilGraph indicates Build was called with a nil *core.Graph.
var ErrNilGraph = errors.New("csr: graph is nil")

// Graph is an immutable, compressed-sparse-row adjacency structure: N
// vertices indexed 0..N-1, with each vertex's sorted neighbor list stored
// contiguously in Adj[Start[v] : Start[v]+Deg[v]].
//
// Labels maps index -> the core.Vertex ID it was built from, so callers can
// translate a coloring.Result.Coloring back into the caller's own vertex
// identifiers. Index is the inverse of Labels.
type Graph struct {
	N      int
	Adj    []int
	Start  []int
	Deg    []int
	Labels []string
	Index  map[string]int
}

// Build snapshots g (under its read locks) into a Graph. Vertices are
// indexed in g.Vertices() order (stable insertion order).
//
// Complexity: O(V + E log(E/V)) for the per-vertex neighbor sort.
func Build(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels := g.Vertices()
	n := len(labels)
	index := make(map[string]int, n)
	for i, id := range labels {
		index[id] = i
	}

	deg := make([]int, n)
	neighbors := make([][]int, n)
	for i, id := range labels {
		nbrIDs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		row := make([]int, len(nbrIDs))
		for j, nbrID := range nbrIDs {
			row[j] = index[nbrID]
		}
		sort.Ints(row)
		neighbors[i] = row
		deg[i] = len(row)
	}

	start := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		start[i] = total
		total += deg[i]
	}

	adj := make([]int, total)
	for i := 0; i < n; i++ {
		copy(adj[start[i]:start[i]+deg[i]], neighbors[i])
	}

	return &Graph{
		N:      n,
		Adj:    adj,
		Start:  start,
		Deg:    deg,
		Labels: labels,
		Index:  index,
	}, nil
}

// Has reports whether t is a neighbor of v, via binary search over v's
// sorted adjacency slice.
//
// Complexity: O(log deg(v)).
func (g *Graph) Has(v, t int) bool {
	row := g.Adj[g.Start[v] : g.Start[v]+g.Deg[v]]
	lo, hi := 0, len(row)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		switch {
		case row[mid] == t:
			return true
		case row[mid] < t:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return false
}

// Neighbors returns the sorted neighbor-index slice of v. The returned
// slice aliases g.Adj and must not be mutated.
func (g *Graph) Neighbors(v int) []int {
	return g.Adj[g.Start[v] : g.Start[v]+g.Deg[v]]
}
