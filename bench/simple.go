package bench

import (
	"fmt"

	"github.com/vkolor/chromab/core"
)

// buildVertices inserts n vertices named via cfg.idFn and returns their IDs
// in index order, the shared first step of every fixed-family generator
// below.
func buildVertices(g *core.Graph, n int, cfg config) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("bench: AddVertex(%s): %w", ids[i], err)
		}
	}

	return ids, nil
}

// Complete returns the complete graph K_n: every pair of distinct vertices
// adjacent. chi(K_n) = n.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[j], err)
			}
		}
	}

	return g, nil
}

// Cycle returns the cycle graph C_n: vertices arranged in a ring. For n >= 3,
// chi(C_n) = 2 if n is even, 3 if n is odd. n == 1 returns a single isolated
// vertex; n == 2 returns two vertices joined by one edge (a multigraph
// double-edge between them is not representable in a simple graph, so C_2
// degenerates to a path of length 1).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	edges := n
	if n < 3 {
		edges = n - 1
	}
	for i := 0; i < edges; i++ {
		if err := g.AddEdge(ids[i], ids[(i+1)%n]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[(i+1)%n], err)
		}
	}

	return g, nil
}

// Path returns the path graph P_n: vertices 0..n-1 joined in a line. chi(P_n)
// = 1 for n == 1, else 2.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(ids[i], ids[i+1]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[i+1], err)
		}
	}

	return g, nil
}

// Star returns the star graph with one hub (index 0) joined to n-1 leaves.
// chi = 1 if n == 1, else 2.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(ids[0], ids[i]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[0], ids[i], err)
		}
	}

	return g, nil
}

// Wheel returns the wheel graph W_n: a hub (index 0) joined to every vertex
// of an (n-1)-cycle (indices 1..n-1). chi(W_n) = 4 when the rim length is
// odd, 3 when it is even; n must be at least 4 (a 3-cycle rim).
func Wheel(n int, opts ...Option) (*core.Graph, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: n=%d, wheel needs at least 4", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	rim := n - 1
	for i := 0; i < rim; i++ {
		a, b := ids[1+i], ids[1+(i+1)%rim]
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", a, b, err)
		}
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(ids[0], ids[i]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[0], ids[i], err)
		}
	}

	return g, nil
}

// Bipartite returns the complete bipartite graph K_{m,k}: m vertices in one
// part (indices 0..m-1), k in the other (indices m..m+k-1), every
// cross-part pair adjacent. chi(K_{m,k}) = 1 if m == 0 or k == 0, else 2.
func Bipartite(m, k int, opts ...Option) (*core.Graph, error) {
	if m < 0 || k < 0 {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrTooFewVertices, m, k)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, m+k, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			if err := g.AddEdge(ids[i], ids[m+j]); err != nil {
				return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[m+j], err)
			}
		}
	}

	return g, nil
}

// Petersen returns the Petersen graph: the classic 10-vertex, 3-regular,
// girth-5 graph with chi = 3. An outer 5-cycle (indices 0..4), an inner
// 5-cycle connected as a pentagram (indices 5..9, each i joined to i+2 mod
// 5), and spokes joining each outer vertex to its corresponding inner one.
func Petersen(opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, 10, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(ids[i], ids[(i+1)%5]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[(i+1)%5], err)
		}
	}
	for i := 0; i < 5; i++ {
		a, b := ids[5+i], ids[5+(i+2)%5]
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", a, b, err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(ids[i], ids[5+i]); err != nil {
			return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[5+i], err)
		}
	}

	return g, nil
}
