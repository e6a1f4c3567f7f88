package coloring

import (
	"sort"

	"github.com/vkolor/chromab/bitset"
	"github.com/vkolor/chromab/csr"
)

// greedyClique builds the initial lower bound: a greedy maximum-clique
// approximation. Vertices are tried in descending-degree order; a candidate
// joins the growing clique iff it is adjacent to every member already in it.
// The result is a valid (if not necessarily tight) lower bound on χ(G)
// because every vertex in a clique needs a distinct color.
//
// Complexity: O(n log n + n * k) where k is the clique size found.
func greedyClique(g *csr.Graph) int {
	if g.N == 0 {
		return 0
	}

	order := make([]int, g.N)
	for v := range order {
		order[v] = v
	}
	sort.SliceStable(order, func(i, j int) bool { return g.Deg[order[i]] > g.Deg[order[j]] })

	clique := make([]int, 0, g.N)
	for _, v := range order {
		fits := true
		for _, u := range clique {
			if !g.Has(v, u) {
				fits = false
				break
			}
		}
		if fits {
			clique = append(clique, v)
		}
	}

	return len(clique)
}

// dsatur computes the DSATUR heuristic coloring of g, writing each vertex's
// color into outColoring (which must have length g.N), and returns the
// number of colors used. This seeds the search's initial upper bound and
// incumbent coloring; neither strategy takes its branching order from it.
//
// At each step the uncolored vertex with maximum saturation degree is
// selected, ties broken by maximum plain degree, ties broken by lowest
// index — matching the original DSATUR tie-break, distinct from the
// multi-pass Sewell selection used mid-search.
//
// Complexity: O(n^2) in the worst case — no priority-queue acceleration,
// favoring simple, auditable loops over micro-optimized data structures
// at this graph scale.
func dsatur(g *csr.Graph, outColoring []int) int {
	n := g.N
	colored := make([]bool, n)
	cset := make([]bitset.Set, n)
	dsat := make([]int, n)
	for v := range outColoring {
		outColoring[v] = uncoloredMark
	}

	maxColor := 0
	for remaining := n; remaining > 0; remaining-- {
		best := -1
		for v := 0; v < n; v++ {
			if colored[v] {
				continue
			}
			if best == -1 {
				best = v
				continue
			}
			if dsat[v] > dsat[best] || (dsat[v] == dsat[best] && g.Deg[v] > g.Deg[best]) {
				best = v
			}
		}

		used := bitset.Set(0)
		for _, u := range g.Neighbors(best) {
			if colored[u] {
				used = used.Add(outColoring[u])
			}
		}
		c := 0
		for used.Has(c) {
			c++
		}

		outColoring[best] = c
		colored[best] = true
		if c+1 > maxColor {
			maxColor = c + 1
		}

		for _, w := range g.Neighbors(best) {
			if colored[w] {
				continue
			}
			if !cset[w].Has(c) {
				cset[w] = cset[w].Add(c)
				dsat[w]++
			}
		}
	}

	return maxColor
}
