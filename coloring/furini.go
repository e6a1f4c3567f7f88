package coloring

import "sort"

// furiniScratch holds buffers reused across every lbReduced call within one
// Solve invocation, so the per-node lower bound computation performs no
// heap allocation.
// All slices are sized from the graph's vertex count n (n*n for the two
// matrices, 2n for the per-node buffers) and sliced down to the size
// actually needed on each call.
type furiniScratch struct {
	n int

	// sees is a flat [color * numUncolored + uncoloredIndex] boolean
	// matrix: sees[c*numUncolored+i] is true iff uncolored[i] has c in its
	// cset, i.e. uncolored[i] is adjacent to some vertex currently colored
	// c. Only the first (numColors * numUncolored) entries are meaningful
	// on a given call.
	sees []bool

	// superAdj is a flat [numColors * numColors] boolean matrix: s_c -- s_d
	// iff some uncolored vertex is adjacent to both color class c and d,
	// i.e. sees[c] and sees[d] overlap. Only the first (numColors *
	// numColors) entries are meaningful on a given call.
	superAdj []bool

	uncolored []int // scratch list of currently-uncolored vertex indices

	// nodeDeg and order describe the reduced graph R: node indices
	// [0, numColors) are super-nodes (one per color class in use), the
	// rest are the uncolored vertices, in the order collected into
	// `uncolored`.
	nodeDeg []int
	order   []int
	clique  []int
}

// newFuriniScratch allocates scratch sized for a graph of n vertices.
func newFuriniScratch(n int) *furiniScratch {
	return &furiniScratch{
		n:         n,
		sees:      make([]bool, n*n),
		superAdj:  make([]bool, n*n),
		uncolored: make([]int, 0, n),
		nodeDeg:   make([]int, 2*n),
		order:     make([]int, 2*n),
		clique:    make([]int, 0, 2*n),
	}
}

// lbReduced computes the Furini/Gabrel/Ternier (2017) reduced-graph lower
// bound at the current search node for a partial coloring using numColors
// colors. It builds an auxiliary graph R with one super-node per color
// class currently in use plus one node per uncolored vertex:
//
//   - s_c -- s_d iff some uncolored vertex sees both color c and color d
//     (i.e. cset[u] contains both c and d for some uncolored u);
//   - s_c -- u   iff uncolored vertex u has c in its cset;
//   - u   -- w   iff u and w are adjacent in g.
//
// Every clique in R corresponds to a set of mutually-incompatible color
// classes/vertices, so a greedy clique-number approximation of R is a valid
// lower bound on how many colors the remaining coloring must still use.
//
// Complexity: O(numColors^2 * numUncolored + total^2) dominated by the
// super-super overlap pass and the greedy clique pass over R.
func lbReduced(s *state, numColors int) int {
	sc := s.furini
	g := s.g
	n := sc.n

	sc.uncolored = sc.uncolored[:0]
	for v := 0; v < n; v++ {
		if s.color[v] == uncoloredMark {
			sc.uncolored = append(sc.uncolored, v)
		}
	}
	numUncolored := len(sc.uncolored)
	if numUncolored == 0 {
		return numColors
	}

	for i := range sc.sees[:numColors*numUncolored] {
		sc.sees[i] = false
	}
	for i, u := range sc.uncolored {
		cs := s.cset[u]
		for cs != 0 {
			c, _ := cs.Lowest()
			cs = cs.Remove(c)
			if c < numColors {
				sc.sees[c*numUncolored+i] = true
			}
		}
	}

	for i := range sc.superAdj[:numColors*numColors] {
		sc.superAdj[i] = false
	}
	for c := 0; c < numColors; c++ {
		for d := c + 1; d < numColors; d++ {
			overlap := false
			for i := 0; i < numUncolored && !overlap; i++ {
				if sc.sees[c*numUncolored+i] && sc.sees[d*numUncolored+i] {
					overlap = true
				}
			}
			if overlap {
				sc.superAdj[c*numColors+d] = true
				sc.superAdj[d*numColors+c] = true
			}
		}
	}

	total := numColors + numUncolored

	// adjacency predicate over R's node indices: [0, numColors) are color
	// classes, [numColors, total) map to sc.uncolored[i-numColors].
	adjacent := func(a, b int) bool {
		switch {
		case a < numColors && b < numColors:
			return sc.superAdj[a*numColors+b]
		case a < numColors:
			return sc.sees[a*numUncolored+(b-numColors)]
		case b < numColors:
			return sc.sees[b*numUncolored+(a-numColors)]
		default:
			return g.Has(sc.uncolored[a-numColors], sc.uncolored[b-numColors])
		}
	}

	degree := func(a int) int {
		d := 0
		for b := 0; b < total; b++ {
			if b != a && adjacent(a, b) {
				d++
			}
		}
		return d
	}

	order := sc.order[:total]
	for i := 0; i < total; i++ {
		order[i] = i
	}
	deg := sc.nodeDeg[:total]
	for i := 0; i < total; i++ {
		deg[i] = degree(i)
	}
	sort.Slice(order, func(i, j int) bool { return deg[order[i]] > deg[order[j]] })

	clique := sc.clique[:0]
	for _, v := range order {
		fits := true
		for _, u := range clique {
			if !adjacent(v, u) {
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

// solveFurini runs the DSATUR branch-and-bound search augmented with the
// reduced-graph lower bound recomputed at every node.
func solveFurini(s *state) {
	exploreFurini(s, 0, 0)
}

// exploreFurini mirrors exploreSewell's recursion shape but selects the
// branching vertex by plain DSATUR and additionally prunes with a fresh
// lbReduced bound on every node, on top of the trivial k >= UB-1 bound both
// strategies share.
func exploreFurini(s *state, depth, k int) {
	if s.deadlineExceeded() {
		s.timedOut = true
		return
	}

	s.nodesVisited++
	s.maybeNotify()

	if depth == s.g.N {
		s.commitLeaf(k)
		return
	}

	if k >= s.ub-1 {
		s.branchesCut++
		return
	}

	if lbReduced(s, k) >= s.ub {
		s.branchesCut++
		return
	}

	v := s.selectDSATUR()
	if v == -1 {
		return
	}

	limit := k + 1
	if s.ub-1 < limit {
		limit = s.ub - 1
	}
	for c := 0; c < limit; c++ {
		if s.cset[v].Has(c) {
			continue
		}
		newK := k
		if c+1 > newK {
			newK = c + 1
		}
		if newK >= s.ub {
			continue
		}

		s.assign(v, c)
		exploreFurini(s, depth+1, newK)
		s.unassign(v, c)

		if s.timedOut || s.ub == s.lb {
			return
		}
	}
}
