package coloring

import (
	"time"

	"github.com/vkolor/chromab/bitset"
	"github.com/vkolor/chromab/csr"
)

// uncoloredMark is the sentinel color value meaning "not yet assigned".
const uncoloredMark = -1

// state is the shared B&B search context: the partial coloring plus the
// bookkeeping both strategies need. It is allocated once per Solve call and
// mutated in place by assign/unassign; nothing here is reallocated inside
// the recursion: a single owned struct rather than closures over loop
// variables.
type state struct {
	g *csr.Graph

	color []int        // color[v] in {-1} U [0, 63); -1 = uncolored
	cset  []bitset.Set // cset[v] = colors seen on colored neighbors of v (meaningful only while uncolored)
	dsat  []int        // dsat[v] = cset[v].Count(), cached for O(1) selection

	ub        int // current best coloring size found so far
	lb        int // initial lower bound (greedy clique); fixed for the life of the search
	bestColor []int

	nodesVisited int64
	branchesCut  int64

	start    time.Time
	deadline time.Time
	useClock bool
	timedOut bool

	progress ProgressFunc

	// furini holds scratch reused across lbReduced calls, hoisted here to
	// avoid per-node allocation. Nil when the Sewell strategy is in use.
	furini *furiniScratch
}

// newState allocates search state for a graph of n vertices.
func newState(g *csr.Graph, opts Options) *state {
	n := g.N
	s := &state{
		g:         g,
		color:     make([]int, n),
		cset:      make([]bitset.Set, n),
		dsat:      make([]int, n),
		bestColor: make([]int, n),
		progress:  opts.Progress,
	}
	for v := 0; v < n; v++ {
		s.color[v] = uncoloredMark
	}
	if opts.TimeLimit > 0 {
		s.useClock = true
		s.start = time.Now()
		s.deadline = s.start.Add(opts.TimeLimit)
	} else {
		s.start = time.Now()
	}

	return s
}

// deadlineExceeded reports whether the wall-clock budget has been used up.
// Called once per recursion node entry; cheap enough that no sparser
// sampling is needed despite the higher per-node cost of each B&B step.
func (s *state) deadlineExceeded() bool {
	if !s.useClock {
		return false
	}

	return time.Now().After(s.deadline)
}

// maybeNotify fires the progress callback on the first node and then every
// progressInterval nodes, per the ProgressFunc contract in types.go.
func (s *state) maybeNotify() {
	if s.progress == nil {
		return
	}
	if s.nodesVisited == 1 || s.nodesVisited%progressInterval == 0 {
		s.progress(s.nodesVisited, s.ub, s.lb, time.Since(s.start), s.branchesCut)
	}
}

// assign colors vertex v with c and incrementally updates the saturation of
// v's uncolored neighbors.
//
// Complexity: O(deg(v)).
func (s *state) assign(v, c int) {
	s.color[v] = c
	for _, w := range s.g.Neighbors(v) {
		if s.color[w] != uncoloredMark {
			continue
		}
		if !s.cset[w].Has(c) {
			s.cset[w] = s.cset[w].Add(c)
			s.dsat[w]++
		}
	}
}

// unassign is the exact inverse of assign: it uncolors v and, for each
// uncolored neighbor w that saw color c only through v, removes c from
// cset[w]. The O(deg(w)) rescan is required because c may still be induced
// on w by a second colored neighbor — this is what makes unassign more
// than "undo the bits assign flipped".
//
// Complexity: O(deg(v) * max deg(w)) in the worst case, O(deg(v)) typically.
func (s *state) unassign(v, c int) {
	s.color[v] = uncoloredMark
	for _, w := range s.g.Neighbors(v) {
		if s.color[w] != uncoloredMark {
			continue
		}
		if !s.cset[w].Has(c) {
			continue
		}
		stillSeen := false
		for _, x := range s.g.Neighbors(w) {
			if x != v && s.color[x] == c {
				stillSeen = true
				break
			}
		}
		if !stillSeen {
			s.cset[w] = s.cset[w].Remove(c)
			s.dsat[w]--
		}
	}
}

// selectDSATUR picks the uncolored vertex with maximum dsat, breaking ties
// by maximum degree, with no further tie-break. Used by the Furini strategy;
// selectSewell computes the same first two passes itself before its own
// third pass.
//
// Complexity: O(n).
func (s *state) selectDSATUR() int {
	best := -1
	for v := 0; v < s.g.N; v++ {
		if s.color[v] != uncoloredMark {
			continue
		}
		if best == -1 {
			best = v
			continue
		}
		if s.dsat[v] > s.dsat[best] || (s.dsat[v] == s.dsat[best] && s.g.Deg[v] > s.g.Deg[best]) {
			best = v
		}
	}

	return best
}

// commitLeaf records a new incumbent when a complete coloring using k
// colors beats the current UB.
func (s *state) commitLeaf(k int) {
	if k < s.ub {
		s.ub = k
		copy(s.bestColor, s.color)
	}
}
