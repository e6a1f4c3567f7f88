package coloring

import (
	"time"

	"github.com/vkolor/chromab/csr"
)

// Solve computes the chromatic number of g and a witness coloring, using
// the strategy and limits named by opts. g is never mutated.
//
// Solve returns a non-nil error without searching if g or opts fails
// validation (ErrNilGraph, ErrNegativeTimeLimit, ErrUnknownStrategy) or if
// the initial DSATUR upper bound would exceed the 63-color bitset capacity
// (ErrColorCapacity) — see bitset.MaxColors.
func Solve(g *csr.Graph, opts Options) (Result, error) {
	if err := validateGraph(g); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	if g.N == 0 {
		return Result{
			K:         0,
			Coloring:  nil,
			InitialLB: 0,
			InitialUB: 0,
			Optimal:   true,
		}, nil
	}

	initialColoring := make([]int, g.N)
	initialUB := dsatur(g, initialColoring)
	if err := validateColorCapacity(initialUB); err != nil {
		return Result{}, err
	}
	initialLB := greedyClique(g)

	s := newState(g, opts)
	s.ub = initialUB
	s.lb = initialLB
	copy(s.bestColor, initialColoring)

	if opts.Strategy == StrategyFurini {
		s.furini = newFuriniScratch(g.N)
	}

	if initialLB < initialUB {
		switch opts.Strategy {
		case StrategyFurini:
			solveFurini(s)
		default:
			solveSewell(s)
		}
	}

	// A search that runs to completion without timing out has exhausted or
	// proved-pruned every branch, so its UB is exact regardless of how
	// loose the fixed initial LB is (a triangle-free non-bipartite graph's
	// greedy-clique LB of 2 never catches up to its true chromatic number).
	optimal := !s.timedOut

	return Result{
		K:            s.ub,
		Coloring:     append([]int(nil), s.bestColor...),
		InitialLB:    initialLB,
		InitialUB:    initialUB,
		Optimal:      optimal,
		NodesVisited: s.nodesVisited,
		BranchesCut:  s.branchesCut,
		Elapsed:      time.Since(s.start),
		TimedOut:     s.timedOut,
	}, nil
}
