// Package coloring implements an exact branch-and-bound solver for the
// graph vertex coloring problem: given an undirected simple graph, find the
// chromatic number χ(G) and a witness coloring achieving it.
//
// Two interchangeable strategies share the same partial-coloring state and
// initial bounds:
//
//   - StrategySewell: DSATUR branching with Sewell (1996) tie-breaking,
//     pruned only by the trivial k >= UB-1 bound.
//   - StrategyFurini: identical branching, augmented with the Furini,
//     Gabrel & Ternier (2017) reduced-graph lower bound recomputed at every
//     search node.
//
// Design goals:
//   - Mathematical rigor: precise, specialized sentinel errors.
//   - Determinism: identical inputs produce identical K, Coloring,
//     NodesVisited and BranchesCut on every run (timing and TimedOut may vary).
//   - Zero surprises: Solve never mutates the caller's *csr.Graph.
package coloring

import (
	"errors"
	"time"
)

// Sentinel errors. Do not wrap these with fmt.Errorf where the sentinel
// alone is enough for a caller to react.
var (
	// ErrNilGraph indicates Solve was called with a nil graph.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrNegativeTimeLimit indicates Options.TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("coloring: negative time limit")

	// ErrColorCapacity indicates the initial DSATUR upper bound exceeds the
	// 63-color bitset capacity (bitset.MaxColors). The search never begins.
	ErrColorCapacity = errors.New("coloring: chromatic upper bound exceeds 63-color capacity")

	// ErrUnknownStrategy indicates Options.Strategy is not one of the
	// declared Strategy constants.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")
)

// Strategy selects which branch-and-bound variant Solve runs.
type Strategy int

const (
	// StrategySewell runs DSATUR branching with Sewell tie-breaking and
	// only the trivial upper-bound prune.
	StrategySewell Strategy = iota

	// StrategyFurini adds the reduced-graph lower bound recomputed at every
	// node, at the cost of more work per node.
	StrategyFurini
)

// ProgressFunc is invoked synchronously from the search goroutine on the
// first node visited and then every 500 nodes thereafter. It must not
// block and must not attempt to re-enter Solve.
type ProgressFunc func(nodesVisited int64, ub, lb int, elapsed time.Duration, branchesCut int64)

// progressInterval is the node cadence at which ProgressFunc fires, after
// the mandatory first call.
const progressInterval = 500

// Options configures a Solve call. The zero value is meaningful: strategy
// StrategySewell, no time limit, no progress callback.
type Options struct {
	// Strategy selects the branch-and-bound variant. Default: StrategySewell.
	Strategy Strategy

	// TimeLimit bounds wall-clock search time. Zero means unlimited.
	TimeLimit time.Duration

	// Progress, if non-nil, is called per the ProgressFunc contract.
	Progress ProgressFunc
}

// Result is the outcome of a Solve call.
type Result struct {
	// K is the number of colors used by Coloring (the final upper bound).
	K int

	// Coloring assigns each vertex index (per the csr.Graph it was built
	// from) a color in [0, K). Length equals the graph's vertex count.
	Coloring []int

	// InitialLB is the greedy-clique lower bound computed before search.
	InitialLB int

	// InitialUB is the DSATUR heuristic upper bound computed before search.
	InitialUB int

	// Optimal is true iff the search ran to completion without timing out,
	// which proves K == χ(G): every branch was either exhausted or pruned
	// with a proof it could not beat K.
	Optimal bool

	// NodesVisited counts B&B recursion nodes entered.
	NodesVisited int64

	// BranchesCut counts nodes pruned before branching.
	BranchesCut int64

	// Elapsed is the wall-clock search duration.
	Elapsed time.Duration

	// TimedOut is true iff the time budget was exhausted before the search
	// completed. Result still holds the best coloring found so far.
	TimedOut bool
}
