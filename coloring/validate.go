package coloring

import (
	"github.com/vkolor/chromab/bitset"
	"github.com/vkolor/chromab/csr"
)

// validateGraph checks shape-only preconditions that do not require
// computing any bound yet.
//
// Complexity: O(1).
func validateGraph(g *csr.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return nil
}

// validateOptions checks Options in isolation.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	switch opts.Strategy {
	case StrategySewell, StrategyFurini:
		// ok
	default:
		return ErrUnknownStrategy
	}

	return nil
}

// validateColorCapacity enforces the 63-color bitset ceiling against an
// already-computed initial upper bound (see bitset.MaxColors). The caller
// must reject the graph before entering search if this fails.
//
// Complexity: O(1).
func validateColorCapacity(initialUB int) error {
	if initialUB > bitset.MaxColors {
		return ErrColorCapacity
	}

	return nil
}
