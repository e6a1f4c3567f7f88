package bench

import "errors"

// Sentinel errors shared by every generator in this package.
var (
	// ErrTooFewVertices indicates a generator's size argument is below the
	// minimum that family is defined for.
	ErrTooFewVertices = errors.New("bench: too few vertices")

	// ErrInvalidProbability indicates GNP's p is outside [0, 1].
	ErrInvalidProbability = errors.New("bench: probability must be in [0, 1]")

	// ErrInvalidDegree indicates RandomRegular's (n, d) cannot form a
	// simple d-regular graph: d must satisfy 0 <= d < n, and n*d must be
	// even (a regular graph's total degree is always even).
	ErrInvalidDegree = errors.New("bench: invalid (n, d) for a simple regular graph")

	// ErrRegularConstructionFailed indicates the randomized pairing
	// construction for RandomRegular could not converge within its retry
	// budget; callers should retry with a different seed.
	ErrRegularConstructionFailed = errors.New("bench: random regular construction did not converge")
)
