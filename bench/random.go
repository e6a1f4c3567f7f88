package bench

import (
	"fmt"

	"github.com/vkolor/chromab/core"
)

// GNP returns an Erdos-Renyi G(n, p) random graph: n vertices, each of the
// n*(n-1)/2 possible edges included independently with probability p.
// Determinism follows from the Option-configured RNG (WithSeed), not from
// the algorithm itself.
func GNP(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	cfg := newConfig(opts...)
	g := core.NewGraph()
	ids, err := buildVertices(g, n, cfg)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return nil, fmt.Errorf("bench: AddEdge(%s,%s): %w", ids[i], ids[j], err)
				}
			}
		}
	}

	return g, nil
}

// regularRetries bounds how many times RandomRegular retries the pairing
// model construction before giving up with ErrRegularConstructionFailed.
// A handful of retries is enough in practice: failures only arise from
// late-stage pairing dead-ends, which a fresh shuffle almost always avoids.
const regularRetries = 100

// RandomRegular returns a uniformly-random simple d-regular graph on n
// vertices via repeated attempts at the configuration (pairing) model:
// n*d "stubs" are paired uniformly at random, and the attempt is rejected
// and retried if pairing produces a self-loop or parallel edge.
//
// n*d must be even and 0 <= d < n, else ErrInvalidDegree.
func RandomRegular(n, d int, opts ...Option) (*core.Graph, error) {
	if d < 0 || d >= n || (n*d)%2 != 0 {
		return nil, fmt.Errorf("%w: n=%d d=%d", ErrInvalidDegree, n, d)
	}
	cfg := newConfig(opts...)

	for attempt := 0; attempt < regularRetries; attempt++ {
		g := core.NewGraph()
		ids, err := buildVertices(g, n, cfg)
		if err != nil {
			return nil, err
		}

		stubs := make([]int, 0, n*d)
		for v := 0; v < n; v++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, v)
			}
		}
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		ok := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v || g.HasEdge(ids[u], ids[v]) {
				ok = false
				break
			}
			if err := g.AddEdge(ids[u], ids[v]); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: n=%d d=%d after %d attempts", ErrRegularConstructionFailed, n, d, regularRetries)
}
