package bench

import (
	"math/rand"
	"strconv"
)

// config holds the knobs every generator shares: a vertex-ID scheme and a
// random source for the generators that need one (GNP, RandomRegular, and
// the weight-free randomized tie-breaks inside them).
type config struct {
	idFn func(i int) string
	rng  *rand.Rand
}

// Option configures a generator call. The zero-value config (produced when
// no options are given) uses decimal string IDs "0".."n-1" and a
// fixed-seed RNG, so every generator is deterministic by default.
type Option func(*config)

// WithIDPrefix sets the vertex ID scheme to prefix+strconv.Itoa(i) instead
// of the default bare decimal string.
func WithIDPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.idFn = func(i int) string { return prefix + strconv.Itoa(i) }
	}
}

// WithSeed fixes the random source used by GNP and RandomRegular. Two calls
// with the same seed and arguments produce identical graphs.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// defaultSeed is used when WithSeed is not supplied, keeping every
// generator deterministic out of the box.
const defaultSeed = 1

func newConfig(opts ...Option) config {
	cfg := config{
		idFn: func(i int) string { return strconv.Itoa(i) },
		rng:  rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
