package generator

import "math/rand"

// defaultSeed is used when callers pass seed == 0, keeping defaults reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Option configures the random source of RandomIrreducible and Pump.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws from a fresh source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand draws from r. A *rand.Rand is not goroutine-safe; do not share it.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	return c
}
