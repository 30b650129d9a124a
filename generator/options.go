// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults taken from the reference dataset (1001 vectors of 100 features).
const (
	DefaultCount     = 1001
	DefaultDim       = 100
	DefaultDeviation = 0.195
)

// Clamp interval; samples outside it are zeroed.
const (
	lowerBound = -1.0
	upperBound = 1.0
)

// Option customizes Generate. Option constructors panic on meaningless
// values; Generate itself never panics.
type Option func(*config)

type config struct {
	deviation float64
	rng       *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{deviation: DefaultDeviation}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDeviation sets the standard deviation σ of the normal distribution.
// Panics unless σ is finite and > 0.
func WithDeviation(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("generator: WithDeviation(%g): sigma must be finite and > 0", sigma))
	}
	return func(c *config) {
		c.deviation = sigma
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG; the caller owns its seed policy.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
