// SPDX-License-Identifier: MIT
//
// config.go — functional options for the fixture generators, in the
// teacher's WithX(...) style (builder/config.go's newBuilderConfig).

package fixtures

import "math/rand"

const (
	defaultEdgeProbability = 0.01
	defaultBoundLow        = 0.0
	defaultBoundHigh       = 1000.0
)

type config struct {
	rng      *rand.Rand
	edgeProb float64
	min, max []float64
	directed bool
}

func defaultConfig(dims int) config {
	min := make([]float64, dims)
	max := make([]float64, dims)
	for i := range min {
		min[i] = defaultBoundLow
		max[i] = defaultBoundHigh
	}

	return config{
		rng:      rand.New(rand.NewSource(1)),
		edgeProb: defaultEdgeProbability,
		min:      min,
		max:      max,
	}
}

// Option customizes a fixture generator by mutating its config before
// generation begins.
type Option func(*config)

// WithSeed seeds the generator's RNG, exactly as builder.WithSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an explicit RNG source. A nil rng is a no-op, matching
// builder.WithRand's defensive nil-check.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithEdgeProbability sets the Erdős–Rényi inclusion probability for each
// admissible vertex pair. Values outside [0,1] are clamped.
func WithEdgeProbability(p float64) Option {
	return func(c *config) {
		switch {
		case p < 0:
			c.edgeProb = 0
		case p > 1:
			c.edgeProb = 1
		default:
			c.edgeProb = p
		}
	}
}

// WithBounds sets the per-axis [min[i], max[i]) range positions are drawn
// from. len(min) and len(max) must equal the generator's dims; WithBounds
// does not check this itself, and RandomSpatialGraph rejects a mismatch with
// ErrBoundsMismatch.
func WithBounds(min, max []float64) Option {
	return func(c *config) {
		c.min = append([]float64(nil), min...)
		c.max = append([]float64(nil), max...)
	}
}

// WithDirected builds a directed spatial graph; the default is undirected.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}
