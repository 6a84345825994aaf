// SPDX-License-Identifier: MIT
//
// random.go — RandomSpatialGraph: an Erdős–Rényi-like random spatial graph,
// grounded on builder/impl_random_sparse.go's RandomSparse(n, p) (same
// trial order: i ascending, j ascending, j>i for undirected), extended to
// also draw each vertex a uniform-random position in the configured bounds
// so the result seeds a spatialgraph.Graph directly.

package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spatialgraph/dtype"
	"github.com/katalvlaran/spatialgraph/spatialgraph"
)

const positionAttrName = "pos"

// RandomSpatialGraph builds a spatial graph of n vertices in the given
// dimensionality, with uniform-random positions and Erdős–Rényi-sampled
// edges (default probability 1%, override with WithEdgeProbability).
//
// Deterministic for a fixed seed (WithSeed) and call order, exactly as
// builder's RandomSparse is deterministic for a fixed seed.
func RandomSpatialGraph(n, dims int, opts ...Option) (*spatialgraph.Graph[int, float64], error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if dims < 1 {
		return nil, ErrInvalidDims
	}

	cfg := defaultConfig(dims)
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.min) != dims || len(cfg.max) != dims {
		return nil, ErrBoundsMismatch
	}

	sgOpts := []spatialgraph.Option{
		spatialgraph.WithNodeAttr(positionAttrName, dtype.MustParse(fmt.Sprintf("float64[%d]", dims))),
	}
	if cfg.directed {
		sgOpts = append(sgOpts, spatialgraph.WithDirected())
	}

	sg, err := spatialgraph.NewGraph[int, float64](positionAttrName, dims, sgOpts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		pos := randomPosition(cfg.rng, cfg.min, cfg.max)
		if _, err := sg.AddNode(i, map[string]any{positionAttrName: pos}); err != nil {
			return nil, fmt.Errorf("fixtures: AddNode(%d): %w", i, err)
		}
	}

	if cfg.directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() > cfg.edgeProb {
					continue
				}
				if _, err := sg.AddEdge(i, j, map[string]any{}); err != nil {
					return nil, fmt.Errorf("fixtures: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return sg, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() > cfg.edgeProb {
				continue
			}
			if _, err := sg.AddEdge(i, j, map[string]any{}); err != nil {
				return nil, fmt.Errorf("fixtures: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return sg, nil
}

func randomPosition(rng *rand.Rand, min, max []float64) []float64 {
	pos := make([]float64, len(min))
	for i := range pos {
		pos[i] = min[i] + rng.Float64()*(max[i]-min[i])
	}

	return pos
}
