// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_random_sparse.go - RandomSparse(p) and RandomConnected(p) constructors.
//
// Model:
//   - RandomSparse: Erdős–Rényi-like; each unordered pair {i,j}, i<j, is
//     included independently with probability p. The result may be disconnected.
//   - RandomConnected: a random spanning tree (vertex v ≥ 1 attaches to a
//     uniform earlier vertex) followed by RandomSparse(p) extras, so the
//     graph is always connected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RandomSparse needs cfg.rng only when 0 < p < 1; RandomConnected always
//     needs it (else ErrNeedRandSource).
//   - Trial order is fixed (i asc, j asc), so a seed fully determines the graph.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// RandomSparse returns a Constructor that samples each vertex pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomSparse, g, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		return sparse(methodRandomSparse, g, cfg, p)
	}
}

// RandomConnected returns a Constructor that lays a random spanning tree and
// then samples extra pairs with probability p.
func RandomConnected(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomConnected, g, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		for v := 1; v < g.VertexCount(); v++ {
			if err := addEdge(methodRandomConnected, g, cfg, cfg.rng.Intn(v), v); err != nil {
				return err
			}
		}

		return sparse(methodRandomConnected, g, cfg, p)
	}
}

func validateRandom(method string, g *core.Graph, p float64) error {
	if err := checkMin(method, g, minRandomNodes); err != nil {
		return err
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// sparse runs one Bernoulli trial per unordered pair. With a nil rng only
// p ∈ {0,1} reaches here, and the outcome is fixed.
func sparse(method string, g *core.Graph, cfg builderConfig, p float64) error {
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var take bool
			if cfg.rng == nil {
				take = p == probMax
			} else {
				take = cfg.rng.Float64() < p
			}
			if !take {
				continue
			}
			if err := addEdge(method, g, cfg, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
