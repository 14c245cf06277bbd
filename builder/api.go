// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// api.go - public entry point and constructor type.
//
// Contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors span every vertex of the graph they receive; sizes come from g.VertexCount().
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// Constructor applies a deterministic set of edges to g using the resolved
// builderConfig. Constructors validate early and return sentinel errors;
// they never panic. Edges already present are left unchanged by core.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Constructor errors are wrapped as "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
//
// Complexity: O(n + Σ cost of constructors).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < minGraphVertices {
		return nil, fmt.Errorf("BuildGraph: n=%d < min=%d: %w", n, minGraphVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
//	Path()              P_n over 0..n-1 (n ≥ 2)
//	Cycle()             C_n, Path plus (n-1)-0 (n ≥ 3)
//	Star()              hub 0, leaves 1..n-1 (n ≥ 2)
//	Wheel()             C_{n-1} on 0..n-2 plus hub n-1 (n ≥ 4)
//	Complete()          K_n (n ≥ 1)
//	Grid(cols)          row-major 4-neighbourhood grid, n = rows*cols
//	RandomSparse(p)     each pair independently with probability p
//	RandomConnected(p)  random spanning tree plus RandomSparse(p) extras

// addEdge inserts u-v with the next weight from cfg and wraps failures with method context.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// checkMin rejects graphs smaller than a constructor's minimum.
func checkMin(method string, g *core.Graph, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
