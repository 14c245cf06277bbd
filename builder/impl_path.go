// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices), n = g.VertexCount().
//   - Emits edges (i-1)—i for i=1..n-1 in increasing order.
//   - Weight per edge: cfg.weightFn(cfg.rng), drawn in emission order.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/boruvka/core"

// Path returns a Constructor that builds a simple path P_n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodPath, g, minPathNodes); err != nil {
			return err
		}

		return chain(methodPath, g, cfg, g.VertexCount())
	}
}

// chain emits (i-1)—i for i=1..k-1.
func chain(method string, g *core.Graph, cfg builderConfig, k int) error {
	for i := 1; i < k; i++ {
		if err := addEdge(method, g, cfg, i-1, i); err != nil {
			return err
		}
	}

	return nil
}
