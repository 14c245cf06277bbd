// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex 0; spokes 0—i for i=1..n-1 in increasing order.
//
// Complexity: O(n-1) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/boruvka/core"

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, g, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
