// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   - Emits every unordered pair i<j, i asc then j asc.
//
// Complexity: O(n²) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/boruvka/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodComplete, g, minCompleteNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
