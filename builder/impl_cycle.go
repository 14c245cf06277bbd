// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path 0—1—…—(n-1), then the closing edge (n-1)—0.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/boruvka/core"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodCycle, g, minCycleNodes); err != nil {
			return err
		}

		return ring(methodCycle, g, cfg, g.VertexCount())
	}
}

// ring emits a cycle over vertices 0..k-1.
func ring(method string, g *core.Graph, cfg builderConfig, k int) error {
	if err := chain(method, g, cfg, k); err != nil {
		return err
	}

	return addEdge(method, g, cfg, k-1, 0)
}
