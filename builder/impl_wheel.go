// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_wheel.go - implementation of Wheel() constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): the outer cycle has n-1 ≥ 3 vertices.
//   - Outer cycle on 0..n-2 emitted first, then spokes (n-1)—i for i=0..n-2.
//
// Complexity:
//   - Time: O(n-1) cycle edges + O(n-1) spokes.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/boruvka/core"

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub n-1.
func Wheel() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodWheel, g, minWheelNodes); err != nil {
			return err
		}
		hub := g.VertexCount() - 1
		if err := ring(methodWheel, g, cfg, hub); err != nil {
			return err
		}
		for i := 0; i < hub; i++ {
			if err := addEdge(methodWheel, g, cfg, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
