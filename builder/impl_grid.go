// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// impl_grid.go - implementation of Grid(cols) constructor.
//
// Contract:
//   - cols ≥ 1 (else ErrTooFewVertices).
//   - n must be a multiple of cols (else ErrConstructFailed); rows = n / cols.
//   - Vertex (r,c) is index r*cols + c (row-major).
//   - For each cell in row-major order: right neighbour first, then down.
//
// Complexity: O(rows*cols) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cols < minGridDim {
			return fmt.Errorf("%s: cols=%d < min=%d: %w", methodGrid, cols, minGridDim, ErrTooFewVertices)
		}
		n := g.VertexCount()
		if n%cols != 0 {
			return fmt.Errorf("%s: n=%d not divisible by cols=%d: %w", methodGrid, n, cols, ErrConstructFailed)
		}
		rows := n / cols

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
