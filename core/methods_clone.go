// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves per-vertex edge order exactly.

package core

// CloneEmpty returns a new Graph with the same vertex count and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		vertexCount: g.vertexCount,
		adjacency:   make([][]Edge, g.vertexCount),
	}
}

// Clone returns a deep copy of g. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	clone.edgeCount = g.edgeCount
	for v, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[v] = make([]Edge, len(list))
		copy(clone.adjacency[v], list)
	}

	return clone
}
