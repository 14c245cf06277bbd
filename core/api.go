// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a Graph.
// Policy:
//   - No mutation here.
//   - Slices handed to callers are copies; the internal adjacency is never exposed.

package core

import "sort"

const (
	methodNeighbours = "Neighbours"
	methodDegree     = "Degree"
)

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the number of undirected edges; a mirrored pair counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Degree returns the number of edges incident to v.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, VertexCount()).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(methodDegree, v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}

// Neighbours returns the edges leaving v in ascending (Weight, End) order.
// Every returned edge has Start == v. The slice is a copy.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, VertexCount()).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbours(v int) ([]Edge, error) {
	if err := g.checkVertex(methodNeighbours, v); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Edges returns every undirected edge exactly once, oriented Start < End,
// sorted by (Weight, Start, End).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for v := 0; v < g.vertexCount; v++ {
		for _, e := range g.adjacency[v] {
			if e.Start < e.End {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}

		return out[i].End < out[j].End
	})

	return out
}

// TotalWeight sums the weights of all undirected edges, each counted once.
// Complexity: O(V + E).
func (g *Graph) TotalWeight() int64 {
	var total int64
	for v := 0; v < g.vertexCount; v++ {
		for _, e := range g.adjacency[v] {
			if e.Start < e.End {
				total += e.Weight
			}
		}
	}

	return total
}
