// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph declarations, sentinel errors and the NewGraph constructor.
// Invariants:
//   - vertexCount is fixed at construction.
//   - adjacency[v] holds only edges with Start == v, sorted by (Weight, End).
//   - Every stored (u,v,w) has its mirror (v,u,w) stored at v.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates NewGraph was asked for a graph with no vertices.
	ErrInvalidVertexCount = errors.New("core: vertex count must be positive")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted (start == end).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilVisited indicates DepthFirstSearch received a nil visited set.
	ErrNilVisited = errors.New("core: visited set is nil")
)

// Edge is the directed view of an undirected, weighted edge.
//
// The Graph stores every edge twice: once at Start and once, mirrored, at End.
// Two edges are the Same when their (Start, End) pairs match; Weight does not
// take part in identity.
type Edge struct {
	// Start is the vertex owning this view of the edge.
	Start int

	// End is the opposite endpoint.
	End int

	// Weight is the cost of the edge.
	Weight int64
}

// Opposite returns the mirror of e: (End, Start, Weight).
func (e Edge) Opposite() Edge {
	return Edge{Start: e.End, End: e.Start, Weight: e.Weight}
}

// Same reports whether e and other share the same (Start, End) pair.
func (e Edge) Same(other Edge) bool {
	return e.Start == other.Start && e.End == other.End
}

// Canonical returns e oriented so that Start < End.
func (e Edge) Canonical() Edge {
	if e.Start > e.End {
		return e.Opposite()
	}

	return e
}

// String renders the edge as "start-(weight)- end".
func (e Edge) String() string {
	return strconv.Itoa(e.Start) + "-(" + strconv.FormatInt(e.Weight, 10) + ")- " + strconv.Itoa(e.End)
}

// less orders edges leaving the same vertex: by Weight, then by End.
// Equal weights therefore break ties by the lowest endpoint index.
func less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.End < b.End
}

// Graph is a weighted, undirected graph over the vertices 0..VertexCount()-1.
//
// Vertices are implicit: there is no vertex object, only an index. Each vertex
// owns a slice of its incident edges kept in ascending (Weight, End) order, so
// the cheapest edge leaving v is always adjacency[v][0].
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	vertexCount int
	edgeCount   int      // undirected edges (each mirrored pair counts once)
	adjacency   [][]Edge // adjacency[v]: edges with Start == v, sorted by less
}

// NewGraph creates an empty Graph with vertexCount vertices and no edges.
//
// Errors:
//   - ErrInvalidVertexCount if vertexCount <= 0.
//
// Complexity: O(V).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", vertexCount, ErrInvalidVertexCount)
	}

	return &Graph{
		vertexCount: vertexCount,
		adjacency:   make([][]Edge, vertexCount),
	}, nil
}

// checkVertex validates a vertex index against the graph's range.
func (g *Graph) checkVertex(method string, v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, v, g.vertexCount, ErrIndexOutOfRange)
	}

	return nil
}
