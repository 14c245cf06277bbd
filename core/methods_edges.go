// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle: AddEdge/InsertEdge/RemoveEdge/HasEdge.
// Determinism:
//   - Per-vertex slices stay sorted by (Weight, End) after every mutation.
// Invariants:
//   - Both directions of an edge are written and removed by the same call,
//     so the mirrored storage never drifts out of sync.

package core

import (
	"fmt"
	"sort"
)

const (
	methodAddEdge    = "AddEdge"
	methodInsertEdge = "InsertEdge"
	methodRemoveEdge = "RemoveEdge"
)

// AddEdge inserts the undirected edge {start, end} with the given weight.
//
// The edge is stored at start and its mirror at end. If an edge with the same
// (start, end) pair already exists the call is a no-op and the stored weight
// is left untouched.
//
// Errors:
//   - ErrIndexOutOfRange if either endpoint is outside [0, VertexCount()).
//   - ErrLoopNotAllowed if start == end.
//
// Complexity: O(deg(start) + deg(end)).
func (g *Graph) AddEdge(start, end int, weight int64) error {
	return g.addEdge(methodAddEdge, Edge{Start: start, End: end, Weight: weight})
}

// InsertEdge is AddEdge for a pre-built Edge. The mirror is inserted automatically.
func (g *Graph) InsertEdge(e Edge) error {
	return g.addEdge(methodInsertEdge, e)
}

func (g *Graph) addEdge(method string, e Edge) error {
	if err := g.checkVertex(method, e.Start); err != nil {
		return err
	}
	if err := g.checkVertex(method, e.End); err != nil {
		return err
	}
	if e.Start == e.End {
		return fmt.Errorf("%s: vertex %d: %w", method, e.Start, ErrLoopNotAllowed)
	}
	if g.HasEdge(e) {
		return nil
	}

	g.insertSorted(e)
	g.insertSorted(e.Opposite())
	g.edgeCount++

	return nil
}

// insertSorted places e into adjacency[e.Start] keeping the (Weight, End) order.
func (g *Graph) insertSorted(e Edge) {
	list := g.adjacency[e.Start]
	i := sort.Search(len(list), func(k int) bool { return less(e, list[k]) })
	list = append(list, Edge{})
	copy(list[i+1:], list[i:])
	list[i] = e
	g.adjacency[e.Start] = list
}

// RemoveEdge deletes the edge (start, end) and its mirror (end, start).
// Removing an edge that does not exist is a no-op.
//
// Errors:
//   - ErrIndexOutOfRange if either endpoint is outside [0, VertexCount()).
//
// Complexity: O(deg(start) + deg(end)).
func (g *Graph) RemoveEdge(start, end int) error {
	if err := g.checkVertex(methodRemoveEdge, start); err != nil {
		return err
	}
	if err := g.checkVertex(methodRemoveEdge, end); err != nil {
		return err
	}

	removed := g.removeFrom(start, end)
	if g.removeFrom(end, start) && removed {
		g.edgeCount--
	}

	return nil
}

// removeFrom drops the first edge (v, to) from adjacency[v]; it reports whether one was found.
func (g *Graph) removeFrom(v, to int) bool {
	list := g.adjacency[v]
	for i := range list {
		if list[i].End == to {
			g.adjacency[v] = append(list[:i], list[i+1:]...)
			return true
		}
	}

	return false
}

// HasEdge reports whether an edge with e's (Start, End) pair is stored.
// Weight is ignored. Out-of-range endpoints simply report false.
//
// Complexity: O(deg(e.Start)).
func (g *Graph) HasEdge(e Edge) bool {
	if e.Start < 0 || e.Start >= g.vertexCount {
		return false
	}
	for _, stored := range g.adjacency[e.Start] {
		if stored.Same(e) {
			return true
		}
	}

	return false
}
