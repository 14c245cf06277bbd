// SPDX-License-Identifier: MIT
//
// File: methods_traversal.go
// Role: Reachability and connectivity: DepthFirstSearch, CountReachable,
//       Reachable, IsConnected, Components.
// Complexity:
//   - Every query runs a fresh O(V+E) traversal; nothing is cached between calls.
// Notes:
//   - Traversal uses an explicit stack, so call depth does not grow with the graph.
//   - Visited markers are sparse sets: O(1) insert/contains, O(visited) clear.

package core

import (
	"fmt"
	"sort"

	"github.com/rhartert/sparsesets"
)

const (
	methodDepthFirstSearch = "DepthFirstSearch"
	methodCountReachable   = "CountReachable"
	methodReachable        = "Reachable"
)

// NewVisited returns an empty visited set sized for g, suitable for DepthFirstSearch.
func (g *Graph) NewVisited() *sparsesets.Set {
	return sparsesets.New(g.vertexCount)
}

// DepthFirstSearch marks in visited every vertex reachable from source,
// source included. Vertices already present in visited are treated as
// explored and are not expanded again, which lets callers sweep a forest
// with one shared set.
//
// Errors:
//   - ErrIndexOutOfRange if source is outside [0, VertexCount()).
//   - ErrNilVisited if visited is nil.
//
// Complexity: O(V + E) time, O(V) stack.
func (g *Graph) DepthFirstSearch(source int, visited *sparsesets.Set) error {
	if err := g.checkVertex(methodDepthFirstSearch, source); err != nil {
		return err
	}
	if visited == nil {
		return fmt.Errorf("%s: %w", methodDepthFirstSearch, ErrNilVisited)
	}
	g.walk(source, visited, nil)

	return nil
}

// walk is the unchecked traversal shared by all queries.
// onVisit, when non-nil, sees every newly marked vertex once.
func (g *Graph) walk(source int, visited *sparsesets.Set, onVisit func(v int)) {
	if visited.Contains(source) {
		return
	}
	visited.Insert(source)
	if onVisit != nil {
		onVisit(source)
	}
	stack := []int{source}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.adjacency[v] {
			if visited.Contains(e.End) {
				continue
			}
			visited.Insert(e.End)
			if onVisit != nil {
				onVisit(e.End)
			}
			stack = append(stack, e.End)
		}
	}
}

// CountReachable returns how many vertices, source included, are reachable from source.
//
// Errors:
//   - ErrIndexOutOfRange if source is outside [0, VertexCount()).
func (g *Graph) CountReachable(source int) (int, error) {
	if err := g.checkVertex(methodCountReachable, source); err != nil {
		return 0, err
	}
	visited := g.NewVisited()
	g.walk(source, visited, nil)

	return len(visited.Content()), nil
}

// Reachable reports whether dest can be reached from source.
// A vertex always reaches itself.
//
// Errors:
//   - ErrIndexOutOfRange if source or dest is outside [0, VertexCount()).
func (g *Graph) Reachable(source, dest int) (bool, error) {
	if err := g.checkVertex(methodReachable, source); err != nil {
		return false, err
	}
	if err := g.checkVertex(methodReachable, dest); err != nil {
		return false, err
	}
	visited := g.NewVisited()
	g.walk(source, visited, nil)

	return visited.Contains(dest), nil
}

// IsConnected reports whether every vertex is reachable from vertex 0.
//
// A single-vertex graph is connected. Otherwise any isolated vertex makes
// the answer false without traversing; else one traversal from 0 decides.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if g.vertexCount == 1 {
		return true
	}
	for v := 0; v < g.vertexCount; v++ {
		if len(g.adjacency[v]) == 0 {
			return false
		}
	}
	visited := g.NewVisited()
	g.walk(0, visited, nil)

	return len(visited.Content()) == g.vertexCount
}

// Components returns the vertex sets of the connected components.
// Components are ordered by their smallest vertex; vertices inside a
// component are in ascending order.
//
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	var out [][]int
	visited := g.NewVisited()
	for v := 0; v < g.vertexCount; v++ {
		if visited.Contains(v) {
			continue
		}
		var members []int
		g.walk(v, visited, func(u int) { members = append(members, u) })
		sort.Ints(members)
		out = append(out, members)
	}

	return out
}
