// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| > 1 and the graph is not fully connected.
//
// Steps:
//  1. Validate graph != nil. A single vertex yields the trivial MST (empty, weight=0).
//  2. Collect the canonical edges via graph.Edges(), already sorted by
//     (Weight, Start, End), so ties break deterministically.
//  3. Initialize DSU arrays parent[] and rank[] for each vertex.
//  4. Loop over sorted edges: for each edge (u,v), if find(u) != find(v), union and keep the edge.
//  5. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Sorted canonical edges (no self-loops exist in core.Graph).
	edges := graph.Edges()

	// 3. Disjoint-set forest over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 4. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
	)
	for _, e := range edges {
		if union(e.Start, e.End) {
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == n-1 {
				break
			}
		}
	}

	// 5. Fewer than |V|-1 edges means the graph was disconnected.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("Kruskal: %d of %d tree edges: %w", len(mst), n-1, ErrDisconnected)
	}

	return mst, totalWeight, nil
}
