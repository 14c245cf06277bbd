// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph         : if graph is nil.
//   - core.ErrIndexOutOfRange : if root is not a vertex of graph.
//   - ErrDisconnected         : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push all edges adjacent to root into the heap.
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the smallest‐weight edge (u→v).
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise keep the edge, mark v, push v's edges to unvisited neighbours.
//  4. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Returned edges are oriented Start < End.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	neighbors, err := graph.Neighbours(root)
	if err != nil {
		return nil, 0, fmt.Errorf("Prim: root: %w", err)
	}
	n := graph.VertexCount()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64

	// 2. Seed the heap from root.
	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	for _, e := range neighbors {
		heap.Push(pq, e)
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		v := e.End
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, e.Canonical())
		totalWeight += e.Weight

		next, _ := graph.Neighbours(v) // v is in range: it came from the graph
		for _, ne := range next {
			if !visited[ne.End] {
				heap.Push(pq, ne)
			}
		}
	}

	// 4. Fewer than |V|-1 edges means the graph was disconnected.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("Prim: %d of %d tree edges: %w", len(mst), n-1, ErrDisconnected)
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge, ordered by
// Weight, then by End for deterministic ties.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].End < pq[j].End
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
