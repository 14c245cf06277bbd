// SPDX-License-Identifier: MIT
//
// File: unionfind.go
// Role: StrategyUnionFind, the classic component-parallel Borůvka rounds.

package boruvka

import "github.com/katalvlaran/boruvka/core"

// unionFind runs merge rounds until one component remains.
//
// Each round:
//  1. For every component (DSU root) find the lightest edge leaving it,
//     scanning each vertex's adjacency once.
//  2. Merge along every selected edge; an edge picked by both of its
//     components is accepted once, because the second union fails.
//
// With a strict total order on edges the selected edges never form a cycle,
// and every round at least halves the component count.
func (r *run) unionFind() error {
	n := r.src.VertexCount()
	sets := newDSU(n)
	cheapest := make([]core.Edge, n)
	found := make([]bool, n)

	for round := 1; sets.sets > 1; round++ {
		if err := r.startRound(round); err != nil {
			return err
		}

		// 1. Cheapest outgoing edge per component.
		for i := range found {
			found[i] = false
		}
		for v := 0; v < n; v++ {
			root := sets.find(v)
			nbrs, _ := r.src.Neighbours(v) // v < n
			for _, e := range nbrs {
				if sets.find(e.End) == root {
					continue
				}
				if !found[root] || lighter(e, cheapest[root]) {
					cheapest[root] = e
					found[root] = true
				}
				// Adjacency is sorted by (Weight, End): the first crossing
				// edge is this vertex's best.
				break
			}
		}

		// 2. Merge.
		added := 0
		for root := 0; root < n; root++ {
			if !found[root] {
				continue
			}
			e := cheapest[root]
			if !sets.union(e.Start, e.End) {
				continue
			}
			if err := r.accept(round, e); err != nil {
				return err
			}
			added++
		}

		if err := r.finishRound(round, added); err != nil {
			return err
		}
	}

	return nil
}
