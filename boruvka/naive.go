// SPDX-License-Identifier: MIT
//
// File: naive.go
// Role: StrategyNaive, traversal-based component tracking.
// Notes:
//   - Components are never stored; every question is answered by walking the
//     tree under construction, so the tree graph is the only state.

package boruvka

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// naive sweeps vertices in index order until the tree is connected.
//
// For vertex i in a sweep:
//  1. Skip if the tree already spans the graph from i.
//  2. Walk the tree from i to collect i's component.
//  3. Take the lightest source edge leaving that component.
//  4. Accept it unless it is already in the tree or its far end is
//     already reachable from i (the component grew earlier in this sweep).
//
// Accepting the lightest edge across the component's cut keeps every
// accepted edge in the unique minimum tree.
func (r *run) naive() error {
	n := r.src.VertexCount()
	tree := r.res.Tree
	visited := tree.NewVisited()

	for round := 1; !tree.IsConnected(); round++ {
		if err := r.startRound(round); err != nil {
			return err
		}

		added := 0
		for i := 0; i < n; i++ {
			// 1. Spanning already.
			reach, err := tree.CountReachable(i)
			if err != nil {
				return fmt.Errorf("%s: %w", methodCompute, err)
			}
			if reach == n {
				break
			}

			// 2. Component of i.
			visited.Clear()
			if err = tree.DepthFirstSearch(i, visited); err != nil {
				return fmt.Errorf("%s: %w", methodCompute, err)
			}

			// 3. Lightest crossing edge.
			best, ok := r.lightestLeaving(visited.Content(), visited.Contains)
			if !ok {
				continue
			}

			// 4. Accept.
			if tree.HasEdge(best) {
				continue
			}
			linked, err := tree.Reachable(i, best.End)
			if err != nil {
				return fmt.Errorf("%s: %w", methodCompute, err)
			}
			if linked {
				continue
			}
			if err = r.accept(round, best); err != nil {
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

// lightestLeaving returns the lightest source edge from a member vertex to a
// vertex outside the component, oriented from the member side.
func (r *run) lightestLeaving(members []int, inside func(int) bool) (core.Edge, bool) {
	var (
		best  core.Edge
		found bool
	)
	for _, v := range members {
		nbrs, _ := r.src.Neighbours(v) // members come from the tree, same vertex range
		for _, e := range nbrs {
			if inside(e.End) {
				continue
			}
			if !found || lighter(e, best) {
				best, found = e, true
			}
			break
		}
	}

	return best, found
}
