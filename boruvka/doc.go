// SPDX-License-Identifier: MIT

// Package boruvka computes Minimum Spanning Trees of undirected weighted
// graphs with Borůvka's algorithm.
//
// The algorithm starts from a forest of single vertices. In each merge round
// every component selects the lightest edge leaving it, and all selected
// edges join the tree. The number of components at least halves per round,
// so at most ⌈log₂ V⌉ rounds are needed.
//
// Two strategies track components between rounds:
//
//   - StrategyUnionFind (default): a disjoint-set forest. O(E log V).
//   - StrategyNaive: components are re-derived by walking the tree under
//     construction. Quadratic, kept as an independent cross-check.
//
// Ties are broken by (Weight, lower endpoint, higher endpoint), a strict
// total order on edges, so the resulting tree is unique and both strategies
// agree edge for edge.
//
// Usage:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 3)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(2, 3, 2)
//	res, err := boruvka.Compute(g, boruvka.WithStrategy(boruvka.StrategyNaive))
//
// Errors:
//   - ErrNilGraph        nil input
//   - ErrDisconnected    more than one component; no spanning tree exists
//   - ErrUnknownStrategy unsupported Strategy value
//   - ErrNoProgress      a round added nothing, or WithMaxRounds was exceeded
//
// Progress is reported through zerolog (WithLogger) and the Observer
// interface (WithObserver); package metrics adapts Observer to Prometheus.
package boruvka
