// Package boruvka is an in-memory toolkit for Minimum Spanning Trees of
// undirected, integer-weighted graphs, centred on Borůvka's algorithm.
//
// Everything is organized under these subpackages:
//
//	core/          — integer-indexed Graph with mirrored edge storage and traversals
//	boruvka/       — Borůvka's algorithm: union-find and traversal strategies
//	prim_kruskal/  — Prim and Kruskal, used as independent oracles
//	builder/       — deterministic graph fixtures (path, cycle, grid, random, …)
//	metrics/       — Prometheus observer for Borůvka runs
//	cmd/boruvka/   — demo command: builds a graph, prints its MST and weight
//
// Quick start:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 4)
//	res, err := boruvka.Compute(g)
//	// res.TotalWeight == 3
//
// Determinism: every edge list is ordered by (Weight, lower endpoint, higher
// endpoint), so results are reproducible and all MST algorithms here return
// the same tree.
package boruvka
