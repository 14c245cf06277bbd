// Package prim_kruskal provides the two classic Minimum Spanning Tree (MST)
// algorithms over an undirected, weighted *core.Graph: Prim’s and Kruskal’s.
//
// In this module they serve as reference oracles: the Borůvka builder is
// checked against them, and the command-line tool can cross-verify a Borůvka
// result with Kruskal.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: walk the canonical edges in ascending (Weight, Start, End) order and
//     merge components with a disjoint-set forest, skipping edges whose endpoints
//     already share a component. Stop once |V|−1 edges have been added.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, int64, error)
//
//   - Strategy: grow a single tree from root, keeping candidate edges in a
//     min-heap ordered by (Weight, End).
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
// Both return edges oriented Start < End. A single-vertex graph yields an
// empty tree with weight 0.
//
// Error Conditions
//
//	- ErrInvalidGraph          – graph is nil, or Compute got an unknown method.
//	- core.ErrIndexOutOfRange  – Prim root is not a vertex of the graph.
//	- ErrDisconnected          – |V| > 1 and no spanning tree exists.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
