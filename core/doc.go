// Package core provides the weighted, undirected Graph used by the MST
// algorithms of this module.
//
// Vertices are the integers 0..VertexCount()-1, fixed when the graph is
// created. Each vertex owns a slice of its incident edges, every one of them
// oriented away from that vertex (Edge.Start == v) and kept sorted by
// (Weight, End). An undirected edge {u,v} is therefore stored twice, as
// (u,v,w) at u and (v,u,w) at v; AddEdge and RemoveEdge always write both
// sides, so the two copies cannot disagree.
//
// Why this layout?
//
//   - O(1) access to "the cheapest edge leaving v": Neighbours(v)[0].
//   - Deterministic ordering: equal weights break ties by the lowest endpoint,
//     so MST outputs are reproducible across runs.
//   - Duplicate (u,v) pairs are rejected silently: re-adding an edge keeps the
//     first weight.
//
// Core Methods:
//
//	// Construction
//	NewGraph(vertexCount int) (*Graph, error)        // O(V)
//
//	// Edge lifecycle
//	AddEdge(start, end int, weight int64) error      // O(deg)
//	InsertEdge(e Edge) error                         // O(deg)
//	RemoveEdge(start, end int) error                 // O(deg), absent edge is a no-op
//	HasEdge(e Edge) bool                             // O(deg(e.Start)), weight ignored
//
//	// Queries
//	Neighbours(v int) ([]Edge, error)                // O(deg), sorted copy
//	Edges() []Edge                                   // O(E log E), each edge once, Start < End
//	Degree(v int) (int, error)                       // O(1)
//	VertexCount() int / EdgeCount() int              // O(1)
//	TotalWeight() int64                              // O(V+E)
//
//	// Reachability (each call is a fresh O(V+E) traversal)
//	DepthFirstSearch(source int, visited *sparsesets.Set) error
//	CountReachable(source int) (int, error)
//	Reachable(source, dest int) (bool, error)
//	IsConnected() bool
//	Components() [][]int
//
//	// Cloning
//	CloneEmpty() *Graph / Clone() *Graph
//
// Traversals use an explicit stack rather than recursion and mark vertices in
// a sparse set (github.com/rhartert/sparsesets).
//
// Errors:
//
//	ErrInvalidVertexCount – NewGraph with vertexCount <= 0
//	ErrIndexOutOfRange    – vertex index outside [0, VertexCount())
//	ErrLoopNotAllowed     – AddEdge(v, v, w)
//	ErrNilVisited         – DepthFirstSearch with a nil visited set
//
// A Graph is not safe for concurrent mutation.
package core
