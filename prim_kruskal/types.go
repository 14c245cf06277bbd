// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/boruvka/core"
)

// ErrInvalidGraph indicates that the graph is nil or the method name is unknown.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on the resolved options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– Otherwise:     ErrInvalidGraph.
//
// Returns the MST edges (each oriented Start < End), their total weight, and an error.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
