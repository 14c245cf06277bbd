// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/boruvka/core"
	"github.com/stretchr/testify/require"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
	Weight8 = 8
)

// mustGraph creates a graph with n vertices or fails the test.
func mustGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err, "NewGraph(%d)", n)

	return g
}

// demoGraph builds the five-vertex graph used throughout the module docs:
//
//	(0,1,5) (0,3,7) (1,3,5) (1,4,3) (2,1,1) (2,3,2) (3,4,8) (4,2,2)
func demoGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := mustGraph(t, 5)
	for _, e := range []core.Edge{
		{Start: V0, End: V1, Weight: Weight5},
		{Start: V0, End: V3, Weight: Weight7},
		{Start: V1, End: V3, Weight: Weight5},
		{Start: V1, End: V4, Weight: Weight3},
		{Start: V2, End: V1, Weight: Weight1},
		{Start: V2, End: V3, Weight: Weight2},
		{Start: V3, End: V4, Weight: Weight8},
		{Start: V4, End: V2, Weight: Weight2},
	} {
		require.NoError(t, g.InsertEdge(e), "InsertEdge(%v)", e)
	}

	return g
}

// requireSymmetric asserts every stored edge has its mirror with the same weight.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for v := 0; v < g.VertexCount(); v++ {
		nbrs, err := g.Neighbours(v)
		require.NoError(t, err)
		for _, e := range nbrs {
			require.Equal(t, v, e.Start, "edge %v stored at vertex %d", e, v)
			mirror, err := g.Neighbours(e.End)
			require.NoError(t, err)
			require.Contains(t, mirror, e.Opposite(), "mirror of %v", e)
		}
	}
}
