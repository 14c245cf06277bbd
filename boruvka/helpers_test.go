// SPDX-License-Identifier: MIT
// Package boruvka_test contains fixtures shared by the boruvka tests.

package boruvka_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/core"
	"github.com/stretchr/testify/require"
)

// strategies lists every strategy exercised by table tests.
var strategies = []boruvka.Strategy{boruvka.StrategyUnionFind, boruvka.StrategyNaive}

// demoWeight is the minimum spanning weight of demoGraph:
// 1-2 (1) + 2-3 (2) + 2-4 (2) + 0-1 (5).
const demoWeight = 10

// demoGraph builds the five-vertex demo graph:
//
//	(0,1,5) (0,3,7) (1,3,5) (1,4,3) (2,1,1) (2,3,2) (3,4,8) (4,2,2)
func demoGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range []core.Edge{
		{Start: 0, End: 1, Weight: 5},
		{Start: 0, End: 3, Weight: 7},
		{Start: 1, End: 3, Weight: 5},
		{Start: 1, End: 4, Weight: 3},
		{Start: 2, End: 1, Weight: 1},
		{Start: 2, End: 3, Weight: 2},
		{Start: 3, End: 4, Weight: 8},
		{Start: 4, End: 2, Weight: 2},
	} {
		require.NoError(t, g.InsertEdge(e))
	}

	return g
}

// pathGraph builds 0-1-...-(len(weights)) with the given weights.
func pathGraph(t testing.TB, weights ...int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(weights) + 1)
	require.NoError(t, err)
	for i, w := range weights {
		require.NoError(t, g.AddEdge(i, i+1, w))
	}

	return g
}

// randomConnected builds a connected graph on n vertices from seed: a random
// spanning tree plus extra edges, weights in [-5, 20] with many ties.
func randomConnected(t testing.TB, n int, extra int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(r.Intn(v), v, int64(r.Intn(26)-5)))
	}
	for i := 0; i < extra && n > 1; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, int64(r.Intn(26)-5)))
	}

	return g
}

// sortedEdges returns a canonical copy of edges ordered by (Weight, Start, End).
func sortedEdges(edges []core.Edge) []core.Edge {
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		out[i] = e.Canonical()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}

		return out[i].End < out[j].End
	})

	return out
}

// recorder is an Observer that keeps every callback.
type recorder struct {
	started  []int
	added    []core.Edge
	finished []int // remaining components after each round
}

func (r *recorder) RoundStarted(round int) { r.started = append(r.started, round) }

func (r *recorder) EdgeAdded(_ int, e core.Edge) { r.added = append(r.added, e) }

func (r *recorder) RoundFinished(_ int, components int) {
	r.finished = append(r.finished, components)
}
