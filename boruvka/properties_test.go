package boruvka_test

import (
	"testing"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/prim_kruskal"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSpanningTreeProperties validates Compute on small random connected graphs.
func TestSpanningTreeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: the tree has V-1 edges and spans the graph
	properties.Property("tree spans with V-1 edges", prop.ForAll(
		func(n, extra int, seed int64) bool {
			g := randomConnected(t, n, extra, seed)
			for _, s := range strategies {
				res, err := boruvka.Compute(g, boruvka.WithStrategy(s))
				if err != nil {
					return false
				}
				if len(res.Edges) != n-1 || res.Tree.EdgeCount() != n-1 || !res.Tree.IsConnected() {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 20),
		gen.Int64(),
	))

	// Property: both strategies weigh the same as Kruskal
	properties.Property("weight equals Kruskal", prop.ForAll(
		func(n, extra int, seed int64) bool {
			g := randomConnected(t, n, extra, seed)
			_, want, err := prim_kruskal.Kruskal(g)
			if err != nil {
				return false
			}
			for _, s := range strategies {
				res, err := boruvka.Compute(g, boruvka.WithStrategy(s))
				if err != nil || res.TotalWeight != want {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 20),
		gen.Int64(),
	))

	// Property: every tree edge exists in the source with the same weight
	properties.Property("tree edges come from the source", prop.ForAll(
		func(n, extra int, seed int64) bool {
			g := randomConnected(t, n, extra, seed)
			res, err := boruvka.Compute(g, boruvka.WithStrategy(boruvka.StrategyNaive))
			if err != nil {
				return false
			}
			for _, e := range res.Edges {
				nbrs, err := g.Neighbours(e.Start)
				if err != nil {
					return false
				}
				ok := false
				for _, ne := range nbrs {
					if ne == e {
						ok = true
						break
					}
				}
				if !ok {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 8),
		gen.IntRange(0, 20),
		gen.Int64(),
	))

	// Property: union-find needs at most ceil(log2 V) rounds
	properties.Property("round count is logarithmic", prop.ForAll(
		func(n, extra int, seed int64) bool {
			g := randomConnected(t, n, extra, seed)
			res, err := boruvka.Compute(g)
			if err != nil {
				return false
			}
			limit := 0
			for c := 1; c < n; c *= 2 {
				limit++
			}
			return res.Rounds <= limit
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 20),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
