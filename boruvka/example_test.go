package boruvka_test

import (
	"fmt"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/core"
)

// ExampleCompute builds the MST of a five-vertex graph.
func ExampleCompute() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(0, 3, 7)
	_ = g.AddEdge(1, 3, 5)
	_ = g.AddEdge(1, 4, 3)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(2, 3, 2)
	_ = g.AddEdge(3, 4, 8)
	_ = g.AddEdge(4, 2, 2)

	res, err := boruvka.Compute(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", res.Edges)
	fmt.Println("weight:", res.TotalWeight, "rounds:", res.Rounds)
	// Output:
	// edges: [0-(5)- 1 1-(1)- 2 2-(2)- 3 2-(2)- 4]
	// weight: 10 rounds: 1
}

// ExampleCompute_naive selects the traversal-based strategy.
func ExampleCompute_naive() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 3, 2)

	res, _ := boruvka.Compute(g, boruvka.WithStrategy(boruvka.StrategyNaive))
	fmt.Println(res.Strategy, res.TotalWeight)
	// Output: naive 6
}

// ExampleCompute_disconnected shows the error for a graph with no spanning tree.
func ExampleCompute_disconnected() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)

	_, err := boruvka.Compute(g)
	fmt.Println(err)
	// Output: Compute: 2 components: boruvka: graph is disconnected
}
