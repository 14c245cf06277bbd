package core_test

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
)

// ExampleGraph demonstrates creation, mirrored storage and reachability.
func ExampleGraph() {
	// 1) A graph over vertices 0..3.
	g, err := core.NewGraph(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Two edges; each is stored at both endpoints.
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 1)

	nbrs, _ := g.Neighbours(1)
	fmt.Println("neighbours of 1:", nbrs)

	// 3) Vertex 3 is isolated.
	ok, _ := g.Reachable(0, 3)
	fmt.Println("0 reaches 3:", ok)
	fmt.Println("connected:", g.IsConnected())

	// Output:
	// neighbours of 1: [1-(1)- 2 1-(4)- 0]
	// 0 reaches 3: false
	// connected: false
}

// ExampleGraph_Components lists the connected components.
func ExampleGraph_Components() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 4, 2)
	_ = g.AddEdge(1, 2, 3)

	fmt.Println(g.Components())
	// Output: [[0 4] [1 2] [3]]
}
