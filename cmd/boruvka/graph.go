package main

import (
	"fmt"

	"github.com/katalvlaran/boruvka/builder"
	"github.com/katalvlaran/boruvka/core"
)

const (
	shapeDemo     = "demo"
	shapePath     = "path"
	shapeCycle    = "cycle"
	shapeStar     = "star"
	shapeWheel    = "wheel"
	shapeComplete = "complete"
	shapeGrid     = "grid"
	shapeRandom   = "random"
)

// Default vertex counts per shape when --vertices is 0.
var defaultVertices = map[string]int{
	shapeDemo:     5,
	shapePath:     8,
	shapeCycle:    8,
	shapeStar:     8,
	shapeWheel:    8,
	shapeComplete: 6,
	shapeGrid:     16,
	shapeRandom:   16,
}

// Generated shapes draw weights uniformly from this range.
const (
	minWeight = 1
	maxWeight = 20
)

func validShape(shape string) bool {
	_, ok := defaultVertices[shape]
	return ok
}

// demoEdges is the five-vertex sample graph.
var demoEdges = []core.Edge{
	{Start: 0, End: 1, Weight: 5},
	{Start: 0, End: 3, Weight: 7},
	{Start: 1, End: 3, Weight: 5},
	{Start: 1, End: 4, Weight: 3},
	{Start: 2, End: 1, Weight: 1},
	{Start: 2, End: 3, Weight: 2},
	{Start: 3, End: 4, Weight: 8},
	{Start: 4, End: 2, Weight: 2},
}

// buildInput creates the graph selected by cfg.
func buildInput(cfg Config) (*core.Graph, error) {
	if cfg.Shape == shapeDemo {
		return demoGraph()
	}

	n := cfg.Vertices
	if n == 0 {
		n = defaultVertices[cfg.Shape]
	}

	var ctor builder.Constructor
	switch cfg.Shape {
	case shapePath:
		ctor = builder.Path()
	case shapeCycle:
		ctor = builder.Cycle()
	case shapeStar:
		ctor = builder.Star()
	case shapeWheel:
		ctor = builder.Wheel()
	case shapeComplete:
		ctor = builder.Complete()
	case shapeGrid:
		ctor = builder.Grid(gridCols(n))
	case shapeRandom:
		ctor = builder.RandomConnected(cfg.Density)
	default:
		return nil, fmt.Errorf("shape %q: %w", cfg.Shape, ErrInvalidShape)
	}

	return builder.BuildGraph(n, []builder.BuilderOption{
		builder.WithSeed(cfg.Seed),
		builder.WithUniformWeight(minWeight, maxWeight),
	}, ctor)
}

func demoGraph() (*core.Graph, error) {
	g, err := core.NewGraph(defaultVertices[shapeDemo])
	if err != nil {
		return nil, err
	}
	for _, e := range demoEdges {
		if err = g.InsertEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// gridCols returns the largest divisor of n not above √n, so the grid is as
// square as n allows.
func gridCols(n int) int {
	cols := 1
	for c := 1; c*c <= n; c++ {
		if n%c == 0 {
			cols = c
		}
	}

	return cols
}
