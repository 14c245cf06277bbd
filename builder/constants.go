// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.

package builder

// Method names used to prefix errors with the constructor name.
const (
	methodPath            = "Path"
	methodCycle           = "Cycle"
	methodStar            = "Star"
	methodWheel           = "Wheel"
	methodComplete        = "Complete"
	methodGrid            = "Grid"
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
)

// Minimum vertex counts.
const (
	minGraphVertices = 1

	// A path of fewer than 2 vertices has no edges.
	minPathNodes = 2

	// A cycle needs 3 vertices to avoid loops and parallel edges.
	minCycleNodes = 3

	// One hub plus at least one leaf.
	minStarNodes = 2

	// A wheel's outer cycle has n-1 ≥ 3 vertices.
	minWheelNodes = 4

	minCompleteNodes = 1
	minGridDim       = 1
	minRandomNodes   = 1
)

// Probability bounds for RandomSparse and RandomConnected, inclusive.
const (
	probMin = 0.0
	probMax = 1.0
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1
