// Package builder provides deterministic, functional-options graph fixtures
// for the MST packages: tests, benchmarks and the demo CLI all build their
// inputs here.
//
// The package offers:
//
//   - BuildGraph(n, opts, cons...): creates a core.Graph over vertices 0..n-1
//     and applies constructors in order.
//   - Topology constructors: Path, Cycle, Star, Wheel, Complete, Grid,
//     RandomSparse, RandomConnected.
//   - Configuration: WithSeed / WithRand for stochastic constructors,
//     WithWeightFn (and WithConstantWeight, WithUniformWeight) for weights.
//   - Weight distributions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same n, options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//   - Composing constructors is safe: core ignores edges that already exist,
//     keeping the first weight.
//
// Example:
//
//	g, err := builder.BuildGraph(16, []builder.BuilderOption{
//		builder.WithSeed(7),
//		builder.WithUniformWeight(1, 20),
//	}, builder.RandomConnected(0.2))
package builder
