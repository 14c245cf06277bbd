// SPDX-License-Identifier: MIT
// Package: boruvka/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
//   • Validation order: size first, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the topology cannot be laid out on the given
// graph (e.g. n not divisible by the grid width) or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
