// SPDX-License-Identifier: MIT
//
// File: boruvka.go
// Role: Public entry points (Compute, MST), input validation and the state
//       shared by both strategies.

package boruvka

import (
	"fmt"

	"github.com/katalvlaran/boruvka/core"
	"github.com/rs/zerolog"
)

const methodCompute = "Compute"

// Compute builds a Minimum Spanning Tree of g with Borůvka's algorithm.
//
// Steps:
//  1. Validate: g != nil and g has exactly one connected component.
//     A disconnected graph fails fast with ErrDisconnected instead of looping.
//  2. Resolve options (strategy, logger, observer, round limit).
//  3. Run the selected strategy against a fresh, empty tree graph.
//
// The source graph is never mutated. Equal-weight edges are ordered by
// (lower endpoint, higher endpoint), which makes the tree unique: both
// strategies, and Kruskal over core.Graph.Edges(), return the same edge set.
//
// Errors:
//   - ErrNilGraph, ErrDisconnected, ErrUnknownStrategy, ErrNoProgress.
//
// Complexity: see StrategyUnionFind and StrategyNaive.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if comps := g.Components(); len(comps) > 1 {
		return nil, fmt.Errorf("%s: %d components: %w", methodCompute, len(comps), ErrDisconnected)
	}

	// 2. Resolve options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxRounds == 0 {
		o.MaxRounds = g.VertexCount()
	}

	// 3. Dispatch.
	r := newRun(g, o)
	var err error
	switch o.Strategy {
	case StrategyUnionFind:
		err = r.unionFind()
	case StrategyNaive:
		err = r.naive()
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodCompute, o.Strategy, ErrUnknownStrategy)
	}
	if err != nil {
		return nil, err
	}

	r.log.Debug().
		Int("edges", len(r.res.Edges)).
		Int64("weight", r.res.TotalWeight).
		Int("rounds", r.res.Rounds).
		Msg("spanning tree complete")

	return r.res, nil
}

// MST returns only the tree graph of Compute(g, opts...).
func MST(g *core.Graph, opts ...Option) (*core.Graph, error) {
	res, err := Compute(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Tree, nil
}

// run carries the state of one Compute call.
type run struct {
	src  *core.Graph
	opts Options
	log  zerolog.Logger
	res  *Result
}

func newRun(g *core.Graph, o Options) *run {
	n := g.VertexCount()

	return &run{
		src:  g,
		opts: o,
		log:  o.Logger.With().Str("strategy", o.Strategy.String()).Int("vertices", n).Logger(),
		res: &Result{
			Tree:     g.CloneEmpty(),
			Edges:    make([]core.Edge, 0, n-1),
			Strategy: o.Strategy,
		},
	}
}

// startRound opens a round, failing once the round limit is passed.
func (r *run) startRound(round int) error {
	if round > r.opts.MaxRounds {
		return fmt.Errorf("%s: round limit %d reached with %d of %d edges: %w",
			methodCompute, r.opts.MaxRounds, len(r.res.Edges), r.src.VertexCount()-1, ErrNoProgress)
	}
	r.res.Rounds = round
	r.opts.Observer.RoundStarted(round)

	return nil
}

// finishRound closes a round; added is the number of edges accepted in it.
func (r *run) finishRound(round, added int) error {
	components := r.src.VertexCount() - len(r.res.Edges)
	r.opts.Observer.RoundFinished(round, components)
	r.log.Debug().Int("round", round).Int("added", added).Int("components", components).Msg("round finished")
	if added == 0 {
		return fmt.Errorf("%s: round %d added no edge: %w", methodCompute, round, ErrNoProgress)
	}

	return nil
}

// accept adds e to the tree and records it.
func (r *run) accept(round int, e core.Edge) error {
	e = e.Canonical()
	if err := r.res.Tree.InsertEdge(e); err != nil {
		return fmt.Errorf("%s: accept %v: %w", methodCompute, e, err)
	}
	r.res.Edges = append(r.res.Edges, e)
	r.res.TotalWeight += e.Weight
	r.opts.Observer.EdgeAdded(round, e)
	r.log.Debug().Int("round", round).Int("u", e.Start).Int("v", e.End).Int64("w", e.Weight).Msg("edge added")

	return nil
}

// lighter orders candidate edges across components: by Weight, then by the
// lower endpoint, then by the higher one. Every edge gets a distinct key.
func lighter(a, b core.Edge) bool {
	a, b = a.Canonical(), b.Canonical()
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}

	return a.End < b.End
}
