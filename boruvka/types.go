// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, strategies, functional options, the Observer hook and Result.

package boruvka

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boruvka/core"
	"github.com/rs/zerolog"
)

// Sentinel errors for MST construction.
var (
	// ErrNilGraph indicates Compute received a nil graph.
	ErrNilGraph = errors.New("boruvka: graph is nil")

	// ErrDisconnected indicates the input graph has more than one connected
	// component, so no spanning tree exists.
	ErrDisconnected = errors.New("boruvka: graph is disconnected")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("boruvka: unknown strategy")

	// ErrNoProgress indicates a merge round added no edge, or the round limit
	// was exceeded, before the tree spanned the graph.
	ErrNoProgress = errors.New("boruvka: no progress")
)

// Strategy selects how components are tracked between merge rounds.
type Strategy int

const (
	// StrategyUnionFind keeps components in a disjoint-set forest. Each round
	// every component picks its cheapest outgoing edge and all picks are merged.
	// Time O(E log V).
	StrategyUnionFind Strategy = iota

	// StrategyNaive re-derives components by traversing the tree under
	// construction for every query, sweeping vertices in index order.
	// Slow (O(V·(V+E)) per round) but free of auxiliary state, which makes it
	// a useful oracle for StrategyUnionFind.
	StrategyNaive
)

// String returns the lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyUnionFind:
		return "unionfind"
	case StrategyNaive:
		return "naive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "unionfind" or "naive" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "unionfind":
		return StrategyUnionFind, nil
	case "naive":
		return StrategyNaive, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// Observer receives progress callbacks during Compute.
// Callbacks run synchronously on the computing goroutine.
type Observer interface {
	// RoundStarted is called before a merge round; rounds are numbered from 1.
	RoundStarted(round int)

	// EdgeAdded is called for every edge accepted into the tree, oriented Start < End.
	EdgeAdded(round int, e core.Edge)

	// RoundFinished is called after a round with the number of remaining components.
	RoundFinished(round int, components int)
}

// NopObserver ignores every callback.
type NopObserver struct{}

func (NopObserver) RoundStarted(int) {}

func (NopObserver) EdgeAdded(int, core.Edge) {}

func (NopObserver) RoundFinished(int, int) {}

// Options holds the resolved configuration of a Compute call.
type Options struct {
	// Strategy selects the component-tracking algorithm. Default StrategyUnionFind.
	Strategy Strategy

	// Logger receives debug events per round and per accepted edge. Default zerolog.Nop().
	Logger zerolog.Logger

	// Observer receives progress callbacks. Default NopObserver.
	Observer Observer

	// MaxRounds caps the number of merge rounds; 0 means VertexCount().
	MaxRounds int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with StrategyUnionFind, a no-op logger and observer.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyUnionFind,
		Logger:    zerolog.Nop(),
		Observer:  NopObserver{},
		MaxRounds: 0,
	}
}

// WithStrategy selects the component-tracking strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger installs a zerolog logger for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver installs a progress observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("boruvka: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithMaxRounds caps the number of merge rounds. Panics if n <= 0.
func WithMaxRounds(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("boruvka: WithMaxRounds(%d): must be positive", n))
	}
	return func(o *Options) {
		o.MaxRounds = n
	}
}

// Result is the outcome of Compute.
type Result struct {
	// Tree is a fresh graph with the same vertex count as the input, holding only MST edges.
	Tree *core.Graph

	// Edges lists each tree edge once, oriented Start < End, in the order it was accepted.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64

	// Rounds is the number of merge rounds performed.
	Rounds int

	// Strategy is the strategy that produced this result.
	Strategy Strategy
}
