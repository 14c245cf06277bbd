// SPDX-License-Identifier: MIT

// Package metrics exports Borůvka progress as Prometheus metrics.
//
// A Collector is a boruvka.Observer: pass it with boruvka.WithObserver and
// call RecordResult once Compute returns.
package metrics

import (
	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the Borůvka metrics registered on one Registerer.
type Collector struct {
	// RoundsTotal counts merge rounds started
	RoundsTotal prometheus.Counter

	// EdgesAddedTotal counts edges accepted into spanning trees
	EdgesAddedTotal prometheus.Counter

	// Components is the component count after the latest round
	Components prometheus.Gauge

	// RunsTotal counts completed runs by strategy
	RunsTotal *prometheus.CounterVec

	// TreeWeight is the total weight of the latest completed tree
	TreeWeight prometheus.Gauge
}

// NewCollector creates the metrics and registers them on reg.
// It panics if a metric with the same name is already registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RoundsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "boruvka_rounds_total",
				Help: "Total number of Boruvka merge rounds started",
			},
		),
		EdgesAddedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "boruvka_edges_added_total",
				Help: "Total number of edges accepted into spanning trees",
			},
		),
		Components: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "boruvka_components",
				Help: "Connected components of the tree after the latest round",
			},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boruvka_runs_total",
				Help: "Total number of completed spanning tree computations",
			},
			[]string{"strategy"},
		),
		TreeWeight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "boruvka_tree_weight",
				Help: "Total weight of the latest completed spanning tree",
			},
		),
	}
}

// RoundStarted implements boruvka.Observer.
func (c *Collector) RoundStarted(int) {
	c.RoundsTotal.Inc()
}

// EdgeAdded implements boruvka.Observer.
func (c *Collector) EdgeAdded(int, core.Edge) {
	c.EdgesAddedTotal.Inc()
}

// RoundFinished implements boruvka.Observer.
func (c *Collector) RoundFinished(_ int, components int) {
	c.Components.Set(float64(components))
}

// RecordResult counts a completed run and publishes its tree weight.
func (c *Collector) RecordResult(res *boruvka.Result) {
	if res == nil {
		return
	}
	c.RunsTotal.WithLabelValues(res.Strategy.String()).Inc()
	c.TreeWeight.Set(float64(res.TotalWeight))
	c.Components.Set(1)
}

var _ boruvka.Observer = (*Collector)(nil)
