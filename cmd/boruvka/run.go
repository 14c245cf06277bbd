package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/metrics"
	"github.com/katalvlaran/boruvka/prim_kruskal"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

// ErrVerifyMismatch indicates Borůvka and Kruskal disagree on the tree weight.
var ErrVerifyMismatch = errors.New("boruvka and kruskal weights differ")

// run builds the input graph, computes its MST and writes the report to out.
// cfg must already be validated.
func run(cfg Config, out io.Writer, logger zerolog.Logger) error {
	strategy, err := boruvka.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	g, err := buildInput(cfg)
	if err != nil {
		return fmt.Errorf("build %s graph: %w", cfg.Shape, err)
	}
	logger.Info().
		Str("shape", cfg.Shape).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("input graph ready")

	opts := []boruvka.Option{
		boruvka.WithStrategy(strategy),
		boruvka.WithLogger(logger),
	}
	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
		opts = append(opts, boruvka.WithObserver(collector))
	}

	res, err := boruvka.Compute(g, opts...)
	if err != nil {
		return err
	}
	if collector != nil {
		collector.RecordResult(res)
	}
	logger.Info().
		Str("strategy", res.Strategy.String()).
		Int("rounds", res.Rounds).
		Int64("weight", res.TotalWeight).
		Msg("spanning tree computed")

	if cfg.Verify {
		_, want, err := prim_kruskal.Kruskal(g)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if want != res.TotalWeight {
			return fmt.Errorf("verify: boruvka %d, kruskal %d: %w", res.TotalWeight, want, ErrVerifyMismatch)
		}
		logger.Info().Int64("weight", want).Msg("verified against kruskal")
	}

	if err = printReport(out, g, res.Tree, res.TotalWeight); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if reg != nil {
		return logMetrics(reg, logger)
	}

	return nil
}

// logMetrics writes one info line per gathered sample.
func logMetrics(reg prometheus.Gatherer, logger zerolog.Logger) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := logger.Info().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Float64("value", sampleValue(mf.GetType(), m)).Msg("metric")
		}
	}

	return nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
