package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoReport = `Graph:
0: 0-(5)- 1 0-(7)- 3
1: 1-(1)- 2 1-(3)- 4 1-(5)- 0 1-(5)- 3
2: 2-(1)- 1 2-(2)- 3 2-(2)- 4
3: 3-(2)- 2 3-(5)- 1 3-(7)- 0 3-(8)- 4
4: 4-(2)- 2 4-(3)- 1 4-(8)- 3

Boruvka MST:
0: 0-(5)- 1
1: 1-(1)- 2 1-(5)- 0
2: 2-(1)- 1 2-(2)- 3 2-(2)- 4
3: 3-(2)- 2
4: 4-(2)- 2

The total min weight of the MST is: 10
`

func TestRun_DemoReport(t *testing.T) {
	for _, strategy := range []string{"unionfind", "naive"} {
		t.Run(strategy, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strategy = strategy
			cfg.Verify = true

			var out bytes.Buffer
			require.NoError(t, run(cfg, &out, zerolog.Nop()))
			assert.Equal(t, demoReport, out.String())
		})
	}
}

func TestRun_GeneratedShapes(t *testing.T) {
	for shape := range defaultVertices {
		t.Run(shape, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Shape = shape
			cfg.Verify = true

			var out bytes.Buffer
			require.NoError(t, run(cfg, &out, zerolog.Nop()))
			assert.Contains(t, out.String(), "The total min weight of the MST is: ")
		})
	}
}

func TestRun_MetricsLogged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics = true
	cfg.LogFormat = "json"

	var out, logs bytes.Buffer
	require.NoError(t, run(cfg, &out, newLogger(cfg, &logs)))

	assert.Contains(t, logs.String(), `"metric":"boruvka_edges_added_total"`)
	assert.Contains(t, logs.String(), `"metric":"boruvka_runs_total","strategy":"unionfind","value":1`)
	assert.Contains(t, logs.String(), `"message":"spanning tree computed"`)
}

func TestRun_InvalidGraph(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = "wheel"
	cfg.Vertices = 3

	err := run(cfg, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorContains(t, err, "build wheel graph")
}

func TestNewLogger_Level(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGridCols(t *testing.T) {
	assert.Equal(t, 4, gridCols(16))
	assert.Equal(t, 3, gridCols(12))
	assert.Equal(t, 1, gridCols(7))
	assert.Equal(t, 1, gridCols(1))
}
