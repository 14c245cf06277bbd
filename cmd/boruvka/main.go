// Command boruvka builds a weighted graph, computes its Minimum Spanning Tree
// with Borůvka's algorithm and prints the graph, the tree and its weight.
//
// Settings come from BORUVKA_* environment variables (optionally loaded from
// a .env file) and can be overridden by flags.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
)

type cli struct {
	Strategy  string  `help:"Component tracking strategy (unionfind|naive)" default:"${strategy}"`
	Shape     string  `help:"Input graph (demo|path|cycle|star|wheel|complete|grid|random)" default:"${shape}"`
	Vertices  int     `help:"Vertex count for generated shapes; 0 uses the shape default" default:"${vertices}"`
	Seed      int64   `help:"Seed for generated weights and random shapes" default:"${seed}"`
	Density   float64 `help:"Extra edge probability for the random shape" default:"${density}"`
	Verify    bool    `help:"Cross-check the tree weight against Kruskal" default:"${verify}"`
	Metrics   bool    `help:"Log Prometheus metrics gathered during the run" default:"${metrics}"`
	LogLevel  string  `help:"Log level (debug|info|warn|error)" default:"${log_level}"`
	LogFormat string  `help:"Log format (console|json)" default:"${log_format}"`
}

// config returns the flag values as a Config.
func (c cli) config() Config {
	return Config{
		LogLevel:  c.LogLevel,
		LogFormat: c.LogFormat,
		Strategy:  c.Strategy,
		Shape:     c.Shape,
		Vertices:  c.Vertices,
		Seed:      c.Seed,
		Density:   c.Density,
		Verify:    c.Verify,
		Metrics:   c.Metrics,
	}
}

// flagDefaults exposes env-derived values as kong interpolation variables,
// so flags default to the environment and override it when given.
func flagDefaults(cfg Config) kong.Vars {
	return kong.Vars{
		"strategy":   cfg.Strategy,
		"shape":      cfg.Shape,
		"vertices":   strconv.Itoa(cfg.Vertices),
		"seed":       strconv.FormatInt(cfg.Seed, 10),
		"density":    strconv.FormatFloat(cfg.Density, 'g', -1, 64),
		"verify":     strconv.FormatBool(cfg.Verify),
		"metrics":    strconv.FormatBool(cfg.Metrics),
		"log_level":  cfg.LogLevel,
		"log_format": cfg.LogFormat,
	}
}

func main() {
	envCfg, err := LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "boruvka:", err)
		os.Exit(1)
	}

	var params cli
	kong.Parse(&params,
		kong.Name("boruvka"),
		kong.Description("Minimum Spanning Trees with Borůvka's algorithm."),
		flagDefaults(envCfg),
	)

	cfg := params.config()
	if err = ValidateConfig(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "boruvka: invalid config:", err)
		os.Exit(2)
	}

	logger := newLogger(cfg, os.Stderr)
	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
