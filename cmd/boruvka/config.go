package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix scopes environment variables, e.g. BORUVKA_LOG_LEVEL.
const envPrefix = "BORUVKA"

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidStrategy  = errors.New("strategy must be 'unionfind' or 'naive'")
	ErrInvalidShape     = errors.New("shape must be demo, path, cycle, star, wheel, complete, grid or random")
	ErrInvalidVertices  = errors.New("vertices must be zero (shape default) or positive")
	ErrInvalidDensity   = errors.New("density must be in [0,1]")
)

// Config holds the resolved run configuration. Environment variables fill it
// first; command-line flags override individual fields.
type Config struct {
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string  `envconfig:"LOG_FORMAT" default:"console"`
	Strategy  string  `envconfig:"STRATEGY" default:"unionfind"`
	Shape     string  `envconfig:"SHAPE" default:"demo"`
	Vertices  int     `envconfig:"VERTICES" default:"0"`
	Seed      int64   `envconfig:"SEED" default:"1"`
	Density   float64 `envconfig:"DENSITY" default:"0.1"`
	Verify    bool    `envconfig:"VERIFY" default:"false"`
	Metrics   bool    `envconfig:"METRICS" default:"false"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Strategy:  "unionfind",
		Shape:     shapeDemo,
		Vertices:  0,
		Seed:      1,
		Density:   0.1,
	}
}

// LoadConfig reads an optional dotenv file, then BORUVKA_* variables.
// A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if _, err := boruvka.ParseStrategy(cfg.Strategy); err != nil {
		return ErrInvalidStrategy
	}
	if !validShape(cfg.Shape) {
		return ErrInvalidShape
	}
	if cfg.Vertices < 0 {
		return ErrInvalidVertices
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return ErrInvalidDensity
	}

	return nil
}
