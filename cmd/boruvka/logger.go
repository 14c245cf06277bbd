package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the run logger. Console output is human-readable; json
// adds timestamps for log collectors. cfg must already be validated.
func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "json" {
		logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	return logger.Level(level)
}
