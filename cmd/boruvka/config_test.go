package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig() error = %v, want nil", err)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"log format", func(c *Config) { c.LogFormat = "text" }, ErrInvalidLogFormat},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, ErrInvalidLogLevel},
		{"strategy", func(c *Config) { c.Strategy = "prim" }, ErrInvalidStrategy},
		{"shape", func(c *Config) { c.Shape = "torus" }, ErrInvalidShape},
		{"vertices", func(c *Config) { c.Vertices = -1 }, ErrInvalidVertices},
		{"density low", func(c *Config) { c.Density = -0.5 }, ErrInvalidDensity},
		{"density high", func(c *Config) { c.Density = 1.5 }, ErrInvalidDensity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := ValidateConfig(&cfg); err != tt.want {
				t.Errorf("ValidateConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BORUVKA_STRATEGY", "naive")
	t.Setenv("BORUVKA_VERIFY", "true")
	t.Setenv("BORUVKA_VERTICES", "12")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "naive", cfg.Strategy)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 12, cfg.Vertices)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Register the keys with t.Setenv first so the test restores them;
	// godotenv never overrides variables that are already set.
	t.Setenv("BORUVKA_SHAPE", "")
	t.Setenv("BORUVKA_SEED", "")
	require.NoError(t, os.Unsetenv("BORUVKA_SHAPE"))
	require.NoError(t, os.Unsetenv("BORUVKA_SEED"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BORUVKA_SHAPE=grid\nBORUVKA_SEED=99\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", cfg.Shape)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("BORUVKA_VERTICES", "many")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestFlagDefaults_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify = true
	vars := flagDefaults(cfg)
	assert.Equal(t, "unionfind", vars["strategy"])
	assert.Equal(t, "true", vars["verify"])
	assert.Equal(t, "0.1", vars["density"])
	assert.Equal(t, "0", vars["vertices"])
}
