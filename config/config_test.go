// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hetmat/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0.5, cfg.Damping)
	require.True(t, cfg.Gzip())
	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hetmat.yaml")
	body := `
hetmat: /data/hetionet.hetmat
damping: 0.4
workers: 8
permutations:
  count: 50
  seed: 7
compression: none
arcsinh_scale: true
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/data/hetionet.hetmat", cfg.HetMat)
	require.Equal(t, 0.4, cfg.Damping)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 50, cfg.Permutations.Count)
	require.Equal(t, int64(7), cfg.Permutations.Seed)
	require.Equal(t, 10.0, cfg.Permutations.Multiplier) // default kept
	require.False(t, cfg.Gzip())
	require.True(t, cfg.ArcsinhScale)
}

func TestLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hetmat.yaml")
	want := config.Default()
	want.Workers = 2
	want.DenseThreshold = 0.7
	require.NoError(t, want.Write(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("damping: [1"), 0o644))
	_, err = config.Load(bad)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := map[string]func(*config.Config){
		"empty path":        func(c *config.Config) { c.HetMat = "" },
		"negative damping":  func(c *config.Config) { c.Damping = -0.1 },
		"threshold above 1": func(c *config.Config) { c.DenseThreshold = 1.5 },
		"no workers":        func(c *config.Config) { c.Workers = 0 },
		"negative count":    func(c *config.Config) { c.Permutations.Count = -1 },
		"negative mult":     func(c *config.Config) { c.Permutations.Multiplier = -2 },
		"compression":       func(c *config.Config) { c.Compression = "zstd" },
		"log level":         func(c *config.Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
