// SPDX-License-Identifier: MIT

// Package config loads run settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Compression values.
const (
	CompressionGzip = "gzip"
	CompressionNone = "none"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	HetMat         string       `yaml:"hetmat"`
	Damping        float64      `yaml:"damping"`
	DenseThreshold float64      `yaml:"dense_threshold"`
	Workers        int          `yaml:"workers"`
	Permutations   Permutations `yaml:"permutations"`
	Compression    string       `yaml:"compression"`
	ArcsinhScale   bool         `yaml:"arcsinh_scale"`
	LogLevel       string       `yaml:"log_level"`
}

// Permutations configures null-model generation.
type Permutations struct {
	Count      int     `yaml:"count"`
	Multiplier float64 `yaml:"multiplier"`
	Seed       int64   `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HetMat:         "data.hetmat",
		Damping:        0.5,
		DenseThreshold: 0,
		Workers:        4,
		Permutations: Permutations{
			Count:      200,
			Multiplier: 10,
			Seed:       0,
		},
		Compression: CompressionGzip,
		LogLevel:    "info",
	}
}

// Load reads path over Default. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.HetMat == "":
		return fmt.Errorf("%w: hetmat path is empty", ErrInvalid)
	case math.IsNaN(c.Damping) || c.Damping < 0:
		return fmt.Errorf("%w: damping %v is negative", ErrInvalid, c.Damping)
	case math.IsNaN(c.DenseThreshold) || c.DenseThreshold < 0 || c.DenseThreshold > 1:
		return fmt.Errorf("%w: dense_threshold %v outside [0, 1]", ErrInvalid, c.DenseThreshold)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Workers)
	case c.Permutations.Count < 0:
		return fmt.Errorf("%w: permutations.count %d is negative", ErrInvalid, c.Permutations.Count)
	case math.IsNaN(c.Permutations.Multiplier) || c.Permutations.Multiplier < 0:
		return fmt.Errorf("%w: permutations.multiplier %v is negative", ErrInvalid, c.Permutations.Multiplier)
	case c.Compression != CompressionGzip && c.Compression != CompressionNone:
		return fmt.Errorf("%w: compression %q, want %q or %q", ErrInvalid, c.Compression, CompressionGzip, CompressionNone)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// Gzip reports whether output files are compressed.
func (c Config) Gzip() bool { return c.Compression == CompressionGzip }

// Write stores c as YAML at path.
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}
