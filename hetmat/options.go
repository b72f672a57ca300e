// SPDX-License-Identifier: MIT

package hetmat

import (
	"github.com/katalvlaran/hetmat/matrix"
	"go.uber.org/zap"
)

// Option configures a HetMat.
type Option func(*config)

type config struct {
	logger         *zap.Logger
	compress       bool
	denseThreshold float64
}

func defaultConfig() config {
	return config{
		logger:         zap.NewNop(),
		compress:       true,
		denseThreshold: matrix.DefaultDenseThreshold,
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCompression selects gzip (true, default) or plain TSV for files this
// HetMat writes. Reads accept both.
func WithCompression(gz bool) Option {
	return func(c *config) { c.compress = gz }
}

// WithDenseThreshold sets the density at or above which matrices read from
// disk are returned dense. Panics outside [0, 1], like
// matrix.WithDenseThreshold.
func WithDenseThreshold(t float64) Option {
	matrix.WithDenseThreshold(t) // range check

	return func(c *config) { c.denseThreshold = t }
}
