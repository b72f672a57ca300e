// SPDX-License-Identifier: MIT
// Package matrix: functional options for adjacency builders.
//
// Conventions:
//   - Option constructors panic only on nonsensical values (programmer error).
//   - Options are resolved once per call via gatherOptions; defaults live in
//     the Default* constants below (single source of truth).

package matrix

import "math"

const (
	// DefaultDenseThreshold is the density at or above which adjacency
	// matrices are returned Dense. 0 means always Dense.
	DefaultDenseThreshold = 0.0

	// DefaultBinary clips multiplicities to 1 when true.
	DefaultBinary = false
)

const panicDenseThresholdInvalid = "matrix: WithDenseThreshold: threshold must be within [0, 1]"

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	denseThreshold float64
	binary         bool
}

// WithDenseThreshold sets the density at or above which the adjacency matrix
// is Dense; below it the matrix is Sparse. Panics unless 0 ≤ t ≤ 1.
//
// Example:
//
//	matrix.WithDenseThreshold(0.7) // keep sparse unless ≥70% non-zero
func WithDenseThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(panicDenseThresholdInvalid)
	}

	return func(o *Options) { o.denseThreshold = t }
}

// WithBinary clips every entry to 1 (presence only).
func WithBinary() Option {
	return func(o *Options) { o.binary = true }
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// DenseThreshold returns the effective density threshold.
func (o Options) DenseThreshold() float64 { return o.denseThreshold }

// Binary reports whether multiplicities are clipped to 1.
func (o Options) Binary() bool { return o.binary }

func gatherOptions(user ...Option) Options {
	o := Options{denseThreshold: DefaultDenseThreshold, binary: DefaultBinary}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
