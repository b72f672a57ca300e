// SPDX-License-Identifier: MIT

package significance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hetmat/dwpc"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
	"gonum.org/v1/gonum/floats"
)

// ErrDegreeLength is returned when a degree vector does not match the
// matrix it labels.
var ErrDegreeLength = errors.New("significance: degree vector length mismatch")

// Degrees holds the source and target degree of every row and column of a
// metapath's DWPC matrix.
type Degrees struct {
	Rows   []string
	Cols   []string
	Source []int // degree on the first metaedge
	Target []int // degree on the last metaedge
}

// ComputeDegrees reads the first and last metaedge of mp from src. Call it
// on the unpermuted network; permutations preserve degrees.
func ComputeDegrees(src dwpc.Source, mp *hetnet.MetaPath) (*Degrees, error) {
	if src == nil || mp == nil {
		return nil, dwpc.ErrNilSource
	}
	rows, _, first, err := src.AdjacencyMatrix(mp.Edge(0))
	if err != nil {
		return nil, fmt.Errorf("significance: degrees %s: %w", mp.Abbrev(), err)
	}
	_, cols, last, err := src.AdjacencyMatrix(mp.Edge(mp.Len() - 1))
	if err != nil {
		return nil, fmt.Errorf("significance: degrees %s: %w", mp.Abbrev(), err)
	}

	return &Degrees{
		Rows:   rows,
		Cols:   cols,
		Source: toInts(first.RowSums()),
		Target: toInts(last.ColSums()),
	}, nil
}

func toInts(v []float64) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(math.Round(x))
	}

	return out
}

// Mean is the mean of every entry of m, zeros included.
func Mean(m matrix.Matrix) float64 {
	n := m.Rows() * m.Cols()
	if n == 0 {
		return 0
	}

	return floats.Sum(m.RowSums()) / float64(n)
}

// ArcsinhScale returns a transform v -> asinh(v/mean). It maps zero to zero
// and compresses the heavy right tail of DWPC values. A non-positive mean
// yields the identity.
func ArcsinhScale(mean float64) Transform {
	if mean <= 0 {
		return nil
	}

	return func(v float64) float64 { return math.Asinh(v / mean) }
}
