// SPDX-License-Identifier: MIT

package significance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hetmat/matrix"
)

// DegreePair identifies a degree group.
type DegreePair struct {
	Source int
	Target int
}

// GroupStats are the running moments of one degree group. Only positive
// cells are accumulated; the others count towards N as zeros.
type GroupStats struct {
	N      int     // cells, zeros included
	NNZ    int     // cells with a positive value
	MeanNZ float64 // mean of the positive values
	M2     float64 // sum of squared deviations of the positive values from MeanNZ
}

// add accumulates one positive value (Welford's update).
func (s *GroupStats) add(v float64) {
	s.NNZ++
	d := v - s.MeanNZ
	s.MeanNZ += d / float64(s.NNZ)
	s.M2 += d * (v - s.MeanNZ)
}

// Merge combines s and o with the pairwise update of Chan et al. Equal
// means merge without rounding, so a group of identical values keeps M2 0.
func (s GroupStats) Merge(o GroupStats) GroupStats {
	out := GroupStats{N: s.N + o.N, NNZ: s.NNZ + o.NNZ}
	switch {
	case o.NNZ == 0:
		out.MeanNZ, out.M2 = s.MeanNZ, s.M2
	case s.NNZ == 0:
		out.MeanNZ, out.M2 = o.MeanNZ, o.M2
	default:
		na, nb, n := float64(s.NNZ), float64(o.NNZ), float64(out.NNZ)
		d := o.MeanNZ - s.MeanNZ
		out.MeanNZ = s.MeanNZ + d*nb/n
		out.M2 = s.M2 + o.M2 + d*d*na*nb/n
	}

	return out
}

// Aggregate maps degree groups to their running sums.
type Aggregate map[DegreePair]GroupStats

// Merge folds o into a and returns a. Merging is associative and
// commutative up to rounding, so partial aggregates may be combined in any
// order.
func (a Aggregate) Merge(o Aggregate) Aggregate {
	if a == nil {
		a = make(Aggregate, len(o))
	}
	for k, v := range o {
		a[k] = a[k].Merge(v)
	}

	return a
}

// Transform is applied to each nonzero value before it is accumulated.
// It must map zero to zero and keep positive values positive.
type Transform func(float64) float64

// GroupByDegree accumulates the cells of m into degree groups. Row i belongs
// to source degree src[i]; column j to target degree tgt[j]. Zero cells are
// counted without being visited, so sparse matrices stay cheap. Cells that
// are not positive after the transform count as zeros.
func GroupByDegree(m matrix.Matrix, src, tgt []int, transform Transform) (Aggregate, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if len(src) != m.Rows() || len(tgt) != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d matrix, %d source and %d target degrees",
			ErrDegreeLength, m.Rows(), m.Cols(), len(src), len(tgt))
	}

	srcCount := countValues(src)
	tgtCount := countValues(tgt)
	agg := make(Aggregate, len(srcCount)*len(tgtCount))
	for s, ns := range srcCount {
		for t, nt := range tgtCount {
			agg[DegreePair{s, t}] = GroupStats{N: ns * nt}
		}
	}

	m.DoNonZero(func(i, j int, v float64) {
		if transform != nil {
			v = transform(v)
		}
		if v <= 0 {
			return
		}
		k := DegreePair{src[i], tgt[j]}
		g := agg[k]
		g.add(v)
		agg[k] = g
	})

	return agg, nil
}

func countValues(v []int) map[int]int {
	out := make(map[int]int)
	for _, x := range v {
		out[x]++
	}

	return out
}

// Summary describes one degree group.
type Summary struct {
	N    int
	NNZ  int
	Mean float64
	SD   float64 // sample standard deviation
}

// Summarize turns running moments into summaries. A group of a single cell
// has SD 0.
func (a Aggregate) Summarize() map[DegreePair]Summary {
	out := make(map[DegreePair]Summary, len(a))
	for k, g := range a {
		out[k] = g.Summary()
	}

	return out
}

// Summary of a single group. The zeros are pooled with the positive values
// as a second subgroup of mean 0 and no spread.
func (s GroupStats) Summary() Summary {
	sum := Summary{N: s.N, NNZ: s.NNZ}
	if s.N == 0 || s.NNZ == 0 {
		return sum
	}
	n, nnz := float64(s.N), float64(s.NNZ)
	sum.Mean = s.MeanNZ * (nnz / n)
	if s.N > 1 {
		m2 := s.M2 + s.MeanNZ*s.MeanNZ*nnz*(n-nnz)/n
		sum.SD = math.Sqrt(math.Max(m2, 0) / (n - 1))
	}

	return sum
}

// SortedPairs returns the keys of summaries ordered by source then target
// degree.
func SortedPairs(summaries map[DegreePair]Summary) []DegreePair {
	out := make([]DegreePair, 0, len(summaries))
	for k := range summaries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}

		return out[i].Target < out[j].Target
	})

	return out
}
