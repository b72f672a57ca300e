// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hetmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{1, 2}, {0, 3}}

	cases := []struct {
		name    string
		vector  []float64
		axis    matrix.Axis
		damping float64
		want    [][]float64
	}{
		{"rows half", []float64{4, 0}, matrix.Rows, 0.5, [][]float64{{0.5, 1}, {0, 0}}},
		{"columns full", []float64{2, 4}, matrix.Columns, 1, [][]float64{{0.5, 0.5}, {0, 0.75}}},
		{"zero damping is identity", []float64{0, 0}, matrix.Rows, 0, rows},
		{"negative damping amplifies", []float64{2, 3}, matrix.Rows, -1, [][]float64{{2, 4}, {0, 9}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for name, m := range bothVariants(t, rows) {
				vector := append([]float64(nil), tc.vector...)
				got, err := matrix.Normalize(m, vector, tc.axis, tc.damping)
				require.NoError(t, err, name)
				requireClose(t, tc.want, got)
				require.Equal(t, tc.vector, vector, "vector must not be mutated")
				requireClose(t, rows, m)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()
	m := mustRows(t, [][]float64{{1, 2}})

	_, err := matrix.Normalize(m, []float64{1, 2}, matrix.Rows, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Normalize(m, []float64{1}, matrix.Axis(7), 1)
	require.ErrorIs(t, err, matrix.ErrBadAxis)
	_, err = matrix.Normalize(nil, nil, matrix.Rows, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// gad is the GaD adjacency of the disease–gene example (genes × diseases).
var gad = [][]float64{{0, 1}, {0, 1}, {1, 0}, {0, 1}, {0, 0}, {1, 1}, {0, 0}}

func TestDiffusionStep(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		row, column float64
		want        [][]float64
	}{
		{"row stochastic", 1, 0, [][]float64{{0, 1}, {0, 1}, {1, 0}, {0, 1}, {0, 0}, {0.5, 0.5}, {0, 0}}},
		{"column stochastic", 0, 1, [][]float64{{0, 0.25}, {0, 0.25}, {0.5, 0}, {0, 0.25}, {0, 0}, {0.5, 0.25}, {0, 0}}},
		// Rows are normalized after columns: STAT3 row sums to 0.75 once columns are scaled.
		{"columns then rows", 1, 1, [][]float64{{0, 1}, {0, 1}, {1, 0}, {0, 1}, {0, 0}, {2.0 / 3, 1.0 / 3}, {0, 0}}},
		{"identity", 0, 0, gad},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for name, m := range bothVariants(t, gad) {
				got, err := matrix.DiffusionStep(m, tc.row, tc.column, true)
				require.NoError(t, err, name)
				requireClose(t, tc.want, got)
				requireClose(t, gad, m)
			}
		})
	}
}

func TestDiffusionStep_RowStochasticForAnyColumnDamping(t *testing.T) {
	t.Parallel()
	weighted := [][]float64{{0, 2, 1}, {3, 0, 0}, {0, 0, 0}, {1, 1, 4}}
	for _, column := range []float64{0, 0.3, 0.5, 1, 2.5} {
		for _, rows := range [][][]float64{gad, weighted} {
			for name, m := range bothVariants(t, rows) {
				got, err := matrix.DiffusionStep(m, 1, column, true)
				require.NoError(t, err, name)
				for i, sum := range got.RowSums() {
					want := 1.0
					if len(nonZero(rows[i])) == 0 {
						want = 0
					}
					require.InDelta(t, want, sum, 1e-7, "%s column damping %v row %d", name, column, i)
				}
			}
		}
	}
}

// nonZero returns the nonzero values of row.
func nonZero(row []float64) []float64 {
	var out []float64
	for _, v := range row {
		if v != 0 {
			out = append(out, v)
		}
	}

	return out
}

func TestDiffusionStep_InPlace(t *testing.T) {
	t.Parallel()
	m := mustRows(t, gad)
	got, err := matrix.DiffusionStep(m, 1, 0, false)
	require.NoError(t, err)
	require.Same(t, m, got.(*matrix.Dense))
	v, _ := m.At(5, 0)
	require.Equal(t, 0.5, v)
}

func TestDegreeWeightStep(t *testing.T) {
	t.Parallel()
	h := 1 / math.Sqrt2
	want := [][]float64{{0, 0.5}, {0, 0.5}, {h, 0}, {0, 0.5}, {0, 0}, {0.5, 0.5 * h}, {0, 0}}

	for name, m := range bothVariants(t, gad) {
		got, err := matrix.DegreeWeightStep(m, 0.5, 0.5, true)
		require.NoError(t, err, name)
		requireClose(t, want, got)
	}
}

func TestCopyArray(t *testing.T) {
	t.Parallel()

	_, err := matrix.CopyArray(nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.CopyArray(nilDense, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.CopyArray(mustRows(t, [][]float64{{1, math.NaN()}}), true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.CopyArray(mustRows(t, [][]float64{{math.Inf(-1)}}), true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.CopyArray(mustRows(t, nil), true)
	require.ErrorIs(t, err, matrix.ErrEmptyRows)

	src := mustRows(t, [][]float64{{1, 2}})
	cp, err := matrix.CopyArray(src, true)
	require.NoError(t, err)
	require.NotSame(t, src, cp.(*matrix.Dense))
	same, err := matrix.CopyArray(src, false)
	require.NoError(t, err)
	require.Same(t, src, same.(*matrix.Dense))

	sp, err := matrix.CopyArray(matrix.ToSparse(src), true)
	require.NoError(t, err)
	require.IsType(t, &matrix.Sparse{}, sp)
}

func TestAutoConvert(t *testing.T) {
	t.Parallel()
	// Density exactly 0.5.
	rows := [][]float64{{1, 0}, {0, 1}}

	for name, m := range bothVariants(t, rows) {
		require.IsType(t, &matrix.Dense{}, matrix.AutoConvert(m, 0.5), name)
		require.IsType(t, &matrix.Dense{}, matrix.AutoConvert(m, 0), name)
		require.IsType(t, &matrix.Sparse{}, matrix.AutoConvert(m, 0.6), name)
		requireClose(t, rows, matrix.AutoConvert(m, 0.6))
	}
}
