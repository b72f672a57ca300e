// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hetmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDense(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewSparse_SumsDuplicatesDropsZeros(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparse(2, 3, []matrix.Triplet{
		{I: 1, J: 2, V: 1}, {I: 0, J: 0, V: 2}, {I: 1, J: 2, V: 3}, {I: 0, J: 1, V: 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.NNZ())
	require.Equal(t, [][]float64{{2, 0, 0}, {0, 0, 4}}, toRows(s))

	v, err := s.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	_, err = s.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewSparse(1, 1, []matrix.Triplet{{I: 0, J: 1, V: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMul_AllVariantPairs(t *testing.T) {
	t.Parallel()
	a := [][]float64{{1, 0, 2}, {0, 3, 0}}
	b := [][]float64{{1, 2}, {0, 1}, {4, 0}}
	want := [][]float64{{9, 2}, {0, 3}}

	for an, am := range bothVariants(t, a) {
		for bn, bm := range bothVariants(t, b) {
			got, err := matrix.Mul(am, bm)
			require.NoError(t, err, an+"×"+bn)
			requireClose(t, want, got)
			_, isSparse := got.(*matrix.Sparse)
			require.Equal(t, an == "sparse" && bn == "sparse", isSparse, an+"×"+bn)
		}
	}

	_, err := matrix.Mul(mustRows(t, a), mustRows(t, a))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, mustRows(t, a))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeHadamardAddSub(t *testing.T) {
	t.Parallel()
	a := [][]float64{{1, 0, 2}, {0, 3, 0}}
	b := [][]float64{{2, 5, 0}, {0, 1, 1}}

	for an, am := range bothVariants(t, a) {
		requireClose(t, [][]float64{{1, 0}, {0, 3}, {2, 0}}, matrix.Transpose(am))
		for bn, bm := range bothVariants(t, b) {
			name := an + "/" + bn

			h, err := matrix.Hadamard(am, bm)
			require.NoError(t, err, name)
			requireClose(t, [][]float64{{2, 0, 0}, {0, 3, 0}}, h)

			s, err := matrix.Add(am, bm)
			require.NoError(t, err, name)
			requireClose(t, [][]float64{{3, 5, 2}, {0, 4, 1}}, s)

			d, err := matrix.Sub(am, bm)
			require.NoError(t, err, name)
			requireClose(t, [][]float64{{-1, -5, 2}, {0, 2, -1}}, d)
		}
	}

	_, err := matrix.Hadamard(mustRows(t, a), matrix.Transpose(mustRows(t, a)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSub_SparseCancellationDropsEntries(t *testing.T) {
	t.Parallel()
	s := matrix.ToSparse(mustRows(t, [][]float64{{1, 2}, {0, 3}}))
	d, err := matrix.Sub(s, s)
	require.NoError(t, err)
	require.Zero(t, d.NNZ())
}

func TestPowerDiagonalZeroDiagonal(t *testing.T) {
	t.Parallel()
	// Path graph 0–1–2.
	rows := [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}

	for name, m := range bothVariants(t, rows) {
		p0, err := matrix.Power(m, 0)
		require.NoError(t, err, name)
		requireClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, p0)

		p2, err := matrix.Power(m, 2)
		require.NoError(t, err, name)
		requireClose(t, [][]float64{{1, 0, 1}, {0, 2, 0}, {1, 0, 1}}, p2)
		require.Equal(t, []float64{1, 2, 1}, matrix.Diagonal(p2))

		p3, err := matrix.Power(m, 3)
		require.NoError(t, err, name)
		requireClose(t, [][]float64{{0, 2, 0}, {2, 0, 2}, {0, 2, 0}}, p3)

		z := matrix.ZeroDiagonal(p2)
		requireClose(t, [][]float64{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}}, z)
		require.Equal(t, []float64{1, 2, 1}, matrix.Diagonal(p2), "input untouched")
	}

	_, err := matrix.Power(mustRows(t, [][]float64{{1, 2}}), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestScaleRowsCols(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{1, 2}, {3, 4}}

	for name, m := range bothVariants(t, rows) {
		r, err := matrix.ScaleRows(m, []float64{2, 0})
		require.NoError(t, err, name)
		requireClose(t, [][]float64{{2, 4}, {0, 0}}, r)
		require.Equal(t, 2, r.NNZ(), name)

		c, err := matrix.ScaleCols(m, []float64{1, 10})
		require.NoError(t, err, name)
		requireClose(t, [][]float64{{1, 20}, {3, 40}}, c)
		requireClose(t, rows, m)

		_, err = matrix.ScaleRows(m, []float64{1})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

func TestSumsDensityConversions(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{1, 0, 0, 2}, {0, 0, 3, 0}}

	for name, m := range bothVariants(t, rows) {
		require.Equal(t, []float64{3, 3}, m.RowSums(), name)
		require.Equal(t, []float64{1, 0, 3, 2}, m.ColSums(), name)
		require.Equal(t, 3, m.NNZ(), name)
		require.InDelta(t, 0.375, matrix.Density(m), tol, name)
		requireClose(t, rows, matrix.ToDense(m))
		requireClose(t, rows, matrix.ToSparse(m))
	}
}

func TestPowElem(t *testing.T) {
	t.Parallel()
	for _, m := range bothVariants(t, [][]float64{{4, 0}, {0, 9}}) {
		requireClose(t, [][]float64{{2, 0}, {0, 3}}, matrix.PowElem(m, 0.5))
		requireClose(t, [][]float64{{4, 0}, {0, 9}}, m)
	}
}

func TestVecMul(t *testing.T) {
	t.Parallel()
	for name, m := range bothVariants(t, [][]float64{{1, 2, 0}, {0, 1, 3}}) {
		got, err := matrix.VecMul([]float64{2, 1}, m)
		require.NoError(t, err, name)
		require.Equal(t, []float64{2, 5, 3}, got, name)

		_, err = matrix.VecMul([]float64{1}, m)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
	}
}

func TestDropBelow(t *testing.T) {
	t.Parallel()
	rows := [][]float64{
		{0.5, -8.67e-17, 0},
		{2.78e-17, 1e-3, -2},
	}
	for name, m := range map[string]matrix.Matrix{
		"dense":  mustRows(t, rows),
		"sparse": matrix.ToSparse(mustRows(t, rows)),
	} {
		require.Equal(t, 2.0, matrix.MaxAbs(m), name)
		got := matrix.DropBelow(m, 1e-12*matrix.MaxAbs(m))
		requireClose(t, [][]float64{{0.5, 0, 0}, {0, 1e-3, 0}}, got)
		require.Equal(t, 2, got.NNZ(), name)
		require.IsType(t, m, got, name)
		require.Equal(t, 5, m.NNZ(), name)
	}
	require.Zero(t, matrix.MaxAbs(mustRows(t, [][]float64{{0, 0}})))
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 1e6}, {0, -3}})
	require.True(t, matrix.AllClose(a, matrix.ToSparse(a), 0))
	require.True(t, matrix.AllClose(a, mustRows(t, [][]float64{{1 + 1e-10, 1e6 + 1e-4}, {0, -3}}), 1e-9))
	require.False(t, matrix.AllClose(a, mustRows(t, [][]float64{{1.1, 1e6}, {0, -3}}), 1e-9))
	require.False(t, matrix.AllClose(a, mustRows(t, [][]float64{{1, 1e6}}), 1e-9))
}
