// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hetmat/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute/relative tolerance for float comparisons.
const tol = 1e-8

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// toRows renders any Matrix as [][]float64 for readable assertions.
func toRows(m matrix.Matrix) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
	}
	m.DoNonZero(func(i, j int, v float64) { out[i][j] = v })

	return out
}

// requireClose asserts element-wise closeness and equal shape.
func requireClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.AllClose(mustRows(t, want), got, tol), "want %v\ngot  %v", want, toRows(got))
}

// bothVariants returns the same content as Dense and as Sparse.
func bothVariants(t *testing.T, rows [][]float64) map[string]matrix.Matrix {
	t.Helper()
	d := mustRows(t, rows)

	return map[string]matrix.Matrix{"dense": d, "sparse": matrix.ToSparse(d)}
}
