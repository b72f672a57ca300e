// SPDX-License-Identifier: MIT
// Package matrix: degree normalization for diffusion and path counting.
//
// Purpose:
//   - Normalize scales rows or columns by vector^-damping.
//   - DiffusionStep normalizes columns, then rows of the column-normalized
//     matrix (diffusion semantics).
//   - DegreeWeightStep takes both degree vectors from the raw matrix
//     (path-count semantics: every traversed edge is down-weighted by the
//     degrees of both of its endpoints).
//
// Contract:
//   - A zero-degree entry contributes scale 0 (never ±Inf).
//   - damping == 0 is the identity.
//   - Input vectors are never modified.

package matrix

import (
	"fmt"
	"math"
)

// Normalize returns diag(v')·m (axis Rows) or m·diag(v') (axis Columns),
// where v'[i] = vector[i]^-damping and infinite results are replaced by 0.
// With damping == 0 it returns m unchanged. Neither m nor vector is mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadAxis.
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func Normalize(m Matrix, vector []float64, axis Axis, damping float64) (Matrix, error) {
	out, err := normalize(m, vector, axis, damping, true)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	return out, nil
}

// normalize implements Normalize; with copy=false the scaling happens in m.
func normalize(m Matrix, vector []float64, axis Axis, damping float64, copy bool) (Matrix, error) {
	// Stage 1 (Validate): nil, axis, vector length.
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	var n int
	switch axis {
	case Rows:
		n = m.Rows()
	case Columns:
		n = m.Cols()
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadAxis, int(axis))
	}
	if err := ValidateVecLen(vector, n); err != nil {
		return nil, err
	}
	if damping == 0 {
		return m, nil
	}

	// Stage 2 (Prepare): damped inverse degrees on a private copy.
	scale := make([]float64, n)
	for i, v := range vector {
		s := math.Pow(v, -damping)
		if math.IsInf(s, 0) {
			s = 0
		}
		scale[i] = s
	}

	// Stage 3 (Apply).
	out := m
	if copy {
		out = m.Clone()
	}
	switch out.(type) {
	case *Dense, *Sparse:
	default:
		out = ToDense(out)
	}
	scaleInPlace(out, scale, axis)

	return out, nil
}

// DiffusionStep returns the degree-damped transition matrix of m:
// columns are scaled by colSums^-columnDamping first, then rows by the row
// sums of that intermediate raised to -rowDamping. With rowDamping == 1 the
// result is row-stochastic (rows with no edges stay zero).
//
// copy=true never touches m; copy=false reuses m's storage.
//
// Errors: anything CopyArray rejects.
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func DiffusionStep(m Matrix, rowDamping, columnDamping float64, copy bool) (Matrix, error) {
	out, err := CopyArray(m, copy)
	if err != nil {
		return nil, matrixErrorf(opDiffusionStep, err)
	}
	if columnDamping != 0 {
		if out, err = normalize(out, out.ColSums(), Columns, columnDamping, false); err != nil {
			return nil, matrixErrorf(opDiffusionStep, err)
		}
	}
	if rowDamping != 0 {
		if out, err = normalize(out, out.RowSums(), Rows, rowDamping, false); err != nil {
			return nil, matrixErrorf(opDiffusionStep, err)
		}
	}

	return out, nil
}

// DegreeWeightStep returns D_r^-rowDamping · m · D_c^-columnDamping where
// D_r and D_c are the row and column sums of the unnormalized m.
//
// Errors: anything CopyArray rejects.
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func DegreeWeightStep(m Matrix, rowDamping, columnDamping float64, copy bool) (Matrix, error) {
	out, err := CopyArray(m, copy)
	if err != nil {
		return nil, matrixErrorf(opDegreeWeightStep, err)
	}
	rowSums, colSums := out.RowSums(), out.ColSums()
	if out, err = normalize(out, colSums, Columns, columnDamping, false); err != nil {
		return nil, matrixErrorf(opDegreeWeightStep, err)
	}
	if out, err = normalize(out, rowSums, Rows, rowDamping, false); err != nil {
		return nil, matrixErrorf(opDegreeWeightStep, err)
	}

	return out, nil
}

// CopyArray validates m and returns it as float64 storage of the same
// variant: a fresh copy when copy is true, m itself otherwise.
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//   - ErrNaNInf when a Dense matrix holds NaN or ±Inf.
//   - ErrEmptyRows when the matrix has no entries to address (zero rows or
//     zero columns).
//
// Ragged input never reaches this point: FromRows rejects it with
// ErrRaggedRows.
func CopyArray(m Matrix, copy bool) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopyArray, err)
	}
	if _, ok := m.(*Sparse); !ok {
		if err := ValidateFinite(m); err != nil {
			return nil, matrixErrorf(opCopyArray, err)
		}
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opCopyArray, ErrEmptyRows)
	}
	if copy {
		return m.Clone(), nil
	}

	return m, nil
}

// AutoConvert returns m as Dense when its density is at least threshold and
// as Sparse otherwise. The boundary (density == threshold) is Dense, so a
// threshold of 0 always yields Dense. Numeric content is unchanged.
func AutoConvert(m Matrix, threshold float64) Matrix {
	if Density(m) >= threshold {
		return ToDense(m)
	}

	return ToSparse(m)
}
