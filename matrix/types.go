// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional float64 array. Values returned by the package
// functions are never mutated by later calls unless a function documents an
// in-place (copy=false) mode.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) on Dense and
// O(log nnz(row)) on Sparse; NNZ, RowSums and ColSums are linear in storage.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// NNZ returns the number of non-zero entries.
	NNZ() int

	// RowSums returns the sum of each row (length Rows()).
	RowSums() []float64

	// ColSums returns the sum of each column (length Cols()).
	ColSums() []float64

	// Clone returns an independent deep copy of the same variant.
	Clone() Matrix

	// DoNonZero calls fn for every non-zero entry in row-major order.
	DoNonZero(fn func(i, j int, v float64))
}

// Axis selects rows or columns for Normalize.
type Axis int

const (
	// Rows scales row i by vector[i] (diag(v)·M).
	Rows Axis = iota
	// Columns scales column j by vector[j] (M·diag(v)).
	Columns
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "unknown"
	}
}
