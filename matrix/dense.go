// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense is a row-major matrix backed by gonum's mat.Dense.
// A matrix with zero rows or columns carries no backing store (gonum does
// not allow empty Dense values).
type Dense struct {
	r, c int
	m    *mat.Dense // nil iff r == 0 || c == 0
}

// NewDense creates an r×c Dense matrix. A nil data slice yields zeros;
// otherwise data is used row-major and must have length r*c. The slice is
// copied.
//
// Errors: ErrBadShape on negative dimensions or a length mismatch.
// Complexity: O(r*c).
func NewDense(r, c int, data []float64) (*Dense, error) {
	if r < 0 || c < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	if data != nil && len(data) != r*c {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	if r == 0 || c == 0 {
		return &Dense{r: r, c: c}, nil
	}
	var backing []float64
	if data != nil {
		backing = append([]float64(nil), data...)
	}

	return &Dense{r: r, c: c, m: mat.NewDense(r, c, backing)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows.
// Zero rows yield a 0×0 matrix (rejected later by CopyArray).
//
// Errors: ErrRaggedRows when rows differ in length.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(row), c))
		}
		data = append(data, row...)
	}

	return NewDense(len(rows), c, data)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	d, _ := NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.m.Set(i, i, 1)
	}

	return d
}

// denseFromMat wraps a gonum matrix without copying.
func denseFromMat(m *mat.Dense) *Dense {
	r, c := m.Dims()

	return &Dense{r: r, c: c, m: m}
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j).
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}

	return d.m.At(i, j), nil
}

// Set assigns v at (i, j).
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("Dense.%s(%d,%d): %w", opSet, i, j, ErrOutOfRange)
	}
	d.m.Set(i, j, v)

	return nil
}

// RawRow returns row i as a slice aliasing the backing store.
func (d *Dense) RawRow(i int) []float64 { return d.m.RawRowView(i) }

// Mat exposes the backing gonum matrix for interop (nil when empty).
func (d *Dense) Mat() *mat.Dense { return d.m }

// NNZ counts non-zero entries.
// Complexity: O(r*c).
func (d *Dense) NNZ() int {
	n := 0
	d.DoNonZero(func(_, _ int, _ float64) { n++ })

	return n
}

// RowSums returns per-row sums.
// Complexity: O(r*c).
func (d *Dense) RowSums() []float64 {
	out := make([]float64, d.r)
	if d.m == nil {
		return out
	}
	for i := range out {
		out[i] = floats.Sum(d.m.RawRowView(i))
	}

	return out
}

// ColSums returns per-column sums.
// Complexity: O(r*c).
func (d *Dense) ColSums() []float64 {
	out := make([]float64, d.c)
	if d.m == nil {
		return out
	}
	for i := 0; i < d.r; i++ {
		floats.Add(out, d.m.RawRowView(i))
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (d *Dense) Clone() Matrix { return d.clone() }

func (d *Dense) clone() *Dense {
	if d.m == nil {
		return &Dense{r: d.r, c: d.c}
	}

	return denseFromMat(mat.DenseCopyOf(d.m))
}

// DoNonZero calls fn for every non-zero entry in row-major order.
func (d *Dense) DoNonZero(fn func(i, j int, v float64)) {
	if d.m == nil {
		return
	}
	for i := 0; i < d.r; i++ {
		for j, v := range d.m.RawRowView(i) {
			if v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// String renders the matrix row by row for debugging.
func (d *Dense) String() string {
	var b strings.Builder
	if d.m == nil {
		return fmt.Sprintf("Dense(%dx%d)", d.r, d.c)
	}
	for i := 0; i < d.r; i++ {
		b.WriteString(fmt.Sprint(d.m.RawRowView(i)))
		b.WriteByte('\n')
	}

	return b.String()
}
