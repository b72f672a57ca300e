// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"
)

// Sparse is a compressed-sparse-row matrix. Column indices are strictly
// increasing within each row and explicit zeros are never stored.
type Sparse struct {
	r, c    int
	indptr  []int     // len r+1; row i occupies [indptr[i], indptr[i+1])
	indices []int     // column index per stored value
	data    []float64 // stored values, all non-zero
}

// Triplet is one (row, column, value) entry for NewSparse.
type Triplet struct {
	I, J int
	V    float64
}

// NewSparse builds an r×c Sparse matrix from triplets in any order.
// Duplicate coordinates are summed; resulting zeros are dropped.
//
// Errors: ErrBadShape on negative dimensions, ErrOutOfRange on a triplet
// outside the shape.
// Complexity: O(t log t) for t triplets.
func NewSparse(r, c int, entries []Triplet) (*Sparse, error) {
	if r < 0 || c < 0 {
		return nil, matrixErrorf(opNewSparse, ErrBadShape)
	}
	ts := append([]Triplet(nil), entries...)
	for _, t := range ts {
		if t.I < 0 || t.I >= r || t.J < 0 || t.J >= c {
			return nil, matrixErrorf(opNewSparse, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, t.I, t.J))
		}
	}
	sort.Slice(ts, func(a, b int) bool {
		if ts[a].I != ts[b].I {
			return ts[a].I < ts[b].I
		}
		return ts[a].J < ts[b].J
	})

	b := newCSRBuilder(r, c, len(ts))
	for k := 0; k < len(ts); {
		t := ts[k]
		v := t.V
		for k++; k < len(ts) && ts[k].I == t.I && ts[k].J == t.J; k++ {
			v += ts[k].V
		}
		b.push(t.I, t.J, v)
	}

	return b.finish(), nil
}

// csrBuilder appends entries in row-major order.
type csrBuilder struct {
	s   *Sparse
	row int // rows [0,row) are closed
}

func newCSRBuilder(r, c, capHint int) *csrBuilder {
	return &csrBuilder{s: &Sparse{
		r: r, c: c,
		indptr:  make([]int, 1, r+1),
		indices: make([]int, 0, capHint),
		data:    make([]float64, 0, capHint),
	}}
}

// push appends (i, j, v); callers must respect row-major order. Zeros are skipped.
func (b *csrBuilder) push(i, j int, v float64) {
	for b.row < i {
		b.s.indptr = append(b.s.indptr, len(b.s.data))
		b.row++
	}
	if v == 0 {
		return
	}
	b.s.indices = append(b.s.indices, j)
	b.s.data = append(b.s.data, v)
}

func (b *csrBuilder) finish() *Sparse {
	for b.row < b.s.r {
		b.s.indptr = append(b.s.indptr, len(b.s.data))
		b.row++
	}

	return b.s
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// At returns the element at (i, j).
// Complexity: O(log nnz(row i)).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("Sparse.%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}
	lo, hi := s.indptr[i], s.indptr[i+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], j)
	if k < hi && s.indices[k] == j {
		return s.data[k], nil
	}

	return 0, nil
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.data) }

// RowSums returns per-row sums.
// Complexity: O(nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			out[i] += s.data[k]
		}
	}

	return out
}

// ColSums returns per-column sums.
// Complexity: O(nnz).
func (s *Sparse) ColSums() []float64 {
	out := make([]float64, s.c)
	for k, j := range s.indices {
		out[j] += s.data[k]
	}

	return out
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Matrix { return s.clone() }

func (s *Sparse) clone() *Sparse {
	return &Sparse{
		r: s.r, c: s.c,
		indptr:  append([]int(nil), s.indptr...),
		indices: append([]int(nil), s.indices...),
		data:    append([]float64(nil), s.data...),
	}
}

// DoNonZero calls fn for every stored entry in row-major order.
func (s *Sparse) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			fn(i, s.indices[k], s.data[k])
		}
	}
}

// DoRowNonZero calls fn for every stored entry of row i, in column order.
func (s *Sparse) DoRowNonZero(i int, fn func(j int, v float64)) { s.doRow(i, fn) }

// doRow calls fn for every stored entry of row i.
func (s *Sparse) doRow(i int, fn func(j int, v float64)) {
	for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
		fn(s.indices[k], s.data[k])
	}
}

// String renders the stored triplets for debugging.
func (s *Sparse) String() string {
	return fmt.Sprintf("Sparse(%dx%d, nnz=%d)", s.r, s.c, len(s.data))
}

// prune drops stored zeros in place, restoring the no-explicit-zero invariant
// after in-place scaling.
func (s *Sparse) prune() {
	w := 0
	start := 0
	for i := 0; i < s.r; i++ {
		end := s.indptr[i+1]
		for k := start; k < end; k++ {
			if s.data[k] != 0 {
				s.indices[w] = s.indices[k]
				s.data[w] = s.data[k]
				w++
			}
		}
		start = end
		s.indptr[i+1] = w
	}
	s.indices = s.indices[:w]
	s.data = s.data[:w]
}
