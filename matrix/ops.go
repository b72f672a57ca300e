// SPDX-License-Identifier: MIT
// Package matrix: structural and algebraic operations over Matrix.
//
// Purpose:
//   - One entry point per operation; variant-specific kernels behind a type switch.
//   - Dense×Dense products delegate to gonum (BLAS-backed).
//   - Sparse kernels are CSR row sweeps with a dense accumulator.
//
// Contract:
//   - Inputs are never mutated.
//   - Errors are the package sentinels wrapped with the operation name.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Mul returns a·b. Sparse×Sparse yields Sparse; any Dense operand yields Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Dense O(r·k·c); Sparse O(Σ_i Σ_{k∈row i} nnz(b_k)).
func Mul(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, c := a.Rows(), b.Cols()
	as, aSparse := a.(*Sparse)
	bs, bSparse := b.(*Sparse)
	switch {
	case aSparse && bSparse:
		return mulSparse(as, bs), nil
	case r == 0 || c == 0 || a.Cols() == 0:
		out, _ := NewDense(r, c, nil)
		return out, nil
	case aSparse:
		return mulSparseDense(as, ToDense(b)), nil
	case bSparse:
		return mulDenseSparse(ToDense(a), bs), nil
	default:
		var out mat.Dense
		out.Mul(ToDense(a).m, ToDense(b).m)
		return denseFromMat(&out), nil
	}
}

// mulSparse is Gustavson's row-by-row product.
func mulSparse(a, b *Sparse) *Sparse {
	acc := make([]float64, b.c)
	seen := make([]bool, b.c)
	cols := make([]int, 0, b.c)
	out := newCSRBuilder(a.r, b.c, len(a.data)+len(b.data))

	for i := 0; i < a.r; i++ {
		cols = cols[:0]
		a.doRow(i, func(k int, av float64) {
			b.doRow(k, func(j int, bv float64) {
				if !seen[j] {
					seen[j] = true
					cols = append(cols, j)
				}
				acc[j] += av * bv
			})
		})
		sort.Ints(cols)
		for _, j := range cols {
			out.push(i, j, acc[j])
			acc[j], seen[j] = 0, false
		}
	}

	return out.finish()
}

func mulSparseDense(a *Sparse, b *Dense) *Dense {
	out, _ := NewDense(a.r, b.c, nil)
	for i := 0; i < a.r; i++ {
		dst := out.m.RawRowView(i)
		a.doRow(i, func(k int, v float64) {
			floats.AddScaled(dst, v, b.m.RawRowView(k))
		})
	}

	return out
}

func mulDenseSparse(a *Dense, b *Sparse) *Dense {
	out, _ := NewDense(a.r, b.c, nil)
	for i := 0; i < a.r; i++ {
		dst := out.m.RawRowView(i)
		for k, av := range a.m.RawRowView(i) {
			if av == 0 {
				continue
			}
			b.doRow(k, func(j int, bv float64) { dst[j] += av * bv })
		}
	}

	return out
}

// Transpose returns mᵀ in the same variant.
// Complexity: O(r·c) Dense, O(nnz + r + c) Sparse.
func Transpose(m Matrix) Matrix {
	switch v := m.(type) {
	case *Sparse:
		return transposeSparse(v)
	case *Dense:
		if v.m == nil {
			return &Dense{r: v.c, c: v.r}
		}
		return denseFromMat(mat.DenseCopyOf(v.m.T()))
	default:
		return Transpose(ToDense(m))
	}
}

func transposeSparse(s *Sparse) *Sparse {
	counts := make([]int, s.c+1)
	for _, j := range s.indices {
		counts[j+1]++
	}
	for j := 0; j < s.c; j++ {
		counts[j+1] += counts[j]
	}
	out := &Sparse{
		r: s.c, c: s.r,
		indptr:  append([]int(nil), counts...),
		indices: make([]int, len(s.data)),
		data:    make([]float64, len(s.data)),
	}
	next := counts[:s.c]
	s.DoNonZero(func(i, j int, v float64) {
		k := next[j]
		out.indices[k], out.data[k] = i, v
		next[j]++
	})

	return out
}

// Hadamard returns the element-wise product a∘b. The result is Sparse when
// either operand is Sparse.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(sparse operand)) or O(r·c) for Dense∘Dense.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if _, ok := a.(*Sparse); !ok {
		if _, ok = b.(*Sparse); ok {
			a, b = b, a
		}
	}
	if as, ok := a.(*Sparse); ok {
		out := newCSRBuilder(as.r, as.c, len(as.data))
		var err error
		as.DoNonZero(func(i, j int, v float64) {
			if err != nil {
				return
			}
			var w float64
			if w, err = b.At(i, j); err == nil {
				out.push(i, j, v*w)
			}
		})
		if err != nil {
			return nil, matrixErrorf(opHadamard, err)
		}
		return out.finish(), nil
	}

	ad, bd := ToDense(a), ToDense(b)
	if ad.m == nil {
		return ad.clone(), nil
	}
	var out mat.Dense
	out.MulElem(ad.m, bd.m)

	return denseFromMat(&out), nil
}

// Add returns a+b; Sparse only when both operands are Sparse.
func Add(a, b Matrix) (Matrix, error) { return addSub(opAdd, a, b, 1) }

// Sub returns a−b; Sparse only when both operands are Sparse.
func Sub(a, b Matrix) (Matrix, error) { return addSub(opSub, a, b, -1) }

func addSub(op string, a, b Matrix, sign float64) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	as, aSparse := a.(*Sparse)
	bs, bSparse := b.(*Sparse)
	if aSparse && bSparse {
		out := newCSRBuilder(as.r, as.c, len(as.data)+len(bs.data))
		for i := 0; i < as.r; i++ {
			ka, kb := as.indptr[i], bs.indptr[i]
			ea, eb := as.indptr[i+1], bs.indptr[i+1]
			for ka < ea || kb < eb {
				switch {
				case kb >= eb || (ka < ea && as.indices[ka] < bs.indices[kb]):
					out.push(i, as.indices[ka], as.data[ka])
					ka++
				case ka >= ea || bs.indices[kb] < as.indices[ka]:
					out.push(i, bs.indices[kb], sign*bs.data[kb])
					kb++
				default:
					out.push(i, as.indices[ka], as.data[ka]+sign*bs.data[kb])
					ka++
					kb++
				}
			}
		}
		return out.finish(), nil
	}

	out := ToDense(a).clone()
	if out.m == nil {
		return out, nil
	}
	bd := ToDense(b)
	for i := 0; i < out.r; i++ {
		floats.AddScaled(out.m.RawRowView(i), sign, bd.m.RawRowView(i))
	}

	return out, nil
}

// Power returns mⁿ for square m and n ≥ 0 by repeated squaring; m⁰ is the
// identity (Dense).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadShape (n < 0).
// Complexity: O(log n) products.
func Power(m Matrix, n int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPower, ErrBadShape)
	}

	var result Matrix = Identity(m.Rows())
	if _, ok := m.(*Sparse); ok {
		result = ToSparse(result)
	}
	base := m
	var err error
	for n > 0 {
		if n&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return result, nil
}

// Diagonal returns the main diagonal (length min(r, c)).
func Diagonal(m Matrix) []float64 {
	n := min(m.Rows(), m.Cols())
	out := make([]float64, n)
	m.DoNonZero(func(i, j int, v float64) {
		if i == j {
			out[i] = v
		}
	})

	return out
}

// ZeroDiagonal returns a copy of m with its main diagonal set to zero, in the
// same variant.
func ZeroDiagonal(m Matrix) Matrix {
	switch v := m.(type) {
	case *Sparse:
		out := newCSRBuilder(v.r, v.c, len(v.data))
		v.DoNonZero(func(i, j int, x float64) {
			if i != j {
				out.push(i, j, x)
			}
		})
		return out.finish()
	default:
		d := ToDense(m).clone()
		for i := 0; i < min(d.r, d.c); i++ {
			d.m.Set(i, i, 0)
		}
		return d
	}
}

// MaxAbs returns the largest absolute entry of m, 0 for an all-zero matrix.
func MaxAbs(m Matrix) float64 {
	var out float64
	m.DoNonZero(func(_, _ int, v float64) { out = math.Max(out, math.Abs(v)) })

	return out
}

// DropBelow returns a copy of m, in the same variant, with every entry
// v <= eps set to zero. Negative entries are always dropped for eps >= 0.
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func DropBelow(m Matrix, eps float64) Matrix {
	switch v := m.(type) {
	case *Sparse:
		out := newCSRBuilder(v.r, v.c, len(v.data))
		v.DoNonZero(func(i, j int, x float64) {
			if x > eps {
				out.push(i, j, x)
			}
		})
		return out.finish()
	default:
		d := ToDense(m).clone()
		if d.m != nil {
			d.m.Apply(func(_, _ int, x float64) float64 {
				if x <= eps {
					return 0
				}
				return x
			}, d.m)
		}
		return d
	}
}

// ScaleRows returns diag(v)·m in the same variant.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Rows).
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func ScaleRows(m Matrix, v []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out := m.Clone()
	scaleInPlace(out, v, Rows)

	return out, nil
}

// ScaleCols returns m·diag(v) in the same variant.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Cols).
func ScaleCols(m Matrix, v []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out := m.Clone()
	scaleInPlace(out, v, Columns)

	return out, nil
}

// scaleInPlace multiplies rows or columns of m by v. Lengths are validated
// by the caller. m must be *Dense or *Sparse (both are produced by Clone).
func scaleInPlace(m Matrix, v []float64, axis Axis) {
	switch x := m.(type) {
	case *Dense:
		if x.m == nil {
			return
		}
		for i := 0; i < x.r; i++ {
			row := x.m.RawRowView(i)
			if axis == Rows {
				floats.Scale(v[i], row)
			} else {
				floats.Mul(row, v)
			}
		}
	case *Sparse:
		for i := 0; i < x.r; i++ {
			for k := x.indptr[i]; k < x.indptr[i+1]; k++ {
				if axis == Rows {
					x.data[k] *= v[i]
				} else {
					x.data[k] *= v[x.indices[k]]
				}
			}
		}
		x.prune()
	}
}

// ToDense returns m as *Dense (m itself when already Dense).
func ToDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	out, _ := NewDense(m.Rows(), m.Cols(), nil)
	m.DoNonZero(func(i, j int, v float64) { out.m.Set(i, j, v) })

	return out
}

// ToSparse returns m as *Sparse (m itself when already Sparse).
func ToSparse(m Matrix) *Sparse {
	if s, ok := m.(*Sparse); ok {
		return s
	}
	out := newCSRBuilder(m.Rows(), m.Cols(), 0)
	m.DoNonZero(out.push)

	return out.finish()
}

// Density returns nnz / (rows·cols), or 0 for an empty shape.
func Density(m Matrix) float64 {
	size := m.Rows() * m.Cols()
	if size == 0 {
		return 0
	}

	return float64(m.NNZ()) / float64(size)
}

// AllClose reports whether a and b have the same shape and every pair of
// entries is equal within tol (absolute or relative).
func AllClose(a, b Matrix, tol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, db := ToDense(a), ToDense(b)
	for i := 0; i < da.r && da.m != nil; i++ {
		ra, rb := da.m.RawRowView(i), db.m.RawRowView(i)
		for j := range ra {
			if !scalar.EqualWithinAbsOrRel(ra[j], rb[j], tol, tol) {
				return false
			}
		}
	}

	return true
}

// validatePair runs ValidateNotNil on both operands.
func validatePair(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// PowElem returns m with every non-zero entry raised to the power p, in the
// same variant. Zero entries stay zero (p is expected to be positive).
// Complexity: O(r·c) Dense, O(nnz) Sparse.
func PowElem(m Matrix, p float64) Matrix {
	out := m.Clone()
	switch x := out.(type) {
	case *Dense:
		if x.m != nil {
			x.m.Apply(func(_, _ int, v float64) float64 {
				if v == 0 {
					return 0
				}
				return math.Pow(v, p)
			}, x.m)
		}
	case *Sparse:
		for k, v := range x.data {
			x.data[k] = math.Pow(v, p)
		}
		x.prune()
	default:
		return PowElem(ToDense(m), p)
	}

	return out
}

// VecMul returns the row vector v·m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Rows).
// Complexity: O(nnz).
func VecMul(v []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	out := make([]float64, m.Cols())
	m.DoNonZero(func(i, j int, x float64) { out[j] += v[i] * x })

	return out, nil
}
