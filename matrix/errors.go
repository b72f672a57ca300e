// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is. No exported function panics on
// user-triggered error conditions; option constructors panic on nonsensical
// values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Operations wrap a sentinel once with their own name via matrixErrorf.
var (
	// ErrBadShape is returned when a requested shape is negative or does not
	// match the supplied backing data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Add on different shapes, Mul where a.Cols != b.Rows, or a scaling
	// vector whose length differs from the scaled axis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyRows indicates a matrix with zero rows where data is required.
	ErrEmptyRows = errors.New("matrix: matrix has no rows")

	// ErrRaggedRows indicates row slices of unequal length; such input has no
	// numeric matrix interpretation.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrGraphNil indicates that a nil *hetnet.Graph was passed to an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadAxis indicates an Axis value other than Rows or Columns.
	ErrBadAxis = errors.New("matrix: invalid axis")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping.
const (
	opNewDense         = "NewDense"
	opFromRows         = "FromRows"
	opNewSparse        = "NewSparse"
	opAt               = "At"
	opSet              = "Set"
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opHadamard         = "Hadamard"
	opPower            = "Power"
	opVecMul           = "VecMul"
	opScaleRows        = "ScaleRows"
	opScaleCols        = "ScaleCols"
	opNormalize        = "Normalize"
	opDiffusionStep    = "DiffusionStep"
	opDegreeWeightStep = "DegreeWeightStep"
	opCopyArray        = "CopyArray"
	opAdjacency        = "MetaedgeToAdjacency"
)
