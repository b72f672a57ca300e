// SPDX-License-Identifier: MIT

// Package matrix provides the numeric substrate for path counting over
// heterogeneous networks.
//
// What:
//
//   - Matrix: a read-mostly two-dimensional float64 array with two concrete
//     variants, Dense (backed by gonum's mat.Dense) and Sparse (compressed
//     sparse rows). Both are interchangeable everywhere; the variant only
//     affects memory and speed, never numeric output.
//   - Free functions over Matrix: Mul, Transpose, Hadamard, Add, Sub, Power,
//     Diagonal, ZeroDiagonal, ScaleRows, ScaleCols, ToDense, ToSparse,
//     Density, AllClose.
//   - Degree normalization: Normalize, DiffusionStep, DegreeWeightStep,
//     CopyArray, AutoConvert.
//   - Adjacency: MetaedgeToAdjacency builds the source×target matrix of one
//     metaedge of a hetnet.Graph, rows and columns in canonical identifier
//     order.
//
// Variant rules:
//
//   - Mul, Add, Sub return Sparse only when both operands are Sparse.
//   - Hadamard returns Sparse when either operand is Sparse.
//   - Transpose, ZeroDiagonal, ScaleRows, ScaleCols keep the input variant.
//
// Errors:
//
//   - Every sentinel is prefixed "matrix:"; operations wrap them with their
//     name (for example "Mul: matrix: dimension mismatch"). Match with
//     errors.Is.
//
// Determinism:
//
//   - All kernels iterate in row-major order; no randomness, no goroutines.
package matrix
