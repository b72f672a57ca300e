// SPDX-License-Identifier: MIT

// Package permute generates degree-preserving permutations of a
// heterogeneous network with XSwap.
//
// XSwap picks two edges (a, b) and (c, d) of the same metaedge and rewires
// them to (a, d) and (c, b). A swap is rejected when it would create an
// edge that already exists, or a self-loop on an undirected metaedge between
// one metanode. Every node keeps its degree on every metaedge, so DWPCs
// computed on permutations form a null distribution that controls for
// degree.
//
// Randomness is deterministic: the same seed yields the same permutation.
// A *rand.Rand is not safe for concurrent use; DeriveSeed gives independent
// streams for parallel callers.
package permute
