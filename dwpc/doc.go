// SPDX-License-Identifier: MIT

// Package dwpc computes degree-weighted path counts (DWPC) and single-source
// diffusion along metapaths.
//
// The DWPC of a path is the product of its edge weights, where the weight of
// an edge (u, v) on metaedge m is deg_m(u)^-w · deg_m(v)^-w for damping w.
// DWPC(s, t) sums that over every path from s to t that follows the
// metapath and visits no node twice. Damping 0 yields plain path counts.
//
// Strategy by metapath category:
//
//	no_repeats                     chained product of weighted matrices
//	disjoint/short_/long_repeat    product over segments; a repeated block with
//	                               two occurrences has its diagonal removed,
//	                               longer blocks are enumerated exactly
//	BAAB                           nested diagonal removal
//	BABA                           inclusion–exclusion over the two overlaps
//	other                          exact enumeration of the whole metapath
//
// Matrices come from a Source, implemented here for *hetnet.Graph and by
// hetmat.HetMat for on-disk stores.
package dwpc
