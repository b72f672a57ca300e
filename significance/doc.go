// SPDX-License-Identifier: MIT

// Package significance estimates how surprising an observed DWPC is, given
// the DWPCs of the same metapath on degree-preserving permutations of the
// network.
//
// Every (source, target) pair is assigned to a degree group: the pair of its
// source degree on the first metaedge and target degree on the last metaedge,
// both taken from the unpermuted network. Permuted DWPCs are accumulated per
// group (GroupByDegree, Aggregate.Merge) and summarized (Summarize).
//
// The null distribution of a group is a gamma hurdle: a point mass at zero
// with probability 1-nnz/n, and a Gamma(alpha, beta) fitted by moments to the
// nonzero values. PValue returns the upper tail of that distribution.
//
// Summaries are immutable once built. Cache holds them per (metapath,
// damping) and answers lookups for the inverse metapath by transposing.
package significance
