// SPDX-License-Identifier: MIT

// Package pipeline runs the bulk significance workflow over a HetMat:
// generate permutations, compute observed DWPCs, reduce permuted DWPCs into
// degree-group summaries and join both into p-value rows.
//
// Permutation DWPCs run on an errgroup bounded by the worker count. Each
// goroutine owns its partial aggregate; partials are merged after Wait.
// Cancellation is checked before each permutation starts.
package pipeline
