// SPDX-License-Identifier: MIT

package dwpc

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
)

// Scores is a score per target-metanode node, in canonical order.
type Scores struct {
	Identifiers []string
	Values      []float64
}

// Map returns the scores keyed by identifier.
func (s *Scores) Map() map[string]float64 {
	out := make(map[string]float64, len(s.Identifiers))
	for i, id := range s.Identifiers {
		out[id] = s.Values[i]
	}

	return out
}

// Diffuse propagates weights (keyed by source-metanode identifier; absent
// nodes weigh 0) along mp. At every metaedge the running score vector is
// multiplied by matrix.DiffusionStep(adjacency, rowDamping, columnDamping).
//
// Errors: ErrNilSource, ErrUnknownNode, and any Source or matrix error.
// Complexity: O(Σ nnz) over the metapath's adjacency matrices.
func Diffuse(src Source, mp *hetnet.MetaPath, weights map[string]float64, columnDamping, rowDamping float64) (*Scores, error) {
	if src == nil || mp == nil {
		return nil, ErrNilSource
	}

	// Stage 1: initial vector over the source metanode.
	ids, err := src.NodeIdentifiers(mp.Source())
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	scores := make([]float64, len(ids))
	for id, w := range weights {
		i, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownNode, mp.Source().Name, id)
		}
		scores[i] = w
	}

	// Stage 2: one diffusion step per metaedge.
	var cols []string
	for _, me := range mp.Edges() {
		_, c, adj, err := src.AdjacencyMatrix(me)
		if err != nil {
			return nil, err
		}
		step, err := matrix.DiffusionStep(adj, rowDamping, columnDamping, true)
		if err != nil {
			return nil, fmt.Errorf("dwpc: diffuse %s: %w", me.Abbrev(), err)
		}
		if scores, err = matrix.VecMul(scores, step); err != nil {
			return nil, err
		}
		cols = c
	}

	return &Scores{Identifiers: cols, Values: scores}, nil
}
