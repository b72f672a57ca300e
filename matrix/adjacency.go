// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet"
)

// MetaedgeToAdjacency returns the adjacency matrix of metaedge me in g:
// rows are the source-metanode identifiers and columns the target-metanode
// identifiers, both in canonical (lexicographic) order; entry (i, j) is the
// number of me-edges from rows[i] to cols[j].
//
// Implementation:
//   - Stage 1: Validate g and resolve canonical node positions.
//   - Stage 2: Accumulate one triplet per realized edge.
//   - Stage 3: Build Sparse, then AutoConvert with the configured threshold.
//
// Errors: ErrGraphNil; ErrOutOfRange if an edge references a node missing
// from the position index (a corrupted graph).
// Complexity: O(V log V + E log E).
func MetaedgeToAdjacency(g *hetnet.Graph, me *hetnet.MetaEdge, opts ...Option) (rows, cols []string, m Matrix, err error) {
	if g == nil {
		return nil, nil, nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	// Stage 1: canonical positions.
	rows = g.NodeIdentifiers(me.Source)
	cols = g.NodeIdentifiers(me.Target)
	rowPos := positions(rows)
	colPos := positions(cols)

	// Stage 2: triplets.
	pairs := g.Edges(me)
	ts := make([]Triplet, 0, len(pairs))
	for _, p := range pairs {
		i, ok := rowPos[p.Source]
		j, ok2 := colPos[p.Target]
		if !ok || !ok2 {
			return nil, nil, nil, matrixErrorf(opAdjacency, fmt.Errorf("%w: edge %s→%s", ErrOutOfRange, p.Source, p.Target))
		}
		ts = append(ts, Triplet{I: i, J: j, V: 1})
	}

	// Stage 3: assemble.
	s, err := NewSparse(len(rows), len(cols), ts)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opAdjacency, err)
	}
	if o.binary {
		for k := range s.data {
			s.data[k] = 1
		}
	}

	return rows, cols, AutoConvert(s, o.denseThreshold), nil
}

// positions maps each identifier to its index.
func positions(ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}

	return out
}
