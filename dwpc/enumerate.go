// SPDX-License-Identifier: MIT

package dwpc

import (
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
)

// enumerate sums the weights of every node-unique path over edges [i, j)
// by depth-first search. A node is identified by (metanode, index); a path
// may not revisit one.
//
// Complexity: O(number of walks explored); exponential in the span length
// on dense graphs, which is why only blocks and "other" metapaths use it.
func (c *chain) enumerate(i, j int) (matrix.Matrix, error) {
	steps := make([]*matrix.Sparse, 0, j-i)
	for k := i; k < j; k++ {
		w, err := c.edge(k)
		if err != nil {
			return nil, err
		}
		steps = append(steps, matrix.ToSparse(w))
	}
	nodes := c.mp.Sub(i, j).Nodes()

	// One visited set per metanode, sized by that metanode's node count.
	visited := make(map[*hetnet.MetaNode][]bool)
	for k, n := range nodes {
		var size int
		if k < len(steps) {
			size = steps[k].Rows()
		} else {
			size = steps[k-1].Cols()
		}
		if _, ok := visited[n]; !ok {
			visited[n] = make([]bool, size)
		}
	}

	nRows, nCols := steps[0].Rows(), steps[len(steps)-1].Cols()
	out, err := matrix.NewDense(nRows, nCols, nil)
	if err != nil {
		return nil, err
	}
	raw := make([][]float64, nRows)
	for r := range raw {
		raw[r] = out.RawRow(r)
	}

	var walk func(depth, at int, weight float64, row []float64)
	walk = func(depth, at int, weight float64, row []float64) {
		if depth == len(steps) {
			row[at] += weight
			return
		}
		seen := visited[nodes[depth+1]]
		steps[depth].DoRowNonZero(at, func(next int, w float64) {
			if seen[next] {
				return
			}
			seen[next] = true
			walk(depth+1, next, weight*w, row)
			seen[next] = false
		})
	}
	for s := 0; s < nRows; s++ {
		seen := visited[nodes[0]]
		seen[s] = true
		walk(0, s, 1, raw[s])
		seen[s] = false
	}

	return out, nil
}
