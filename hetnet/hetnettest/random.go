// SPDX-License-Identifier: MIT

package hetnettest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hetmat/hetnet"
)

// RandomGraph samples an Erdős–Rényi-like network over mg: sizes[name]
// nodes per metanode (missing names get none), and each admissible edge of
// every metaedge kept independently with probability p. Node identifiers are
// the metanode abbreviation followed by a zero-padded index.
//
// Trials run in a fixed order (metaedge, then source index, then target
// index), so a seed always yields the same graph. Self-inverse metaedges
// try each unordered pair once; no metaedge gets self-loops.
func RandomGraph(mg *hetnet.MetaGraph, sizes map[string]int, p float64, seed int64) *hetnet.Graph {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("hetnettest: p=%v not in [0, 1]", p))
	}
	rng := rand.New(rand.NewSource(seed))
	g := hetnet.NewGraph(mg)
	ids := make(map[*hetnet.MetaNode][]string)
	for _, mn := range mg.Nodes() {
		for i := 0; i < sizes[mn.Name]; i++ {
			id := fmt.Sprintf("%s%03d", mn.Abbrev, i)
			must(g.AddNode(mn.Name, id, id, nil))
			ids[mn] = append(ids[mn], id)
		}
	}

	for _, me := range mg.Edges(true) {
		src, tgt := ids[me.Source], ids[me.Target]
		same := me.Source == me.Target
		for i, u := range src {
			j0 := 0
			if me.SelfInverse() {
				j0 = i + 1
			}
			for j := j0; j < len(tgt); j++ {
				if same && i == j {
					continue
				}
				if rng.Float64() < p {
					if err := g.AddEdge(me, u, tgt[j]); err != nil {
						panic(err)
					}
				}
			}
		}
	}

	return g
}
