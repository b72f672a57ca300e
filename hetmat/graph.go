// SPDX-License-Identifier: MIT

package hetmat

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
	"go.uber.org/zap"
)

// FromGraph writes g under dir: its metagraph, one node table per metanode
// and one sparse matrix per canonical metaedge.
func FromGraph(g *hetnet.Graph, dir string, opts ...Option) (*HetMat, error) {
	if g == nil {
		return nil, matrix.ErrGraphNil
	}
	h, err := Create(dir, opts...)
	if err != nil {
		return nil, err
	}
	mg := g.MetaGraph()
	if err = h.WriteMetaGraph(mg); err != nil {
		return nil, fmt.Errorf("hetmat: metagraph: %w", err)
	}

	for _, mn := range mg.Nodes() {
		if err = writeNodes(h.nodesPath(mn), g.Nodes(mn)); err != nil {
			return nil, fmt.Errorf("hetmat: nodes %s: %w", mn.Name, err)
		}
	}
	edges := 0
	for _, me := range mg.Edges(true) {
		_, _, m, err := matrix.MetaedgeToAdjacency(g, me, matrix.WithDenseThreshold(1))
		if err != nil {
			return nil, fmt.Errorf("hetmat: edges %s: %w", me.Abbrev(), err)
		}
		if err = h.WriteAdjacencyMatrix(me, m); err != nil {
			return nil, fmt.Errorf("hetmat: edges %s: %w", me.Abbrev(), err)
		}
		edges += g.EdgeCount(me)
	}
	h.cfg.logger.Info("hetmat written",
		zap.String("path", dir),
		zap.Int("metanodes", len(mg.Nodes())),
		zap.Int("metaedges", len(mg.Edges(true))),
		zap.Int("edges", edges),
	)

	return h, nil
}

// Graph rebuilds the in-memory network. Node data is not stored and comes
// back empty.
func (h *HetMat) Graph() (*hetnet.Graph, error) {
	mg := h.MetaGraph()
	if mg == nil {
		return nil, ErrNoMetaGraph
	}
	g := hetnet.NewGraph(mg)
	for _, mn := range mg.Nodes() {
		t, err := h.nodeTable(mn)
		if err != nil {
			return nil, err
		}
		for i, id := range t.ids {
			if _, err = g.AddNode(mn.Name, id, t.names[i], nil); err != nil {
				return nil, fmt.Errorf("hetmat: %w", err)
			}
		}
	}
	for _, me := range mg.Edges(true) {
		rows, cols, m, err := h.AdjacencyMatrix(me)
		if err != nil {
			return nil, err
		}
		m.DoNonZero(func(i, j int, _ float64) {
			if err != nil {
				return
			}
			// Self-inverse metaedges store both orientations.
			if me.SelfInverse() && g.HasEdge(me, rows[i], cols[j]) {
				return
			}
			err = g.AddEdge(me, rows[i], cols[j])
		})
		if err != nil {
			return nil, fmt.Errorf("hetmat: edges %s: %w", me.Abbrev(), err)
		}
	}

	return g, nil
}
