// SPDX-License-Identifier: MIT

package dwpc

import (
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
)

// Source supplies node orders and adjacency matrices for one network.
// Implementations must return identifiers in canonical (sorted) order and
// matrices indexed accordingly.
type Source interface {
	MetaGraph() *hetnet.MetaGraph
	NodeIdentifiers(mn *hetnet.MetaNode) ([]string, error)
	AdjacencyMatrix(me *hetnet.MetaEdge) (rows, cols []string, m matrix.Matrix, err error)
}

// GraphSource adapts an in-memory graph to Source.
type GraphSource struct {
	g    *hetnet.Graph
	opts []matrix.Option
}

// NewGraphSource wraps g; opts are forwarded to matrix.MetaedgeToAdjacency.
func NewGraphSource(g *hetnet.Graph, opts ...matrix.Option) *GraphSource {
	return &GraphSource{g: g, opts: opts}
}

// MetaGraph returns the graph's schema.
func (s *GraphSource) MetaGraph() *hetnet.MetaGraph { return s.g.MetaGraph() }

// NodeIdentifiers returns the canonical node order of mn.
func (s *GraphSource) NodeIdentifiers(mn *hetnet.MetaNode) ([]string, error) {
	return s.g.NodeIdentifiers(mn), nil
}

// AdjacencyMatrix builds the adjacency matrix of me.
func (s *GraphSource) AdjacencyMatrix(me *hetnet.MetaEdge) ([]string, []string, matrix.Matrix, error) {
	return matrix.MetaedgeToAdjacency(s.g, me, s.opts...)
}
