// SPDX-License-Identifier: MIT

package hetnet

import (
	"fmt"
	"strings"
)

// MetaPath is an ordered, non-empty sequence of chained metaedges.
// It is immutable; every method returning a MetaPath allocates a new one.
type MetaPath struct {
	edges []*MetaEdge
}

// NewMetaPath validates that edges chain (edge[i].Target == edge[i+1].Source)
// and returns the metapath.
func NewMetaPath(edges []*MetaEdge) (*MetaPath, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyMetaPath
	}
	for i := 0; i+1 < len(edges); i++ {
		if edges[i].Target != edges[i+1].Source {
			return nil, fmt.Errorf("%w: %s then %s", ErrDisconnectedMetaPath, edges[i].Abbrev(), edges[i+1].Abbrev())
		}
	}

	return &MetaPath{edges: append([]*MetaEdge(nil), edges...)}, nil
}

// Len returns the number of metaedges.
func (p *MetaPath) Len() int { return len(p.edges) }

// Edge returns the i-th metaedge.
func (p *MetaPath) Edge(i int) *MetaEdge { return p.edges[i] }

// Edges returns a copy of the metaedge sequence.
func (p *MetaPath) Edges() []*MetaEdge { return append([]*MetaEdge(nil), p.edges...) }

// Nodes returns the Len()+1 metanodes visited by the metapath.
func (p *MetaPath) Nodes() []*MetaNode {
	out := make([]*MetaNode, 0, len(p.edges)+1)
	out = append(out, p.edges[0].Source)
	for _, e := range p.edges {
		out = append(out, e.Target)
	}

	return out
}

// Source returns the first metanode.
func (p *MetaPath) Source() *MetaNode { return p.edges[0].Source }

// Target returns the last metanode.
func (p *MetaPath) Target() *MetaNode { return p.edges[len(p.edges)-1].Target }

// Inverse returns the reverse metapath: edges in reverse order, each replaced
// by its inverse.
func (p *MetaPath) Inverse() *MetaPath {
	n := len(p.edges)
	inv := make([]*MetaEdge, n)
	for i, e := range p.edges {
		inv[n-1-i] = e.Inverse()
	}

	return &MetaPath{edges: inv}
}

// Sub returns the metapath made of edges [i, j). It panics when the range
// is empty or out of bounds, like slicing.
func (p *MetaPath) Sub(i, j int) *MetaPath {
	if i < 0 || j > len(p.edges) || i >= j {
		panic(fmt.Sprintf("hetnet: MetaPath.Sub(%d,%d) out of range for length %d", i, j, len(p.edges)))
	}

	return &MetaPath{edges: append([]*MetaEdge(nil), p.edges[i:j]...)}
}

// Abbrev returns the compact abbreviation, e.g. "DaGiGaD".
func (p *MetaPath) Abbrev() string {
	var b strings.Builder
	b.WriteString(p.edges[0].Source.Abbrev)
	for _, e := range p.edges {
		b.WriteString(e.kindToken())
		b.WriteString(e.Target.Abbrev)
	}

	return b.String()
}

// String returns Abbrev.
func (p *MetaPath) String() string { return p.Abbrev() }

// Equal reports whether both metapaths traverse the same metaedges in order.
func (p *MetaPath) Equal(o *MetaPath) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.edges) != len(o.edges) {
		return false
	}
	for i := range p.edges {
		if p.edges[i] != o.edges[i] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether the metapath equals its own inverse.
func (p *MetaPath) IsSymmetric() bool { return p.Equal(p.Inverse()) }
