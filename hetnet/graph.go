// SPDX-License-Identifier: MIT

package hetnet

import (
	"fmt"
	"sort"
	"sync"
)

// Node is an instance of a MetaNode.
type Node struct {
	// Kind is the metanode this node instantiates.
	Kind *MetaNode

	// Identifier is unique within Kind and defines the canonical order.
	Identifier string

	// Name is a human-readable label.
	Name string

	// Data stores arbitrary properties. It is shared, not deep-copied, by clones.
	Data map[string]any
}

// EdgePair is one realized edge of a metaedge, by node identifier.
type EdgePair struct {
	Source string
	Target string
}

// Graph is an in-memory heterogeneous network conforming to a MetaGraph.
//
// Edges are stored once, under the declared (canonical) orientation of
// their metaedge; queries on an inverted metaedge swap endpoints on the fly.
// All methods are safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	metagraph *MetaGraph
	nodes     map[*MetaNode]map[string]*Node
	edges     map[*MetaEdge]map[EdgePair]struct{} // canonical metaedge → pairs
}

// NewGraph creates an empty graph over mg.
// Complexity: O(1).
func NewGraph(mg *MetaGraph) *Graph {
	return &Graph{
		metagraph: mg,
		nodes:     make(map[*MetaNode]map[string]*Node),
		edges:     make(map[*MetaEdge]map[EdgePair]struct{}),
	}
}

// MetaGraph returns the schema the graph conforms to.
func (g *Graph) MetaGraph() *MetaGraph { return g.metagraph }

// AddNode inserts a node of the metanode named kind.
//
// Errors: ErrUnknownMetanode, ErrEmptyIdentifier, ErrDuplicateNode.
// Complexity: O(1).
func (g *Graph) AddNode(kind, identifier, name string, data map[string]any) (*Node, error) {
	mn, err := g.metagraph.Node(kind)
	if err != nil {
		return nil, err
	}
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	byID := g.nodes[mn]
	if byID == nil {
		byID = make(map[string]*Node)
		g.nodes[mn] = byID
	}
	if _, dup := byID[identifier]; dup {
		return nil, fmt.Errorf("%w: %s %q", ErrDuplicateNode, mn.Name, identifier)
	}
	n := &Node{Kind: mn, Identifier: identifier, Name: name, Data: data}
	byID[identifier] = n

	return n, nil
}

// Node returns the node of metanode kind with the given identifier.
func (g *Graph) Node(kind, identifier string) (*Node, error) {
	mn, err := g.metagraph.Node(kind)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[mn][identifier]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrNodeNotFound, mn.Name, identifier)
	}

	return n, nil
}

// Nodes returns the nodes of mn sorted by identifier (canonical order).
// Complexity: O(n log n).
func (g *Graph) Nodes(mn *MetaNode) []*Node {
	g.mu.RLock()
	out := make([]*Node, 0, len(g.nodes[mn]))
	for _, n := range g.nodes[mn] {
		out = append(out, n)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })

	return out
}

// NodeIdentifiers returns the identifiers of mn in canonical order.
func (g *Graph) NodeIdentifiers(mn *MetaNode) []string {
	nodes := g.Nodes(mn)
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.Identifier
	}

	return ids
}

// NodeCount returns the number of nodes of mn.
func (g *Graph) NodeCount(mn *MetaNode) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes[mn])
}

// AddEdge realizes metaedge me between two existing nodes. Adding on an
// inverted metaedge stores the edge under its canonical orientation.
//
// Errors: ErrNodeNotFound, ErrDuplicateEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(me *MetaEdge, sourceID, targetID string) error {
	if me.Inverted {
		me, sourceID, targetID = me.Inverse(), targetID, sourceID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[me.Source][sourceID]; !ok {
		return fmt.Errorf("%w: %s %q", ErrNodeNotFound, me.Source.Name, sourceID)
	}
	if _, ok := g.nodes[me.Target][targetID]; !ok {
		return fmt.Errorf("%w: %s %q", ErrNodeNotFound, me.Target.Name, targetID)
	}
	if g.hasEdgeLocked(me, sourceID, targetID) {
		return fmt.Errorf("%w: %s %q–%q", ErrDuplicateEdge, me.Abbrev(), sourceID, targetID)
	}
	pairs := g.edges[me]
	if pairs == nil {
		pairs = make(map[EdgePair]struct{})
		g.edges[me] = pairs
	}
	pairs[EdgePair{Source: sourceID, Target: targetID}] = struct{}{}

	return nil
}

// AddEdgeByKind resolves the metaedge from metanode names, kind and
// direction, then calls AddEdge. A tuple written against the inverse
// orientation is accepted.
func (g *Graph) AddEdgeByKind(sourceKind, sourceID, targetKind, targetID, kind, direction string) error {
	me, err := g.metagraph.FindMetaEdge(sourceKind, targetKind, kind, direction)
	if err != nil {
		return err
	}

	return g.AddEdge(me, sourceID, targetID)
}

// HasEdge reports whether me connects sourceID to targetID.
func (g *Graph) HasEdge(me *MetaEdge, sourceID, targetID string) bool {
	if me.Inverted {
		me, sourceID, targetID = me.Inverse(), targetID, sourceID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(me, sourceID, targetID)
}

// hasEdgeLocked checks membership on a canonical metaedge; the caller holds mu.
func (g *Graph) hasEdgeLocked(me *MetaEdge, s, t string) bool {
	pairs := g.edges[me]
	if _, ok := pairs[EdgePair{Source: s, Target: t}]; ok {
		return true
	}
	if me.SelfInverse() {
		_, ok := pairs[EdgePair{Source: t, Target: s}]
		return ok
	}

	return false
}

// Edges returns the realized (source, target) pairs of me, sorted by
// (Source, Target). For a self-inverse metaedge every stored edge is
// reported in both orientations (a self-loop once).
// Complexity: O(E log E).
func (g *Graph) Edges(me *MetaEdge) []EdgePair {
	canonical := me.Canonical()

	g.mu.RLock()
	out := make([]EdgePair, 0, 2*len(g.edges[canonical]))
	for p := range g.edges[canonical] {
		switch {
		case me.SelfInverse():
			out = append(out, p)
			if p.Source != p.Target {
				out = append(out, EdgePair{Source: p.Target, Target: p.Source})
			}
		case me.Inverted:
			out = append(out, EdgePair{Source: p.Target, Target: p.Source})
		default:
			out = append(out, p)
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})

	return out
}

// EdgeCount returns the number of stored edges of me (each undirected edge
// once, regardless of orientation).
func (g *Graph) EdgeCount(me *MetaEdge) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges[me.Canonical()])
}

// CloneEmpty returns a graph with the same schema and nodes but no edges.
// Node values are shared.
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph(g.metagraph)
	g.mu.RLock()
	defer g.mu.RUnlock()
	for mn, byID := range g.nodes {
		cp := make(map[string]*Node, len(byID))
		for id, n := range byID {
			cp[id] = n
		}
		out.nodes[mn] = cp
	}

	return out
}
