// SPDX-License-Identifier: MIT

package hetnet

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Edge directions as written in metaedge tuples.
const (
	DirectionBoth     = "both"
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// MetaNode is a node type of the network (for example Gene or Disease).
type MetaNode struct {
	// Name is the full metanode name, unique within a MetaGraph.
	Name string

	// Abbrev is the upper-case abbreviation used in metapath strings.
	Abbrev string
}

// String returns the metanode name.
func (n *MetaNode) String() string { return n.Name }

// MetaEdge is an edge type between two metanodes. Every MetaEdge knows its
// inverse; Inverted reports whether this value is the derived orientation
// rather than the one declared in the schema.
type MetaEdge struct {
	Source     *MetaNode
	Target     *MetaNode
	Kind       string // e.g. "associates"
	KindAbbrev string // e.g. "a"
	Direction  string // DirectionBoth, DirectionForward or DirectionBackward
	Inverted   bool   // true when this is the derived (reversed) orientation

	inverse *MetaEdge
}

// Inverse returns the reversed metaedge. For an undirected metaedge between
// a metanode and itself the inverse is the receiver.
func (e *MetaEdge) Inverse() *MetaEdge { return e.inverse }

// Canonical returns the orientation declared in the schema.
func (e *MetaEdge) Canonical() *MetaEdge {
	if e.Inverted {
		return e.inverse
	}

	return e
}

// SelfInverse reports whether traversing the edge backwards yields the same
// metaedge (undirected, same source and target metanode).
func (e *MetaEdge) SelfInverse() bool { return e.inverse == e }

// kindToken renders the kind abbreviation with its direction marker.
func (e *MetaEdge) kindToken() string {
	switch e.Direction {
	case DirectionForward:
		return e.KindAbbrev + ">"
	case DirectionBackward:
		return "<" + e.KindAbbrev
	default:
		return e.KindAbbrev
	}
}

// Abbrev returns the compact abbreviation, e.g. "GaD", "Gr>G", "G<rG".
func (e *MetaEdge) Abbrev() string {
	return e.Source.Abbrev + e.kindToken() + e.Target.Abbrev
}

// String returns a readable description like "Gene - interacts - Gene".
func (e *MetaEdge) String() string {
	arrow := " - "
	switch e.Direction {
	case DirectionForward:
		arrow = " > "
	case DirectionBackward:
		arrow = " < "
	}

	return e.Source.Name + " - " + e.Kind + arrow + e.Target.Name
}

// MetaEdgeTuple declares one metaedge: (source, target, kind, direction).
// It serializes to a JSON array, matching the common hetnet JSON layout.
type MetaEdgeTuple struct {
	Source    string
	Target    string
	Kind      string
	Direction string
}

// MarshalJSON encodes the tuple as a 4-element array.
func (t MetaEdgeTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{t.Source, t.Target, t.Kind, t.Direction})
}

// UnmarshalJSON decodes a 4-element array.
func (t *MetaEdgeTuple) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	if len(parts) != 4 {
		return fmt.Errorf("hetnet: metaedge tuple needs 4 fields, got %d", len(parts))
	}
	t.Source, t.Target, t.Kind, t.Direction = parts[0], parts[1], parts[2], parts[3]

	return nil
}

// Schema is the declarative form of a MetaGraph.
type Schema struct {
	MetanodeKinds  []string          `json:"metanode_kinds"`
	MetaedgeTuples []MetaEdgeTuple   `json:"metaedge_tuples"`
	KindToAbbrev   map[string]string `json:"kind_to_abbrev"`
}

// MetaGraph is the immutable schema of a heterogeneous network.
type MetaGraph struct {
	schema Schema

	nodes        []*MetaNode // sorted by Name
	nodeByName   map[string]*MetaNode
	nodeByAbbrev map[string]*MetaNode

	edges        []*MetaEdge // declared edges followed by their inverses, declaration order
	edgeByAbbrev map[string]*MetaEdge
}

// NewMetaGraph builds a MetaGraph from its schema.
// Metanodes are the union of MetanodeKinds and every tuple endpoint; each
// metanode and each edge kind must have an abbreviation in KindToAbbrev.
//
// Errors: ErrUnknownMetanode (missing abbreviation), ErrDuplicateAbbrev,
// ErrBadDirection.
func NewMetaGraph(s Schema) (*MetaGraph, error) {
	mg := &MetaGraph{
		nodeByName:   make(map[string]*MetaNode),
		nodeByAbbrev: make(map[string]*MetaNode),
		edgeByAbbrev: make(map[string]*MetaEdge),
	}

	// 1) Metanodes from the explicit list and from tuple endpoints.
	names := append([]string(nil), s.MetanodeKinds...)
	for _, t := range s.MetaedgeTuples {
		names = append(names, t.Source, t.Target)
	}
	for _, name := range names {
		if _, ok := mg.nodeByName[name]; ok {
			continue
		}
		abbrev, ok := s.KindToAbbrev[name]
		if !ok || abbrev == "" {
			return nil, fmt.Errorf("%w: no abbreviation for %q", ErrUnknownMetanode, name)
		}
		if prev, dup := mg.nodeByAbbrev[abbrev]; dup {
			return nil, fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateAbbrev, abbrev, prev.Name, name)
		}
		n := &MetaNode{Name: name, Abbrev: abbrev}
		mg.nodeByName[name] = n
		mg.nodeByAbbrev[abbrev] = n
		mg.nodes = append(mg.nodes, n)
	}
	sort.Slice(mg.nodes, func(i, j int) bool { return mg.nodes[i].Name < mg.nodes[j].Name })

	// 2) Declared metaedges and their inverses.
	var inverses []*MetaEdge
	for _, t := range s.MetaedgeTuples {
		kindAbbrev, ok := s.KindToAbbrev[t.Kind]
		if !ok || kindAbbrev == "" {
			return nil, fmt.Errorf("%w: no abbreviation for kind %q", ErrUnknownMetaedge, t.Kind)
		}
		src, tgt := mg.nodeByName[t.Source], mg.nodeByName[t.Target]

		fwd := &MetaEdge{Source: src, Target: tgt, Kind: t.Kind, KindAbbrev: kindAbbrev}
		switch t.Direction {
		case DirectionBoth, "":
			fwd.Direction = DirectionBoth
		case DirectionForward:
			fwd.Direction = DirectionForward
		default:
			return nil, fmt.Errorf("%w: %q in tuple %v", ErrBadDirection, t.Direction, t)
		}

		if fwd.Direction == DirectionBoth && src == tgt {
			fwd.inverse = fwd
		} else {
			inv := &MetaEdge{
				Source: tgt, Target: src, Kind: t.Kind, KindAbbrev: kindAbbrev,
				Direction: DirectionBoth, Inverted: true, inverse: fwd,
			}
			if fwd.Direction == DirectionForward {
				inv.Direction = DirectionBackward
			}
			fwd.inverse = inv
			inverses = append(inverses, inv)
		}
		if _, dup := mg.edgeByAbbrev[fwd.Abbrev()]; dup {
			return nil, fmt.Errorf("%w: metaedge %s", ErrDuplicateAbbrev, fwd.Abbrev())
		}
		mg.edgeByAbbrev[fwd.Abbrev()] = fwd
		mg.edges = append(mg.edges, fwd)
	}
	for _, inv := range inverses {
		if _, dup := mg.edgeByAbbrev[inv.Abbrev()]; dup {
			return nil, fmt.Errorf("%w: metaedge %s", ErrDuplicateAbbrev, inv.Abbrev())
		}
		mg.edgeByAbbrev[inv.Abbrev()] = inv
		mg.edges = append(mg.edges, inv)
	}

	// 3) Keep a defensive copy of the schema for serialization.
	mg.schema = Schema{
		MetanodeKinds:  make([]string, 0, len(mg.nodes)),
		MetaedgeTuples: append([]MetaEdgeTuple(nil), s.MetaedgeTuples...),
		KindToAbbrev:   make(map[string]string, len(s.KindToAbbrev)),
	}
	for _, n := range mg.nodes {
		mg.schema.MetanodeKinds = append(mg.schema.MetanodeKinds, n.Name)
	}
	for k, v := range s.KindToAbbrev {
		mg.schema.KindToAbbrev[k] = v
	}

	return mg, nil
}

// Schema returns a copy of the declarative schema.
func (mg *MetaGraph) Schema() Schema {
	out := Schema{
		MetanodeKinds:  append([]string(nil), mg.schema.MetanodeKinds...),
		MetaedgeTuples: append([]MetaEdgeTuple(nil), mg.schema.MetaedgeTuples...),
		KindToAbbrev:   make(map[string]string, len(mg.schema.KindToAbbrev)),
	}
	for k, v := range mg.schema.KindToAbbrev {
		out.KindToAbbrev[k] = v
	}

	return out
}

// Nodes returns all metanodes sorted by name.
func (mg *MetaGraph) Nodes() []*MetaNode {
	return append([]*MetaNode(nil), mg.nodes...)
}

// Node returns the metanode with the given name or abbreviation.
func (mg *MetaGraph) Node(nameOrAbbrev string) (*MetaNode, error) {
	if n, ok := mg.nodeByName[nameOrAbbrev]; ok {
		return n, nil
	}
	if n, ok := mg.nodeByAbbrev[nameOrAbbrev]; ok {
		return n, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMetanode, nameOrAbbrev)
}

// Edges returns metaedges in declaration order. With excludeInverts only the
// declared orientation of each metaedge is returned.
func (mg *MetaGraph) Edges(excludeInverts bool) []*MetaEdge {
	out := make([]*MetaEdge, 0, len(mg.edges))
	for _, e := range mg.edges {
		if excludeInverts && e.Inverted {
			continue
		}
		out = append(out, e)
	}

	return out
}

// MetaEdge returns the metaedge with the given abbreviation (e.g. "DaG").
func (mg *MetaGraph) MetaEdge(abbrev string) (*MetaEdge, error) {
	if e, ok := mg.edgeByAbbrev[abbrev]; ok {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMetaedge, abbrev)
}

// FindMetaEdge returns the metaedge from source to target with the given kind.
// An empty direction matches any direction; a declared "backward" request
// resolves to the inverse of the forward metaedge.
func (mg *MetaGraph) FindMetaEdge(source, target, kind, direction string) (*MetaEdge, error) {
	for _, e := range mg.edges {
		if e.Source.Name != source || e.Target.Name != target || e.Kind != kind {
			continue
		}
		if direction == "" || e.Direction == direction {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %s -%s(%s)- %s", ErrUnknownMetaedge, source, kind, direction, target)
}

// MetaPathFromAbbrev parses a compact metapath abbreviation such as
// "DaGiGaD" or "SEcCrCbG" into a MetaPath.
//
// Tokenization: maximal runs of upper-case letters are metanodes; maximal
// runs of lower-case letters and '<' '>' are edge kinds. Tokens must
// alternate node, edge, node, ... and end with a node.
func (mg *MetaGraph) MetaPathFromAbbrev(abbrev string) (*MetaPath, error) {
	tokens, err := tokenizeAbbrev(abbrev)
	if err != nil {
		return nil, err
	}

	edges := make([]*MetaEdge, 0, len(tokens)/2)
	for i := 0; i+2 < len(tokens); i += 2 {
		key := tokens[i] + tokens[i+1] + tokens[i+2]
		e, ok := mg.edgeByAbbrev[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownMetaedge, key, abbrev)
		}
		edges = append(edges, e)
	}

	return NewMetaPath(edges)
}

// MustMetaPath is MetaPathFromAbbrev for literals known to be valid; it
// panics on error.
func (mg *MetaGraph) MustMetaPath(abbrev string) *MetaPath {
	p, err := mg.MetaPathFromAbbrev(abbrev)
	if err != nil {
		panic(err)
	}

	return p
}

// tokenizeAbbrev splits an abbreviation into alternating node/edge tokens.
func tokenizeAbbrev(abbrev string) ([]string, error) {
	isNode := func(r rune) bool { return r >= 'A' && r <= 'Z' }
	isEdge := func(r rune) bool { return (r >= 'a' && r <= 'z') || r == '<' || r == '>' }

	var tokens []string
	var cur strings.Builder
	curNode := false
	for i, r := range abbrev {
		switch {
		case isNode(r), isEdge(r):
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrBadAbbreviation, r, i, abbrev)
		}
		if cur.Len() > 0 && isNode(r) != curNode {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
		curNode = isNode(r)
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}

	// Alternation: N E N (E N)*, so an odd count >= 3 starting with a node.
	if len(tokens) < 3 || len(tokens)%2 == 0 || !isNode(rune(tokens[0][0])) {
		return nil, fmt.Errorf("%w: %q", ErrBadAbbreviation, abbrev)
	}

	return tokens, nil
}
