// SPDX-License-Identifier: MIT

package hetnet

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// graphJSON is the on-disk layout of a graph: the schema plus node and edge
// records. Node identifiers may be JSON strings or numbers.
type graphJSON struct {
	Schema
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	Kind       string          `json:"kind"`
	Identifier json.RawMessage `json:"identifier"`
	Name       string          `json:"name"`
	Data       map[string]any  `json:"data,omitempty"`
}

type edgeJSON struct {
	SourceID  [2]json.RawMessage `json:"source_id"`
	TargetID  [2]json.RawMessage `json:"target_id"`
	Kind      string             `json:"kind"`
	Direction string             `json:"direction"`
	Data      map[string]any     `json:"data,omitempty"`
}

// ReadMetaGraph decodes a schema document and builds its MetaGraph.
func ReadMetaGraph(r io.Reader) (*MetaGraph, error) {
	var s Schema
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("hetnet: decode metagraph: %w", err)
	}

	return NewMetaGraph(s)
}

// WriteMetaGraph encodes mg's schema as indented JSON.
func WriteMetaGraph(w io.Writer, mg *MetaGraph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(mg.Schema())
}

// ReadGraph decodes a graph document. Input starting with the gzip magic
// bytes is decompressed transparently.
//
// Errors: decoding errors, any schema error from NewMetaGraph, and any
// AddNode / AddEdge error for the records.
func ReadGraph(r io.Reader) (*Graph, error) {
	r, err := maybeGunzip(r)
	if err != nil {
		return nil, err
	}
	var doc graphJSON
	if err = json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("hetnet: decode graph: %w", err)
	}
	mg, err := NewMetaGraph(doc.Schema)
	if err != nil {
		return nil, err
	}

	g := NewGraph(mg)
	for _, n := range doc.Nodes {
		id, err := identifierString(n.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err = g.AddNode(n.Kind, id, n.Name, n.Data); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		sKind, sID, err := nodeRef(e.SourceID)
		if err != nil {
			return nil, err
		}
		tKind, tID, err := nodeRef(e.TargetID)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdgeByKind(sKind, sID, tKind, tID, e.Kind, e.Direction); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadGraphFile opens path and calls ReadGraph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadGraph(f)
}

// WriteGraph encodes g as a graph document. Nodes are written per metanode
// in canonical order; edges per declared metaedge sorted by endpoints.
func WriteGraph(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	mg := g.MetaGraph()
	doc := graphJSON{Schema: mg.Schema(), Nodes: []nodeJSON{}, Edges: []edgeJSON{}}

	for _, mn := range mg.Nodes() {
		for _, n := range g.Nodes(mn) {
			id, _ := json.Marshal(n.Identifier)
			doc.Nodes = append(doc.Nodes, nodeJSON{Kind: mn.Name, Identifier: id, Name: n.Name, Data: n.Data})
		}
	}
	for _, me := range mg.Edges(true) {
		pairs := g.Edges(me)
		for _, p := range pairs {
			// Self-inverse metaedges report both orientations; keep one.
			if me.SelfInverse() && p.Source > p.Target {
				continue
			}
			doc.Edges = append(doc.Edges, edgeJSON{
				SourceID:  refJSON(me.Source.Name, p.Source),
				TargetID:  refJSON(me.Target.Name, p.Target),
				Kind:      me.Kind,
				Direction: me.Direction,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// WriteGraphFile writes g to path, gzip-compressed when path ends in ".gz".
func WriteGraphFile(path string, g *Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return WriteGraph(f, g)
	}
	zw := gzip.NewWriter(f)
	if err = WriteGraph(zw, g); err != nil {
		return err
	}

	return zw.Close()
}

func maybeGunzip(r io.Reader) (io.Reader, error) {
	var head [2]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("hetnet: read graph: %w", err)
	}
	full := io.MultiReader(bytes.NewReader(head[:n]), r)
	if n == 2 && head[0] == 0x1f && head[1] == 0x8b {
		return gzip.NewReader(full)
	}

	return full, nil
}

// identifierString accepts a JSON string or number.
func identifierString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", fmt.Errorf("%w: identifier %s", ErrEmptyIdentifier, string(raw))
	}

	return num.String(), nil
}

func nodeRef(ref [2]json.RawMessage) (kind, id string, err error) {
	if err = json.Unmarshal(ref[0], &kind); err != nil {
		return "", "", fmt.Errorf("hetnet: edge endpoint kind: %w", err)
	}
	id, err = identifierString(ref[1])

	return kind, id, err
}

func refJSON(kind, id string) [2]json.RawMessage {
	k, _ := json.Marshal(kind)
	i, _ := json.Marshal(id)

	return [2]json.RawMessage{k, i}
}
