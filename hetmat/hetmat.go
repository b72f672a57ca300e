// SPDX-License-Identifier: MIT

package hetmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
	"go.uber.org/zap"
)

const (
	metagraphFile = "metagraph.json"
	nodesDir      = "nodes"
	edgesDir      = "edges"
)

// HetMat is a network stored on disk. Node orders are cached after the
// first read; all methods are safe for concurrent use.
type HetMat struct {
	dir  string
	cfg  config
	opts []Option

	mu        sync.Mutex
	metagraph *hetnet.MetaGraph
	nodes     map[*hetnet.MetaNode]*nodeTable
}

type nodeTable struct {
	ids   []string
	names []string
}

// Create initializes the directory layout at dir, creating parents as
// needed. An existing directory is reused.
func Create(dir string, opts ...Option) (*HetMat, error) {
	h := newHetMat(dir, opts)
	for _, d := range []string{dir, h.path(nodesDir), h.path(edgesDir)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("hetmat: create %s: %w", dir, err)
		}
	}
	h.cfg.logger.Debug("hetmat initialized", zap.String("path", dir))

	return h, nil
}

// Open loads the HetMat at dir and reads its metagraph.
//
// Errors: ErrNotHetMat when metagraph.json is missing.
func Open(dir string, opts ...Option) (*HetMat, error) {
	h := newHetMat(dir, opts)
	f, err := os.Open(h.path(metagraphFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotHetMat, dir)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mg, err := hetnet.ReadMetaGraph(f)
	if err != nil {
		return nil, fmt.Errorf("hetmat: %s: %w", dir, err)
	}
	h.metagraph = mg

	return h, nil
}

func newHetMat(dir string, opts []Option) *HetMat {
	cfg := defaultConfig()
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}

	return &HetMat{
		dir:   dir,
		cfg:   cfg,
		opts:  opts,
		nodes: make(map[*hetnet.MetaNode]*nodeTable),
	}
}

// Dir returns the root directory.
func (h *HetMat) Dir() string { return h.dir }

func (h *HetMat) path(elem ...string) string {
	return filepath.Join(append([]string{h.dir}, elem...)...)
}

// MetaGraph returns the schema, or nil before WriteMetaGraph on a fresh
// HetMat.
func (h *HetMat) MetaGraph() *hetnet.MetaGraph {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.metagraph
}

// WriteMetaGraph stores mg as metagraph.json and makes it current. Cached
// node orders are dropped.
func (h *HetMat) WriteMetaGraph(mg *hetnet.MetaGraph) (err error) {
	f, err := os.Create(h.path(metagraphFile))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = hetnet.WriteMetaGraph(f, mg); err != nil {
		return err
	}

	h.mu.Lock()
	h.metagraph = mg
	h.nodes = make(map[*hetnet.MetaNode]*nodeTable)
	h.mu.Unlock()

	return nil
}

func (h *HetMat) nodesPath(mn *hetnet.MetaNode) string {
	return h.path(nodesDir, mn.Name+".tsv")
}

func (h *HetMat) edgesBase(me *hetnet.MetaEdge) string {
	return h.path(edgesDir, me.Canonical().Abbrev())
}

// NodeIdentifiers returns the identifiers of mn in position order.
func (h *HetMat) NodeIdentifiers(mn *hetnet.MetaNode) ([]string, error) {
	t, err := h.nodeTable(mn)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), t.ids...), nil
}

func (h *HetMat) nodeTable(mn *hetnet.MetaNode) (*nodeTable, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.nodes[mn]; ok {
		return t, nil
	}
	t, err := readNodes(h.nodesPath(mn))
	if err != nil {
		return nil, err
	}
	h.nodes[mn] = t

	return t, nil
}

func readNodes(path string) (*nodeTable, error) {
	rc, err := openTSV(path)
	if err != nil {
		return nil, fmt.Errorf("hetmat: nodes: %w", err)
	}
	defer rc.Close()

	r := newTSVReader(rc)
	if _, err = r.Read(); err != nil { // header
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}
	t := &nodeTable{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("%w: %s: want 3 fields, got %d", ErrMalformedFile, path, len(rec))
		}
		if pos, err := strconv.Atoi(rec[0]); err != nil || pos != len(t.ids) {
			return nil, fmt.Errorf("%w: %s: position %q out of order", ErrMalformedFile, path, rec[0])
		}
		t.ids = append(t.ids, rec[1])
		t.names = append(t.names, rec[2])
	}

	return t, nil
}

func writeNodes(path string, nodes []*hetnet.Node) error {
	return writeTSV(path, false, false, func(w *csv.Writer) error {
		if err := w.Write([]string{"position", "identifier", "name"}); err != nil {
			return err
		}
		for i, n := range nodes {
			if err := w.Write([]string{strconv.Itoa(i), n.Identifier, n.Name}); err != nil {
				return err
			}
		}

		return nil
	})
}

// AdjacencyMatrix reads the matrix of me. Inverse metaedges are the
// transpose of their stored forward matrix.
//
// Errors: ErrMatrixNotFound, ErrMalformedFile, matrix.ErrDimensionMismatch
// when the file disagrees with the node tables.
func (h *HetMat) AdjacencyMatrix(me *hetnet.MetaEdge) ([]string, []string, matrix.Matrix, error) {
	rows, err := h.NodeIdentifiers(me.Source)
	if err != nil {
		return nil, nil, nil, err
	}
	cols, err := h.NodeIdentifiers(me.Target)
	if err != nil {
		return nil, nil, nil, err
	}
	m, _, err := FindReadMatrix(h.edgesBase(me))
	if err != nil {
		return nil, nil, nil, err
	}
	if me.Inverted {
		m = matrix.Transpose(m)
	}
	if m.Rows() != len(rows) || m.Cols() != len(cols) {
		return nil, nil, nil, fmt.Errorf("hetmat: %s: %w: %dx%d matrix, %dx%d nodes",
			me.Abbrev(), matrix.ErrDimensionMismatch, m.Rows(), m.Cols(), len(rows), len(cols))
	}

	return rows, cols, matrix.AutoConvert(m, h.cfg.denseThreshold), nil
}

// WriteAdjacencyMatrix stores m as the matrix of me's canonical metaedge,
// transposing when me is inverted.
func (h *HetMat) WriteAdjacencyMatrix(me *hetnet.MetaEdge, m matrix.Matrix) error {
	if me.Inverted {
		m = matrix.Transpose(m)
	}
	format := FormatSparseTSV
	if h.cfg.compress {
		format = FormatSparseTSVGz
	}

	return WriteMatrix(h.edgesBase(me)+"."+string(format), format, m)
}
