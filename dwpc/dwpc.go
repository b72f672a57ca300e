// SPDX-License-Identifier: MIT

package dwpc

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/matrix"
	"github.com/katalvlaran/hetmat/metapath"
)

// residueTol is the magnitude, relative to the largest entry, below which an
// inclusion–exclusion result is treated as zero.
const residueTol = 1e-12

// Result is a DWPC matrix with its labels.
type Result struct {
	Rows     []string // source-metanode identifiers
	Cols     []string // target-metanode identifiers
	Matrix   matrix.Matrix
	Category metapath.Category
}

// Option configures DWPC.
type Option func(*options)

type options struct {
	exact bool
}

// WithExact forces exact path enumeration for the whole metapath instead of
// the category strategy. Results are identical; use it to cross-check or for
// very short metapaths on sparse graphs.
func WithExact() Option { return func(o *options) { o.exact = true } }

// DWPC computes the degree-weighted path count matrix of mp at damping.
//
// Errors: ErrNilSource; metapath.ErrUnsupportedMetapath (wrapped) when the
// metapath cannot be categorized, before any matrix is read; Source and
// matrix errors.
func DWPC(src Source, mp *hetnet.MetaPath, damping float64, opts ...Option) (*Result, error) {
	if src == nil || mp == nil {
		return nil, ErrNilSource
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	cat, err := metapath.Categorize(mp)
	if err != nil {
		return nil, err
	}

	c := &chain{src: src, mp: mp, damping: damping, weighted: make([]matrix.Matrix, mp.Len())}
	var m matrix.Matrix
	switch {
	case o.exact:
		m, err = c.enumerate(0, mp.Len())
	case cat == metapath.NoRepeats:
		m, err = c.product(0, mp.Len())
	case cat == metapath.Disjoint, cat == metapath.ShortRepeat, cat == metapath.LongRepeat:
		m, err = c.disjoint()
	case cat == metapath.BAAB:
		m, err = c.baab()
	case cat == metapath.BABA:
		m, err = c.baba()
	default:
		m, err = c.enumerate(0, mp.Len())
	}
	if err != nil {
		return nil, fmt.Errorf("dwpc: %s: %w", mp.Abbrev(), err)
	}

	return &Result{Rows: c.rows, Cols: c.cols, Matrix: m, Category: cat}, nil
}

// PathCount is DWPC with damping 0: the number of node-unique paths.
func PathCount(src Source, mp *hetnet.MetaPath, opts ...Option) (*Result, error) {
	return DWPC(src, mp, 0, opts...)
}

// chain holds the degree-weighted matrix of every metaedge of mp, loaded on
// first use. Edge spans [i, j) index metaedges; node positions index
// mp.Nodes().
type chain struct {
	src      Source
	mp       *hetnet.MetaPath
	damping  float64
	weighted []matrix.Matrix
	rows     []string
	cols     []string
}

// edge returns the weighted matrix of metaedge k.
func (c *chain) edge(k int) (matrix.Matrix, error) {
	if c.weighted[k] != nil {
		return c.weighted[k], nil
	}
	rows, cols, adj, err := c.src.AdjacencyMatrix(c.mp.Edge(k))
	if err != nil {
		return nil, err
	}
	w, err := matrix.DegreeWeightStep(adj, c.damping, c.damping, true)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		c.rows = rows
	}
	if k == c.mp.Len()-1 {
		c.cols = cols
	}
	c.weighted[k] = w

	return w, nil
}

// product multiplies the weighted matrices of edges [i, j).
func (c *chain) product(i, j int) (matrix.Matrix, error) {
	out, err := c.edge(i)
	if err != nil {
		return nil, err
	}
	for k := i + 1; k < j; k++ {
		next, err := c.edge(k)
		if err != nil {
			return nil, err
		}
		if out, err = matrix.Mul(out, next); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// mulAll multiplies a left-to-right sequence, skipping nil entries (empty spans).
func mulAll(ms ...matrix.Matrix) (matrix.Matrix, error) {
	var out matrix.Matrix
	for _, m := range ms {
		if m == nil {
			continue
		}
		if out == nil {
			out = m
			continue
		}
		var err error
		if out, err = matrix.Mul(out, m); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// span returns product(i, j), or nil when the span is empty.
func (c *chain) span(i, j int) (matrix.Matrix, error) {
	if i >= j {
		return nil, nil
	}

	return c.product(i, j)
}

// disjoint multiplies segment by segment. A segment that starts and ends on
// the same repeated metanode is a block: two occurrences need only the
// diagonal removed, three or more are enumerated.
func (c *chain) disjoint() (matrix.Matrix, error) {
	segs, err := metapath.Segments(c.mp)
	if err != nil {
		return nil, err
	}

	parts := make([]matrix.Matrix, 0, len(segs))
	start := 0
	for _, seg := range segs {
		end := start + seg.Len()
		occurrences := 0
		if seg.Source() == seg.Target() {
			for _, n := range seg.Nodes() {
				if n == seg.Source() {
					occurrences++
				}
			}
		}

		var part matrix.Matrix
		switch {
		case occurrences == 2:
			if part, err = c.product(start, end); err == nil {
				part = matrix.ZeroDiagonal(part)
			}
		case occurrences > 2:
			part, err = c.enumerate(start, end)
		default:
			part, err = c.product(start, end)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		start = end
	}

	return mulAll(parts...)
}

// repeatPositions returns the node positions of repeated metanodes.
func (c *chain) repeatPositions() []int {
	repeated := metapath.Repeated(c.mp)
	var pos []int
	for i, n := range c.mp.Nodes() {
		if repeated[n] > 0 {
			pos = append(pos, i)
		}
	}

	return pos
}

// baab handles B…A…A…B: the inner A-span and the outer B-span each lose
// their diagonal.
func (c *chain) baab() (matrix.Matrix, error) {
	p := c.repeatPositions() // b1 < a1 < a2 < b2
	b1, a1, a2, b2 := p[0], p[1], p[2], p[3]

	inner, err := c.product(a1, a2)
	if err != nil {
		return nil, err
	}
	left, err := c.span(b1, a1)
	if err != nil {
		return nil, err
	}
	right, err := c.span(a2, b2)
	if err != nil {
		return nil, err
	}
	outer, err := mulAll(left, matrix.ZeroDiagonal(inner), right)
	if err != nil {
		return nil, err
	}
	prefix, err := c.span(0, b1)
	if err != nil {
		return nil, err
	}
	suffix, err := c.span(b2, c.mp.Len())
	if err != nil {
		return nil, err
	}

	return mulAll(prefix, matrix.ZeroDiagonal(outer), suffix)
}

// baba handles B…A…B…A. With X, Y, Z the spans between consecutive repeat
// positions, paths must avoid x == z and y == w:
//
//	XYZ − diag(XY)·Z − X·diag(YZ) + X ∘ Yᵀ ∘ Z
func (c *chain) baba() (matrix.Matrix, error) {
	p := c.repeatPositions()
	x, err := c.product(p[0], p[1])
	if err != nil {
		return nil, err
	}
	y, err := c.product(p[1], p[2])
	if err != nil {
		return nil, err
	}
	z, err := c.product(p[2], p[3])
	if err != nil {
		return nil, err
	}

	xy, err := matrix.Mul(x, y)
	if err != nil {
		return nil, err
	}
	yz, err := matrix.Mul(y, z)
	if err != nil {
		return nil, err
	}
	core, err := matrix.Mul(xy, z)
	if err != nil {
		return nil, err
	}
	sameFirst, err := matrix.ScaleRows(z, matrix.Diagonal(xy))
	if err != nil {
		return nil, err
	}
	sameSecond, err := matrix.ScaleCols(x, matrix.Diagonal(yz))
	if err != nil {
		return nil, err
	}
	both, err := matrix.Hadamard(x, matrix.Transpose(y))
	if err != nil {
		return nil, err
	}
	if both, err = matrix.Hadamard(both, z); err != nil {
		return nil, err
	}

	for _, step := range []struct {
		m   matrix.Matrix
		add bool
	}{{sameFirst, false}, {sameSecond, false}, {both, true}} {
		if step.add {
			core, err = matrix.Add(core, step.m)
		} else {
			core, err = matrix.Sub(core, step.m)
		}
		if err != nil {
			return nil, err
		}
	}

	// Cancellation leaves rounding residue where no path exists.
	core = matrix.DropBelow(core, residueTol*matrix.MaxAbs(core))

	prefix, err := c.span(0, p[0])
	if err != nil {
		return nil, err
	}
	suffix, err := c.span(p[3], c.mp.Len())
	if err != nil {
		return nil, err
	}

	return mulAll(prefix, core, suffix)
}
