// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hetmat/hetnet"
)

// DefaultMultiplier is the number of swap attempts per edge.
const DefaultMultiplier = 10

// ErrNilGraph is returned for a nil input graph.
var ErrNilGraph = errors.New("permute: graph is nil")

// Stats counts what happened to the swap attempts of one metaedge.
type Stats struct {
	Metaedge  string
	Edges     int
	Attempts  int
	Swaps     int
	SameEdge  int // both picks were the same edge
	SelfLoop  int // swap would create a self-loop
	Duplicate int // swap would create an existing edge
}

// Option configures Permute.
type Option func(*options)

type options struct {
	seed       int64
	multiplier float64
}

// WithSeed fixes the random stream. Zero selects the default seed.
func WithSeed(seed int64) Option { return func(o *options) { o.seed = seed } }

// WithMultiplier sets attempts per edge. Panics on a negative or NaN value.
func WithMultiplier(m float64) Option {
	if math.IsNaN(m) || m < 0 {
		panic("permute: multiplier must be non-negative")
	}

	return func(o *options) { o.multiplier = m }
}

// Permute returns a copy of g whose edges have been XSwapped metaedge by
// metaedge, and the per-metaedge statistics in metagraph order. g is not
// modified.
//
// Complexity: O(E · multiplier) expected time, O(E) memory.
func Permute(g *hetnet.Graph, opts ...Option) (*hetnet.Graph, []Stats, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	o := options{multiplier: DefaultMultiplier}
	for _, fn := range opts {
		fn(&o)
	}
	rng := rngFromSeed(o.seed)

	out := g.CloneEmpty()
	edges := g.MetaGraph().Edges(true)
	stats := make([]Stats, 0, len(edges))
	for _, me := range edges {
		pairs := storedPairs(g, me)
		st := xswap(pairs, me.SelfInverse(), me.Source == me.Target, o.multiplier, rng)
		st.Metaedge = me.Abbrev()
		for _, p := range pairs {
			if err := out.AddEdge(me, p.Source, p.Target); err != nil {
				return nil, nil, fmt.Errorf("permute: %s: %w", me.Abbrev(), err)
			}
		}
		stats = append(stats, st)
	}

	return out, stats, nil
}

// storedPairs lists each edge of the canonical metaedge me once.
func storedPairs(g *hetnet.Graph, me *hetnet.MetaEdge) []hetnet.EdgePair {
	all := g.Edges(me)
	if !me.SelfInverse() {
		return all
	}
	out := all[:0:0]
	for _, p := range all {
		if p.Source <= p.Target {
			out = append(out, p)
		}
	}

	return out
}

func undirectedKey(p hetnet.EdgePair) hetnet.EdgePair {
	if p.Target < p.Source {
		return hetnet.EdgePair{Source: p.Target, Target: p.Source}
	}

	return p
}

// xswap permutes pairs in place. With noLoops, swaps that would join a node
// to itself are rejected.
func xswap(pairs []hetnet.EdgePair, undirected, noLoops bool, multiplier float64, rng *rand.Rand) Stats {
	st := Stats{Edges: len(pairs), Attempts: int(multiplier * float64(len(pairs)))}
	key := func(p hetnet.EdgePair) hetnet.EdgePair { return p }
	if undirected {
		key = undirectedKey
	}
	present := make(map[hetnet.EdgePair]struct{}, len(pairs))
	for _, p := range pairs {
		present[key(p)] = struct{}{}
	}

	for k := 0; k < st.Attempts; k++ {
		i, j := rng.Intn(len(pairs)), rng.Intn(len(pairs))
		if i == j {
			st.SameEdge++
			continue
		}
		a, b := pairs[i], pairs[j]
		x := hetnet.EdgePair{Source: a.Source, Target: b.Target}
		y := hetnet.EdgePair{Source: b.Source, Target: a.Target}
		// Undirected edges have no orientation; the other pairing is
		// equally valid.
		if undirected && rng.Intn(2) == 1 {
			x = hetnet.EdgePair{Source: a.Source, Target: b.Source}
			y = hetnet.EdgePair{Source: a.Target, Target: b.Target}
		}
		if noLoops && (x.Source == x.Target || y.Source == y.Target) {
			st.SelfLoop++
			continue
		}
		_, dx := present[key(x)]
		_, dy := present[key(y)]
		if dx || dy || key(x) == key(y) {
			st.Duplicate++
			continue
		}
		delete(present, key(a))
		delete(present, key(b))
		present[key(x)] = struct{}{}
		present[key(y)] = struct{}{}
		pairs[i], pairs[j] = x, y
		st.Swaps++
	}

	return st
}
