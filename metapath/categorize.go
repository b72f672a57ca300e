// SPDX-License-Identifier: MIT

package metapath

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet"
)

// Category is the repeat structure of a metapath.
type Category string

// Categories, in the order the decision table can produce them.
const (
	NoRepeats   Category = "no_repeats"
	Disjoint    Category = "disjoint"
	ShortRepeat Category = "short_repeat"
	LongRepeat  Category = "long_repeat"
	BAAB        Category = "BAAB"
	BABA        Category = "BABA"
	Other       Category = "other"
)

// maxOverlapNodes bounds the metanode count of an "other" metapath with
// overlapping repeats.
const maxOverlapNodes = 5

// maxShortRepeat is the largest occurrence count of a lone repeated type
// still classified short_repeat.
const maxShortRepeat = 3

// profile is the normalized repeat pattern every rule reads.
type profile struct {
	nodes       []*hetnet.MetaNode
	repeated    map[*hetnet.MetaNode]int // type → occurrence count, only types with ≥2
	repeatsOnly []*hetnet.MetaNode       // occurrences of repeated types, in order
	groups      int                      // runs of equal values in repeatsOnly

	selfEdges    int // distinct metaedges with Source == Target
	selfEdgeRuns int // runs of identical consecutive metaedges among them
}

func newProfile(mp *hetnet.MetaPath) profile {
	p := profile{nodes: mp.Nodes(), repeated: make(map[*hetnet.MetaNode]int)}

	counts := make(map[*hetnet.MetaNode]int, len(p.nodes))
	for _, n := range p.nodes {
		counts[n]++
	}
	for n, c := range counts {
		if c > 1 {
			p.repeated[n] = c
		}
	}
	for _, n := range p.nodes {
		if p.repeated[n] == 0 {
			continue
		}
		if len(p.repeatsOnly) == 0 || p.repeatsOnly[len(p.repeatsOnly)-1] != n {
			p.groups++
		}
		p.repeatsOnly = append(p.repeatsOnly, n)
	}

	distinct := make(map[*hetnet.MetaEdge]struct{})
	var prev *hetnet.MetaEdge
	for _, e := range mp.Edges() {
		if e.Source != e.Target {
			continue
		}
		distinct[e] = struct{}{}
		if e != prev {
			p.selfEdgeRuns++
		}
		prev = e
	}
	p.selfEdges = len(distinct)

	return p
}

// collapsible reports whether the repeat groups merge into a single group:
// at most one adjacent duplicate separates them (ABBA, ABAB, ABA).
func (p profile) collapsible() bool { return len(p.repeatsOnly)-p.groups <= 1 }

// rule is one row of the decision table. Rows are tried in order; the first
// whose when() holds decides.
type rule struct {
	name string
	when func(p profile) bool
	then func(p profile) (Category, error)
}

func fixed(c Category) func(profile) (Category, error) {
	return func(profile) (Category, error) { return c, nil }
}

// refineDisjoint splits disjoint paths with a single repeated type by how
// many times that type occurs.
func refineDisjoint(p profile) (Category, error) {
	if len(p.repeated) != 1 {
		return Disjoint, nil
	}
	for _, c := range p.repeated {
		if c <= maxShortRepeat {
			return ShortRepeat, nil
		}
	}

	return LongRepeat, nil
}

var decisionTable = []rule{
	{
		name: "no repeated metanode",
		when: func(p profile) bool { return len(p.repeated) == 0 },
		then: fixed(NoRepeats),
	},
	{
		// Several same-metanode relations (GiG, GcG, CrC...) are disjoint only
		// when each forms one run and each repeated type forms one block.
		name: "multiple same-metanode metaedges",
		when: func(p profile) bool { return p.selfEdges > 1 },
		then: func(p profile) (Category, error) {
			if p.selfEdgeRuns == p.selfEdges && p.groups == len(p.repeated) {
				return refineDisjoint(p)
			}
			return Other, nil
		},
	},
	{
		name: "one block per repeated type",
		when: func(p profile) bool { return p.groups == len(p.repeated) },
		then: refineDisjoint,
	},
	{
		name: "single collapsed group of four",
		when: func(p profile) bool { return p.collapsible() && len(p.repeatsOnly) == 4 },
		then: func(p profile) (Category, error) {
			if p.repeatsOnly[0] == p.repeatsOnly[3] {
				return BAAB, nil
			}
			return BABA, nil
		},
	},
	{
		name: "more than two overlapping repeated types",
		when: func(p profile) bool { return len(p.repeated) > 2 },
		then: func(profile) (Category, error) { return "", ErrTooManyOverlappingRepeats },
	},
	{
		name: "overlapping repeats too long",
		when: func(p profile) bool { return len(p.nodes) > maxOverlapNodes },
		then: func(profile) (Category, error) { return "", ErrMetapathTooComplex },
	},
	{
		name: "remaining overlapping repeats",
		when: func(profile) bool { return true },
		then: fixed(Other),
	},
}

// Categorize classifies mp by walking the decision table.
//
// Errors: ErrTooManyOverlappingRepeats, ErrMetapathTooComplex (both wrap
// ErrUnsupportedMetapath), annotated with the metapath abbreviation.
// Complexity: O(L) for L metaedges.
func Categorize(mp *hetnet.MetaPath) (Category, error) {
	p := newProfile(mp)
	for _, r := range decisionTable {
		if !r.when(p) {
			continue
		}
		c, err := r.then(p)
		if err != nil {
			return "", fmt.Errorf("%s: %w", mp.Abbrev(), err)
		}
		return c, nil
	}

	return Other, nil
}

// RepeatPattern renders the repeated-metanode occurrences as letters
// assigned in order of first appearance, e.g. "ABBA" for GbCrCbG and "" for
// a path without repeats.
func RepeatPattern(mp *hetnet.MetaPath) string {
	p := newProfile(mp)
	letters := make(map[*hetnet.MetaNode]byte)
	out := make([]byte, 0, len(p.repeatsOnly))
	for _, n := range p.repeatsOnly {
		l, ok := letters[n]
		if !ok {
			l = byte('A' + len(letters))
			letters[n] = l
		}
		out = append(out, l)
	}

	return string(out)
}
