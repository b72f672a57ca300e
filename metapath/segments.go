// SPDX-License-Identifier: MIT

package metapath

import (
	"sort"
	"strings"

	"github.com/katalvlaran/hetmat/hetnet"
)

// Segments splits mp into consecutive sub-metapaths whose edges, joined in
// order, reproduce mp.
//
// Cut points (metanode positions) depend on the category:
//   - no_repeats: none, the whole path is one segment.
//   - disjoint, short_repeat, long_repeat: the first and last position of
//     each repeated type, so every repeated block is exactly one segment.
//   - BAAB, BABA, other: every position of a repeated type.
//
// Errors: whatever Categorize returns.
// Complexity: O(L log L).
func Segments(mp *hetnet.MetaPath) ([]*hetnet.MetaPath, error) {
	cat, err := Categorize(mp)
	if err != nil {
		return nil, err
	}
	if cat == NoRepeats {
		return []*hetnet.MetaPath{mp}, nil
	}

	p := newProfile(mp)
	cuts := map[int]struct{}{0: {}, mp.Len(): {}}
	switch cat {
	case Disjoint, ShortRepeat, LongRepeat:
		first := make(map[*hetnet.MetaNode]int)
		last := make(map[*hetnet.MetaNode]int)
		for i, n := range p.nodes {
			if p.repeated[n] == 0 {
				continue
			}
			if _, ok := first[n]; !ok {
				first[n] = i
			}
			last[n] = i
		}
		for n := range first {
			cuts[first[n]] = struct{}{}
			cuts[last[n]] = struct{}{}
		}
	default:
		for i, n := range p.nodes {
			if p.repeated[n] > 0 {
				cuts[i] = struct{}{}
			}
		}
	}

	positions := make([]int, 0, len(cuts))
	for c := range cuts {
		positions = append(positions, c)
	}
	sort.Ints(positions)

	out := make([]*hetnet.MetaPath, 0, len(positions)-1)
	for k := 0; k+1 < len(positions); k++ {
		out = append(out, mp.Sub(positions[k], positions[k+1]))
	}

	return out, nil
}

// FormatSegments renders segments as "[AeG, GiGaDaG]".
func FormatSegments(segs []*hetnet.MetaPath) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Abbrev()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Repeated returns the metanodes occurring more than once in mp, with their
// occurrence counts.
func Repeated(mp *hetnet.MetaPath) map[*hetnet.MetaNode]int {
	p := newProfile(mp)
	out := make(map[*hetnet.MetaNode]int, len(p.repeated))
	for n, c := range p.repeated {
		out[n] = c
	}

	return out
}
