// SPDX-License-Identifier: MIT

package hetmat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/hetmat/hetnet"
)

const (
	permutationsDir = "permutations"
	permutationExt  = ".hetmat"
)

// PermutationNames lists stored permutations in sorted order.
func (h *HetMat) PermutationNames() ([]string, error) {
	entries, err := os.ReadDir(h.path(permutationsDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), permutationExt) {
			names = append(names, strings.TrimSuffix(e.Name(), permutationExt))
		}
	}
	sort.Strings(names)

	return names, nil
}

// Permutation opens the named permutation with this HetMat's options.
func (h *HetMat) Permutation(name string) (*HetMat, error) {
	return Open(h.permutationDir(name), h.opts...)
}

// Permutations opens every stored permutation, sorted by name.
func (h *HetMat) Permutations() ([]*HetMat, error) {
	names, err := h.PermutationNames()
	if err != nil {
		return nil, err
	}
	out := make([]*HetMat, 0, len(names))
	for _, name := range names {
		p, err := h.Permutation(name)
		if err != nil {
			return nil, fmt.Errorf("hetmat: permutation %s: %w", name, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// AddPermutation stores g as the permutation name.
//
// Errors: ErrExists when the permutation is already present.
func (h *HetMat) AddPermutation(name string, g *hetnet.Graph) (*HetMat, error) {
	dir := h.permutationDir(name)
	if exists(dir) {
		return nil, fmt.Errorf("%w: permutation %s", ErrExists, name)
	}

	return FromGraph(g, dir, h.opts...)
}

func (h *HetMat) permutationDir(name string) string {
	return h.path(permutationsDir, name+permutationExt)
}
