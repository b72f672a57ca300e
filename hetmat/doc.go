// SPDX-License-Identifier: MIT

// Package hetmat stores a heterogeneous network as a directory of matrices
// and keeps the derived path-count tables next to it.
//
// Layout under the root directory:
//
//	metagraph.json
//	nodes/<metanode>.tsv                 position, identifier, name
//	edges/<metaedge>.sparse.tsv.gz       one file per canonical metaedge
//	path-counts/dwpc-<damping>/<metapath>.tsv.gz
//	adjusted-path-counts/dwpc-<damping>/degree-grouped-permutations/<metapath>.tsv.gz
//	permutations/<name>.hetmat/          a nested HetMat per permutation
//
// Inverse metaedges are not stored; AdjacencyMatrix reads the forward file
// and transposes it. Derived tables are write-once: writing a table that
// already exists fails with ErrExists.
//
// A *HetMat satisfies dwpc.Source.
package hetmat
