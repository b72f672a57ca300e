// SPDX-License-Identifier: MIT

// Package hetnet provides the typed-network substrate used by every other
// package in hetmat: the schema (MetaNode, MetaEdge, MetaPath, MetaGraph)
// and an in-memory, thread-safe heterogeneous Graph.
//
// The schema is immutable once built. Metaedges always come in pairs: the
// edge declared in the metagraph and its inverse (for an undirected edge
// between one metanode and itself the pair collapses to a single edge that is
// its own inverse). Metapaths are parsed from compact abbreviations:
//
//	DaGiGaD    Disease –associates– Gene –interacts– Gene –associates– Disease
//	SEcCrCbG   multi-letter metanode abbreviations are upper case
//	Gr>GaD     directed kinds carry '>' (forward) or '<' (backward)
//
// Determinism:
//   - Nodes of a metanode are always returned sorted by identifier
//     (lexicographic). That order is the canonical row/column index of every
//     matrix built from the graph.
//   - Edges of a metaedge are returned sorted by (source, target).
//
// Concurrency:
//   - Graph guards its node and edge tables with one sync.RWMutex; readers
//     never block each other. Schema values are read-only after construction.
package hetnet
