// Package hetmat computes degree-weighted path counts (DWPC) over
// heterogeneous networks and tells you which of them are surprising.
//
// 🚀 What is hetmat?
//
//	A matrix toolkit for typed networks (genes, diseases, tissues, ...):
//		• Schema: metanodes, metaedges, metapaths and their abbreviations
//		• Matrices: dense (gonum) and sparse (CSR) adjacency, normalization
//		• DWPC: exact path counts without repeated nodes, by metapath category
//		• Null model: XSwap permutations, degree-grouped gamma-hurdle p-values
//		• Storage: an on-disk directory of node tables, edge matrices and
//		  derived path-count tables
//
// Under the hood, everything is organized in flat subpackages:
//
//	hetnet/         metagraph, metapath, in-memory graph, JSON read/write
//	matrix/         Matrix interface, Dense/Sparse, products, normalization
//	metapath/       repeat categories and segmentation of metapaths
//	dwpc/           Diffuse, DWPC and exact path enumeration
//	significance/   degree groups, summaries, p-values, summary cache
//	hetmat/         on-disk store, permutation sub-stores
//	permute/        degree-preserving XSwap
//	pipeline/       bulk permutation workflow
//	config/         YAML settings
//	cmd/hetmat      command-line interface
//
// Quick example, the metapath Disease–associates–Gene–interacts–Gene–associates–Disease:
//
//	g := hetnettest.DiseaseGeneGraph()
//	mp := g.MetaGraph().MustMetaPath("DaGiGaD")
//	res, _ := dwpc.DWPC(dwpc.NewGraphSource(g), mp, 0.5)
//	// res.Matrix[Crohn's Disease, Multiple Sclerosis] ≈ 0.4786
//
//	go get github.com/katalvlaran/hetmat
package hetmat
