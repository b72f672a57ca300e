// SPDX-License-Identifier: MIT

// Package hetnettest provides small, fully known networks for tests across
// the module. Constructors panic on error: the inputs are literals.
package hetnettest

import "github.com/katalvlaran/hetmat/hetnet"

// Disease and gene identifiers of DiseaseGeneGraph, in canonical order.
var (
	Genes    = []string{"CXCR4", "IL2RA", "IRF1", "IRF8", "ITCH", "STAT3", "SUMO1"}
	Diseases = []string{"Crohn's Disease", "Multiple Sclerosis"}
	Tissues  = []string{"Leukocyte", "Lung"}
)

// DiseaseGeneMetaGraph returns the three-metanode schema
// Gene (G), Disease (D), Tissue (T) with metaedges GaD, GiG, DlT and GeT.
func DiseaseGeneMetaGraph() *hetnet.MetaGraph {
	mg, err := hetnet.NewMetaGraph(hetnet.Schema{
		MetanodeKinds: []string{"Gene", "Disease", "Tissue"},
		MetaedgeTuples: []hetnet.MetaEdgeTuple{
			{Source: "Gene", Target: "Disease", Kind: "associates", Direction: hetnet.DirectionBoth},
			{Source: "Gene", Target: "Gene", Kind: "interacts", Direction: hetnet.DirectionBoth},
			{Source: "Disease", Target: "Tissue", Kind: "localizes", Direction: hetnet.DirectionBoth},
			{Source: "Gene", Target: "Tissue", Kind: "expresses", Direction: hetnet.DirectionBoth},
		},
		KindToAbbrev: map[string]string{
			"Gene": "G", "Disease": "D", "Tissue": "T",
			"associates": "a", "interacts": "i", "localizes": "l", "expresses": "e",
		},
	})
	if err != nil {
		panic(err)
	}

	return mg
}

// DiseaseGeneGraph returns the seven-gene, two-disease, two-tissue network:
//
//	GaD  CXCR4–MS, IL2RA–MS, IRF1–CD, IRF8–MS, STAT3–CD, STAT3–MS
//	GiG  CXCR4–IRF1, CXCR4–ITCH, IL2RA–IRF1, IRF1–IRF8, IRF1–SUMO1
//	DlT  MS–Leukocyte
//	GeT  IRF1–Leukocyte, IRF1–Lung
func DiseaseGeneGraph() *hetnet.Graph {
	g := hetnet.NewGraph(DiseaseGeneMetaGraph())
	for _, id := range Genes {
		must(g.AddNode("Gene", id, id, nil))
	}
	for _, id := range Diseases {
		must(g.AddNode("Disease", id, id, nil))
	}
	for _, id := range Tissues {
		must(g.AddNode("Tissue", id, id, nil))
	}

	const cd, ms = "Crohn's Disease", "Multiple Sclerosis"
	edges := []struct{ src, srcID, tgt, tgtID, kind string }{
		{"Gene", "CXCR4", "Disease", ms, "associates"},
		{"Gene", "IL2RA", "Disease", ms, "associates"},
		{"Gene", "IRF1", "Disease", cd, "associates"},
		{"Gene", "IRF8", "Disease", ms, "associates"},
		{"Gene", "STAT3", "Disease", cd, "associates"},
		{"Gene", "STAT3", "Disease", ms, "associates"},
		{"Gene", "CXCR4", "Gene", "IRF1", "interacts"},
		{"Gene", "CXCR4", "Gene", "ITCH", "interacts"},
		{"Gene", "IL2RA", "Gene", "IRF1", "interacts"},
		{"Gene", "IRF1", "Gene", "IRF8", "interacts"},
		{"Gene", "IRF1", "Gene", "SUMO1", "interacts"},
		{"Disease", ms, "Tissue", "Leukocyte", "localizes"},
		{"Gene", "IRF1", "Tissue", "Leukocyte", "expresses"},
		{"Gene", "IRF1", "Tissue", "Lung", "expresses"},
	}
	for _, e := range edges {
		if err := g.AddEdgeByKind(e.src, e.srcID, e.tgt, e.tgtID, e.kind, hetnet.DirectionBoth); err != nil {
			panic(err)
		}
	}

	return g
}

// HetionetMetaGraph returns an eleven-metanode, twenty-four-metaedge schema
// with multi-letter abbreviations (BP, CC, MF, PW, PC, SE) and one directed
// kind (Gr>G). It has no nodes; it exists to parse realistic metapaths.
func HetionetMetaGraph() *hetnet.MetaGraph {
	tuples := []hetnet.MetaEdgeTuple{
		{Source: "Anatomy", Target: "Gene", Kind: "downregulates"},
		{Source: "Anatomy", Target: "Gene", Kind: "expresses"},
		{Source: "Anatomy", Target: "Gene", Kind: "upregulates"},
		{Source: "Compound", Target: "Gene", Kind: "binds"},
		{Source: "Compound", Target: "Side Effect", Kind: "causes"},
		{Source: "Compound", Target: "Gene", Kind: "downregulates"},
		{Source: "Compound", Target: "Disease", Kind: "palliates"},
		{Source: "Compound", Target: "Compound", Kind: "resembles"},
		{Source: "Compound", Target: "Disease", Kind: "treats"},
		{Source: "Compound", Target: "Gene", Kind: "upregulates"},
		{Source: "Disease", Target: "Gene", Kind: "associates"},
		{Source: "Disease", Target: "Gene", Kind: "downregulates"},
		{Source: "Disease", Target: "Anatomy", Kind: "localizes"},
		{Source: "Disease", Target: "Symptom", Kind: "presents"},
		{Source: "Disease", Target: "Disease", Kind: "resembles"},
		{Source: "Disease", Target: "Gene", Kind: "upregulates"},
		{Source: "Gene", Target: "Gene", Kind: "covaries"},
		{Source: "Gene", Target: "Gene", Kind: "interacts"},
		{Source: "Gene", Target: "Biological Process", Kind: "participates"},
		{Source: "Gene", Target: "Cellular Component", Kind: "participates"},
		{Source: "Gene", Target: "Molecular Function", Kind: "participates"},
		{Source: "Gene", Target: "Pathway", Kind: "participates"},
		{Source: "Gene", Target: "Gene", Kind: "regulates", Direction: hetnet.DirectionForward},
		{Source: "Pharmacologic Class", Target: "Compound", Kind: "includes"},
	}
	for i := range tuples {
		if tuples[i].Direction == "" {
			tuples[i].Direction = hetnet.DirectionBoth
		}
	}

	mg, err := hetnet.NewMetaGraph(hetnet.Schema{
		MetaedgeTuples: tuples,
		KindToAbbrev: map[string]string{
			"Anatomy": "A", "Biological Process": "BP", "Cellular Component": "CC",
			"Compound": "C", "Disease": "D", "Gene": "G", "Molecular Function": "MF",
			"Pathway": "PW", "Pharmacologic Class": "PC", "Side Effect": "SE", "Symptom": "S",
			"associates": "a", "binds": "b", "causes": "c", "covaries": "c",
			"downregulates": "d", "expresses": "e", "includes": "i", "interacts": "i",
			"localizes": "l", "palliates": "p", "participates": "p", "presents": "p",
			"regulates": "r", "resembles": "r", "treats": "t", "upregulates": "u",
		},
	})
	if err != nil {
		panic(err)
	}

	return mg
}

func must(_ *hetnet.Node, err error) {
	if err != nil {
		panic(err)
	}
}
