// SPDX-License-Identifier: MIT

package hetnettest_test

import (
	"testing"

	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/stretchr/testify/require"
)

func TestRandomGraph(t *testing.T) {
	t.Parallel()
	mg := hetnettest.DiseaseGeneMetaGraph()
	sizes := map[string]int{"Gene": 20, "Disease": 4}

	a := hetnettest.RandomGraph(mg, sizes, 0.3, 5)
	b := hetnettest.RandomGraph(mg, sizes, 0.3, 5)
	gene, err := mg.Node("G")
	require.NoError(t, err)
	tissue, err := mg.Node("T")
	require.NoError(t, err)
	require.Equal(t, 20, a.NodeCount(gene))
	require.Zero(t, a.NodeCount(tissue))
	require.Equal(t, "G000", a.NodeIdentifiers(gene)[0])

	for _, me := range mg.Edges(false) {
		require.Equal(t, a.Edges(me), b.Edges(me), me.Abbrev())
		for _, p := range a.Edges(me) {
			require.NotEqual(t, p.Source, p.Target, me.Abbrev())
		}
	}
	gad, err := mg.MetaEdge("GaD")
	require.NoError(t, err)
	require.Positive(t, a.EdgeCount(gad))

	empty := hetnettest.RandomGraph(mg, sizes, 0, 5)
	full := hetnettest.RandomGraph(mg, sizes, 1, 5)
	gig, err := mg.MetaEdge("GiG")
	require.NoError(t, err)
	require.Zero(t, empty.EdgeCount(gig))
	require.Equal(t, 20*19/2, full.EdgeCount(gig))
	require.Equal(t, 20*4, full.EdgeCount(gad))

	require.Panics(t, func() { hetnettest.RandomGraph(mg, sizes, 1.5, 5) })
}
