// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/katalvlaran/hetmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestMetaedgeToAdjacency(t *testing.T) {
	t.Parallel()
	g := hetnettest.DiseaseGeneGraph()
	genes, diseases, tissues := hetnettest.Genes, hetnettest.Diseases, hetnettest.Tissues

	cases := []struct {
		abbrev     string
		rows, cols []string
		want       [][]float64
	}{
		{"GiG", genes, genes, [][]float64{
			{0, 0, 1, 0, 1, 0, 0},
			{0, 0, 1, 0, 0, 0, 0},
			{1, 1, 0, 1, 0, 0, 1},
			{0, 0, 1, 0, 0, 0, 0},
			{1, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0, 0, 0},
		}},
		{"GaD", genes, diseases, gad},
		{"DlT", diseases, tissues, [][]float64{{0, 0}, {1, 0}}},
		{"TlD", tissues, diseases, [][]float64{{0, 1}, {0, 0}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.abbrev, func(t *testing.T) {
			t.Parallel()
			me, err := g.MetaGraph().MetaEdge(tc.abbrev)
			require.NoError(t, err)

			rows, cols, m, err := matrix.MetaedgeToAdjacency(g, me)
			require.NoError(t, err)
			require.Equal(t, tc.rows, rows)
			require.Equal(t, tc.cols, cols)
			require.IsType(t, &matrix.Dense{}, m)
			requireClose(t, tc.want, m)

			_, _, sm, err := matrix.MetaedgeToAdjacency(g, me, matrix.WithDenseThreshold(1))
			require.NoError(t, err)
			require.IsType(t, &matrix.Sparse{}, sm)
			requireClose(t, tc.want, sm)
		})
	}
}

func TestMetaedgeToAdjacency_Errors(t *testing.T) {
	t.Parallel()
	me, _ := hetnettest.DiseaseGeneMetaGraph().MetaEdge("GaD")
	_, _, _, err := matrix.MetaedgeToAdjacency(nil, me)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	require.Panics(t, func() { matrix.WithDenseThreshold(1.5) })
}
