// SPDX-License-Identifier: MIT

package significance_test

import (
	"testing"

	"github.com/katalvlaran/hetmat/dwpc"
	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/katalvlaran/hetmat/matrix"
	"github.com/katalvlaran/hetmat/significance"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()
	mg := hetnettest.DiseaseGeneMetaGraph()
	forward := mg.MustMetaPath("DaGiG")
	inverse := mg.MustMetaPath("GiGaD")

	c, err := significance.NewCache(0)
	require.NoError(t, err)

	_, ok := c.Get(forward, 0.5)
	require.False(t, ok)

	summaries := map[significance.DegreePair]significance.Summary{
		{Source: 2, Target: 4}: {N: 3, NNZ: 1, Mean: 0.1, SD: 0.2},
	}
	c.Add(forward, 0.5, summaries)

	got, ok := c.Get(forward, 0.5)
	require.True(t, ok)
	require.Equal(t, summaries, got)

	got, ok = c.Get(inverse, 0.5)
	require.True(t, ok)
	require.Equal(t, map[significance.DegreePair]significance.Summary{
		{Source: 4, Target: 2}: {N: 3, NNZ: 1, Mean: 0.1, SD: 0.2},
	}, got)

	_, ok = c.Get(forward, 0.4)
	require.False(t, ok)
	require.Equal(t, 1, c.Len())

	c.Purge()
	_, ok = c.Get(inverse, 0.5)
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestCache_Evicts(t *testing.T) {
	t.Parallel()
	mg := hetnettest.DiseaseGeneMetaGraph()
	c, err := significance.NewCache(1)
	require.NoError(t, err)

	c.Add(mg.MustMetaPath("GaD"), 0.5, nil)
	c.Add(mg.MustMetaPath("GiG"), 0.5, nil)
	_, ok := c.Get(mg.MustMetaPath("GaD"), 0.5)
	require.False(t, ok)
	_, ok = c.Get(mg.MustMetaPath("GiG"), 0.5)
	require.True(t, ok)
}

func TestComputeDegrees(t *testing.T) {
	t.Parallel()
	g := hetnettest.DiseaseGeneGraph()
	src := dwpc.NewGraphSource(g)

	d, err := significance.ComputeDegrees(src, g.MetaGraph().MustMetaPath("GiGaD"))
	require.NoError(t, err)
	require.Equal(t, hetnettest.Genes, d.Rows)
	require.Equal(t, hetnettest.Diseases, d.Cols)
	require.Equal(t, []int{2, 1, 4, 1, 1, 0, 1}, d.Source)
	require.Equal(t, []int{2, 4}, d.Target)

	_, err = significance.ComputeDegrees(nil, g.MetaGraph().MustMetaPath("GaD"))
	require.ErrorIs(t, err, dwpc.ErrNilSource)
}

func TestMean(t *testing.T) {
	t.Parallel()
	m, err := matrix.FromRows([][]float64{{1, 0, 2}, {0, 0, 3}})
	require.NoError(t, err)
	require.Equal(t, 1.0, significance.Mean(m))
	require.Equal(t, 1.0, significance.Mean(matrix.ToSparse(m)))
}
