// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hetmat/dwpc"
	"github.com/katalvlaran/hetmat/hetmat"
	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/katalvlaran/hetmat/matrix"
	"github.com/katalvlaran/hetmat/pipeline"
	"github.com/katalvlaran/hetmat/significance"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const nPerms = 6

func setup(t *testing.T, opts ...pipeline.Option) (*hetmat.HetMat, *pipeline.Pipeline) {
	t.Helper()
	hm, err := hetmat.FromGraph(hetnettest.DiseaseGeneGraph(), filepath.Join(t.TempDir(), "example.hetmat"))
	require.NoError(t, err)
	p, err := pipeline.New(hm, append([]pipeline.Option{pipeline.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, p.GeneratePermutations(context.Background(), nPerms, 9, 10))

	return hm, p
}

func TestGeneratePermutations(t *testing.T) {
	t.Parallel()
	hm, p := setup(t)

	names, err := hm.PermutationNames()
	require.NoError(t, err)
	require.Equal(t, []string{"000", "001", "002", "003", "004", "005"}, names)

	// A second run keeps existing permutations and adds the missing ones.
	require.NoError(t, p.GeneratePermutations(context.Background(), nPerms+2, 9, 10))
	names, err = hm.PermutationNames()
	require.NoError(t, err)
	require.Len(t, names, nPerms+2)
}

func TestGeneratePermutations_WorkerIndependent(t *testing.T) {
	t.Parallel()
	a, _ := setup(t, pipeline.WithWorkers(1))
	b, _ := setup(t, pipeline.WithWorkers(8))

	pa, err := a.Permutations()
	require.NoError(t, err)
	pb, err := b.Permutations()
	require.NoError(t, err)
	require.Len(t, pb, len(pa))
	for i := range pa {
		meA, err := pa[i].MetaGraph().MetaEdge("GiG")
		require.NoError(t, err)
		meB, err := pb[i].MetaGraph().MetaEdge("GiG")
		require.NoError(t, err)
		_, _, ma, err := pa[i].AdjacencyMatrix(meA)
		require.NoError(t, err)
		_, _, mb, err := pb[i].AdjacencyMatrix(meB)
		require.NoError(t, err)
		require.True(t, matrix.AllClose(ma, mb, 0))
	}
}

func TestComputeDWPC(t *testing.T) {
	t.Parallel()
	hm, p := setup(t)
	mp := hm.MetaGraph().MustMetaPath("DaGiGaD")

	res, err := p.ComputeDWPC(mp, 0.5)
	require.NoError(t, err)
	require.True(t, hm.HasPathCounts(mp, 0.5))
	v, err := res.Matrix.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.47855339, v, 1e-7)

	again, err := p.ComputeDWPC(mp, 0.5)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(res.Matrix, again.Matrix, 0))
}

func TestComputeDegreeGroupedPermutations(t *testing.T) {
	t.Parallel()
	hm, p := setup(t, pipeline.WithWorkers(3))
	mp := hm.MetaGraph().MustMetaPath("GiGaD")
	ctx := context.Background()

	got, err := p.ComputeDegreeGroupedPermutations(ctx, mp, 0.5)
	require.NoError(t, err)
	require.True(t, hm.HasDegreeGroups(mp, 0.5))

	// Serial reference over the same permutations.
	deg, err := significance.ComputeDegrees(hm, mp)
	require.NoError(t, err)
	perms, err := hm.Permutations()
	require.NoError(t, err)
	want := significance.Aggregate{}
	for _, perm := range perms {
		res, err := dwpc.DWPC(perm, mp, 0.5)
		require.NoError(t, err)
		agg, err := significance.GroupByDegree(res.Matrix, deg.Source, deg.Target, nil)
		require.NoError(t, err)
		want.Merge(agg)
	}
	wantSummaries := want.Summarize()
	require.Len(t, got, len(wantSummaries))
	total := 0
	for k, w := range wantSummaries {
		g := got[k]
		require.Equal(t, w.N, g.N, "%v", k)
		require.Equal(t, w.NNZ, g.NNZ, "%v", k)
		require.InDelta(t, w.Mean, g.Mean, 1e-12, "%v", k)
		require.InDelta(t, w.SD, g.SD, 1e-12, "%v", k)
		total += g.N
	}
	require.Equal(t, nPerms*len(hetnettest.Genes)*len(hetnettest.Diseases), total)

	// The inverse metapath is answered from the cache, transposed.
	inv, err := p.ComputeDegreeGroupedPermutations(ctx, mp.Inverse(), 0.5)
	require.NoError(t, err)
	require.Equal(t, significance.Transpose(got), inv)

	// A fresh pipeline reads the stored table.
	fresh, err := pipeline.New(hm)
	require.NoError(t, err)
	inv, err = fresh.ComputeDegreeGroupedPermutations(ctx, mp.Inverse(), 0.5)
	require.NoError(t, err)
	require.Equal(t, significance.Transpose(got), inv)
}

func TestComputeDegreeGroupedPermutations_NoPermutations(t *testing.T) {
	t.Parallel()
	hm, err := hetmat.FromGraph(hetnettest.DiseaseGeneGraph(), filepath.Join(t.TempDir(), "bare.hetmat"))
	require.NoError(t, err)
	p, err := pipeline.New(hm)
	require.NoError(t, err)

	_, err = p.ComputeDegreeGroupedPermutations(context.Background(), hm.MetaGraph().MustMetaPath("GaD"), 0.5)
	require.ErrorIs(t, err, pipeline.ErrNoPermutations)
}

func TestComputeDegreeGroupedPermutations_Canceled(t *testing.T) {
	t.Parallel()
	hm, p := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mp := hm.MetaGraph().MustMetaPath("DaGiG")
	_, err := p.ComputeDegreeGroupedPermutations(ctx, mp, 0.5)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, hm.HasDegreeGroups(mp, 0.5))
}

func TestCombineDWPCWithDegreeGroups(t *testing.T) {
	t.Parallel()
	for _, arcsinh := range []bool{false, true} {
		hm, p := setup(t, pipeline.WithArcsinhScale(arcsinh))
		mp := hm.MetaGraph().MustMetaPath("DaGiGaD")

		rows, err := p.CombineDWPCWithDegreeGroups(context.Background(), mp, 0.5)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Crohn's Disease", rows[0].Source)
		require.Equal(t, "Multiple Sclerosis", rows[0].Target)
		require.Equal(t, 2, rows[0].SourceDegree)
		require.Equal(t, 4, rows[0].TargetDegree)
		if !arcsinh {
			require.InDelta(t, 0.47855339, rows[0].DWPC, 1e-7)
		}
		for _, r := range rows {
			require.Equal(t, nPerms, r.N)
			require.GreaterOrEqual(t, r.PValue, 0.0)
			require.LessOrEqual(t, r.PValue, 1.0)
			require.Equal(t, significance.PValue(r.DWPC, r.Summary), r.PValue)
		}

		var buf bytes.Buffer
		require.NoError(t, pipeline.WriteRows(&buf, rows))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, strings.Join(pipeline.RowHeader, "\t"), lines[0])
	}
}
