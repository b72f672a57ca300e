// SPDX-License-Identifier: MIT

package metapath_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/katalvlaran/hetmat/metapath"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	t.Parallel()
	mg := hetnettest.HetionetMetaGraph()

	cases := map[string]metapath.Category{
		"CpD":     metapath.NoRepeats,
		"GbCtDlA": metapath.NoRepeats,

		"GiG":       metapath.ShortRepeat,
		"DaGiGbC":   metapath.ShortRepeat,
		"AlDaGiG":   metapath.ShortRepeat,
		"AeGaDaGiG": metapath.ShortRepeat,

		"GiGiGiG":                       metapath.LongRepeat,
		"GiGiGcG":                       metapath.LongRepeat,
		"G" + strings.Repeat("iG", 10): metapath.LongRepeat,

		"GiGbCrC":     metapath.Disjoint,
		"DaGiGbCrC":   metapath.Disjoint,
		"GiGaDpCrC":   metapath.Disjoint,
		"GiGbCrCpDrD": metapath.Disjoint,
		"CrCbGiGaDrD": metapath.Disjoint,

		"GbCbGbC":     metapath.BABA,
		"AlDlAlD":     metapath.BABA,
		"CbGaDaGeAlD": metapath.BABA,
		"DlAeGaDaG":   metapath.BABA,

		"GbCrCbG":     metapath.BAAB,
		"DaGiGaD":     metapath.BAAB,
		"GeAlDlAeG":   metapath.BAAB,
		"CbGaDrDaGeA": metapath.BAAB,

		"GiGcGiG":   metapath.Other,
		"DaGiGaDaG": metapath.Other,
		"CrCbGbCbG": metapath.Other,
		"CbGiGbCrC": metapath.Other,
		"CbGbCbGbC": metapath.Other,
		"CrCbGiGbC": metapath.Other,
	}
	for abbrev, want := range cases {
		abbrev, want := abbrev, want
		t.Run(abbrev, func(t *testing.T) {
			t.Parallel()
			got, err := metapath.Categorize(mg.MustMetaPath(abbrev))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestCategorize_Unsupported(t *testing.T) {
	t.Parallel()
	mg := hetnettest.HetionetMetaGraph()

	cases := map[string]error{
		"GbCpDaGbCpD":      metapath.ErrTooManyOverlappingRepeats,
		"CbGaDrDaGbC":      metapath.ErrTooManyOverlappingRepeats,
		"DlAuGcGpBPpGaDlA": metapath.ErrTooManyOverlappingRepeats,
		"GbCrCrCrCrCbG":    metapath.ErrMetapathTooComplex,
		"DaGiGiGiGiGaD":    metapath.ErrMetapathTooComplex,
	}
	for abbrev, want := range cases {
		_, err := metapath.Categorize(mg.MustMetaPath(abbrev))
		require.ErrorIs(t, err, want, abbrev)
		require.ErrorIs(t, err, metapath.ErrUnsupportedMetapath, abbrev)
		require.Contains(t, err.Error(), abbrev)
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	t.Parallel()
	mp := hetnettest.HetionetMetaGraph().MustMetaPath("CbGaDaGeAlD")
	first, err := metapath.Categorize(mp)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		got, err := metapath.Categorize(mp)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestRepeatPattern(t *testing.T) {
	t.Parallel()
	mg := hetnettest.HetionetMetaGraph()

	cases := map[string]string{
		"CpD":       "",
		"GbCrCbG":   "ABBA",
		"GbCbGbC":   "ABAB",
		"GiGiG":     "AAA",
		"DaGiGaDaG": "ABBAB",
	}
	for abbrev, want := range cases {
		require.Equal(t, want, metapath.RepeatPattern(mg.MustMetaPath(abbrev)), abbrev)
	}
}
