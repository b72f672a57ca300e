// SPDX-License-Identifier: MIT

package significance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hetmat/significance"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	t.Parallel()
	p := significance.Fit(significance.Summary{N: 10, NNZ: 5, Mean: 1, SD: 1})
	require.Equal(t, significance.GammaParams{MeanNZ: 2, Beta: 2, Alpha: 4}, p)

	require.Equal(t, significance.GammaParams{}, significance.Fit(significance.Summary{N: 4}))
	require.Equal(t, significance.GammaParams{MeanNZ: 2}, significance.Fit(significance.Summary{N: 4, NNZ: 2, Mean: 1}))
}

func TestPValue(t *testing.T) {
	t.Parallel()
	spread := significance.Summary{N: 10, NNZ: 5, Mean: 1, SD: 1}
	point := significance.Summary{N: 4, NNZ: 2, Mean: 1}

	cases := []struct {
		name string
		d    float64
		s    significance.Summary
		want float64
	}{
		{"zero observation", 0, spread, 1},
		{"negative observation", -1, spread, 1},
		{"no nonzero permutations", 0.5, significance.Summary{N: 8}, 0},
		{"empty group", 0.5, significance.Summary{}, 0},
		{"point mass below", 1.5, point, 0.5},
		{"point mass at", 2, point, 0.5},
		{"point mass above", 3, point, 0},
		{"gamma low", 1, spread, 0.42856173},
		{"gamma mean", 2, spread, 0.21673506},
		{"gamma high", 4, spread, 0.02119006},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, significance.PValue(tc.d, tc.s), 1e-7)
		})
	}
}

func TestPValue_Monotone(t *testing.T) {
	t.Parallel()
	s := significance.Summary{N: 50, NNZ: 20, Mean: 0.3, SD: 0.45}
	hurdle := float64(s.NNZ) / float64(s.N)
	prev := 1.0
	for d := 0.01; d < 5; d += 0.05 {
		p := significance.PValue(d, s)
		require.LessOrEqual(t, p, prev)
		require.LessOrEqual(t, p, hurdle)
		require.False(t, math.IsNaN(p))
		prev = p
	}
}

func TestArcsinhScale(t *testing.T) {
	t.Parallel()
	f := significance.ArcsinhScale(0.5)
	require.Equal(t, 0.0, f(0))
	require.InDelta(t, math.Asinh(4), f(2), 1e-12)
	require.Nil(t, significance.ArcsinhScale(0))
}
