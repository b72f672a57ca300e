// SPDX-License-Identifier: MIT

package significance

import "gonum.org/v1/gonum/mathext"

// GammaParams are the method-of-moments parameters of a group's nonzero
// values.
type GammaParams struct {
	MeanNZ float64 // mean of the nonzero values
	Beta   float64 // rate
	Alpha  float64 // shape
}

// Fit derives gamma parameters from s. Beta and Alpha are zero when the
// group has no nonzero values or no spread.
func Fit(s Summary) GammaParams {
	if s.NNZ == 0 {
		return GammaParams{}
	}
	// Dividing by the hurdle undoes Summary exactly when every cell is nonzero.
	p := GammaParams{MeanNZ: s.Mean / (float64(s.NNZ) / float64(s.N))}
	if s.SD > 0 {
		p.Beta = p.MeanNZ / (s.SD * s.SD)
		p.Alpha = p.MeanNZ * p.Beta
	}

	return p
}

// PValue is the probability that a permuted DWPC in group s is at least d.
//
//   - d <= 0: 1.
//   - no nonzero values in the group: 0.
//   - zero spread: the nonzero mass sits at MeanNZ; nnz/n if d <= MeanNZ, else 0.
//   - otherwise: nnz/n * Q(alpha, beta*d), Q the regularized upper incomplete gamma.
func PValue(d float64, s Summary) float64 {
	if d <= 0 {
		return 1
	}
	if s.NNZ == 0 || s.N == 0 {
		return 0
	}
	hurdle := float64(s.NNZ) / float64(s.N)
	p := Fit(s)
	if s.SD == 0 {
		if d <= p.MeanNZ {
			return hurdle
		}

		return 0
	}

	return hurdle * mathext.GammaIncRegComp(p.Alpha, p.Beta*d)
}
