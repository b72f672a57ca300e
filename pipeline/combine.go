// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/significance"
)

// Row is one observed (source, target) DWPC with its null model.
type Row struct {
	Source       string
	Target       string
	SourceDegree int
	TargetDegree int
	DWPC         float64
	significance.Summary
	significance.GammaParams
	PValue float64
}

// CombineDWPCWithDegreeGroups joins every nonzero observed DWPC of mp with
// the summary of its degree group, computing summaries first when needed.
// Rows are ordered by source then target position.
func (p *Pipeline) CombineDWPCWithDegreeGroups(ctx context.Context, mp *hetnet.MetaPath, damping float64) ([]Row, error) {
	observed, err := p.ComputeDWPC(mp, damping)
	if err != nil {
		return nil, err
	}
	summaries, err := p.ComputeDegreeGroupedPermutations(ctx, mp, damping)
	if err != nil {
		return nil, err
	}
	deg, err := significance.ComputeDegrees(p.hm, mp)
	if err != nil {
		return nil, err
	}
	transform, err := p.transform(mp, damping)
	if err != nil {
		return nil, err
	}

	var rows []Row
	observed.Matrix.DoNonZero(func(i, j int, v float64) {
		if transform != nil {
			v = transform(v)
		}
		s := summaries[significance.DegreePair{Source: deg.Source[i], Target: deg.Target[j]}]
		rows = append(rows, Row{
			Source:       observed.Rows[i],
			Target:       observed.Cols[j],
			SourceDegree: deg.Source[i],
			TargetDegree: deg.Target[j],
			DWPC:         v,
			Summary:      s,
			GammaParams:  significance.Fit(s),
			PValue:       significance.PValue(v, s),
		})
	})

	return rows, nil
}

// RowHeader names the columns written by WriteRows.
var RowHeader = []string{
	"source", "target", "source_degree", "target_degree", "dwpc",
	"n", "nnz", "mean", "sd", "mean-nz", "beta", "alpha", "p-value",
}

// WriteRows writes rows as TSV with RowHeader.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(RowHeader); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, r := range rows {
		rec := []string{
			r.Source, r.Target,
			strconv.Itoa(r.SourceDegree), strconv.Itoa(r.TargetDegree),
			f(r.DWPC),
			strconv.Itoa(r.N), strconv.Itoa(r.NNZ),
			f(r.Mean), f(r.SD), f(r.MeanNZ), f(r.Beta), f(r.Alpha),
			f(r.PValue),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("pipeline: writing rows: %w", err)
	}

	return nil
}
