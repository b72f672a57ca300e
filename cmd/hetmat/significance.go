// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/hetmat/pipeline"
	"github.com/spf13/cobra"
)

var significanceCmd = &cobra.Command{
	Use:   "significance <metapath>",
	Short: "Print gamma-hurdle p-values for the observed DWPCs of a metapath",
	Long: `Compute (or reuse) the observed DWPC and the degree-grouped
permutation summaries of a metapath, then print one TSV row per nonzero
DWPC with its group statistics and p-value.`,
	Args: cobra.ExactArgs(1),
	RunE: runSignificance,
}

func init() {
	rootCmd.AddCommand(significanceCmd)
}

func runSignificance(cmd *cobra.Command, args []string) error {
	hm, p, err := openPipeline()
	if err != nil {
		return err
	}
	mp, err := hm.MetaGraph().MetaPathFromAbbrev(args[0])
	if err != nil {
		return err
	}
	rows, err := p.CombineDWPCWithDegreeGroups(cmd.Context(), mp, cfg.Damping)
	if err != nil {
		return err
	}

	return pipeline.WriteRows(cmd.OutOrStdout(), rows)
}
