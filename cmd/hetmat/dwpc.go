// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"
)

var dwpcCmd = &cobra.Command{
	Use:   "dwpc <metapath>",
	Short: "Compute and store the observed DWPC of a metapath",
	Long: `Compute the DWPC matrix of a metapath at --damping, store it under
<hetmat>/path-counts and print its nonzero cells as source, target, dwpc.
A stored table is reused.`,
	Args: cobra.ExactArgs(1),
	RunE: runDWPC,
}

func init() {
	rootCmd.AddCommand(dwpcCmd)
}

func runDWPC(cmd *cobra.Command, args []string) error {
	hm, p, err := openPipeline()
	if err != nil {
		return err
	}
	mp, err := hm.MetaGraph().MetaPathFromAbbrev(args[0])
	if err != nil {
		return err
	}
	res, err := p.ComputeDWPC(mp, cfg.Damping)
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	w.Comma = '\t'
	if err := w.Write([]string{"source", "target", "dwpc"}); err != nil {
		return err
	}
	res.Matrix.DoNonZero(func(i, j int, v float64) {
		if err == nil {
			err = w.Write([]string{res.Rows[i], res.Cols[j], strconv.FormatFloat(v, 'g', -1, 64)})
		}
	})
	if err != nil {
		return err
	}
	w.Flush()

	return w.Error()
}
