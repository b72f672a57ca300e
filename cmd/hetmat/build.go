// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetmat"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <graph.json[.gz]>",
	Short: "Convert a JSON network into a hetmat directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := hetnet.ReadGraphFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	hm, err := hetmat.FromGraph(g, cfg.HetMat, hetmatOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", hm.Dir())

	return nil
}
