// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	permuteCount      int
	permuteSeed       int64
	permuteMultiplier float64
)

var permuteCmd = &cobra.Command{
	Use:   "permute",
	Short: "Add degree-preserving permutations to the hetmat",
	Long: `Generate XSwap permutations of the stored network under
<hetmat>/permutations. Existing permutations are kept, so raising --count
extends the set.`,
	Args: cobra.NoArgs,
	RunE: runPermute,
}

func init() {
	rootCmd.AddCommand(permuteCmd)
	f := permuteCmd.Flags()
	f.IntVar(&permuteCount, "count", 0, "number of permutations (default from config)")
	f.Int64Var(&permuteSeed, "seed", 0, "base random seed (default from config)")
	f.Float64Var(&permuteMultiplier, "multiplier", 0, "swap attempts per edge (default from config)")
}

func runPermute(cmd *cobra.Command, _ []string) error {
	pc := cfg.Permutations
	f := cmd.Flags()
	if f.Changed("count") {
		pc.Count = permuteCount
	}
	if f.Changed("seed") {
		pc.Seed = permuteSeed
	}
	if f.Changed("multiplier") {
		pc.Multiplier = permuteMultiplier
	}

	hm, p, err := openPipeline()
	if err != nil {
		return err
	}
	if err := p.GeneratePermutations(cmd.Context(), pc.Count, pc.Seed, pc.Multiplier); err != nil {
		return err
	}
	names, err := hm.PermutationNames()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d permutations in %s\n", len(names), hm.Dir())

	return nil
}
