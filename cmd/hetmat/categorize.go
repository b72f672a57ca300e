// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hetmat/hetmat"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/metapath"
	"github.com/spf13/cobra"
)

var metagraphPath string

var categorizeCmd = &cobra.Command{
	Use:   "categorize <metapath>...",
	Short: "Show the repeat category and segments of metapaths",
	Long: `Print one line per metapath: abbreviation, repeat pattern, category
and segments. Unsupported metapaths are reported in place of a category.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategorize,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
	categorizeCmd.Flags().StringVar(&metagraphPath, "metagraph", "", "metagraph JSON file (default: the hetmat's)")
}

func loadMetaGraph() (*hetnet.MetaGraph, error) {
	if metagraphPath == "" {
		hm, err := hetmat.Open(cfg.HetMat, hetmatOptions()...)
		if err != nil {
			return nil, err
		}

		return hm.MetaGraph(), nil
	}
	f, err := os.Open(metagraphPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return hetnet.ReadMetaGraph(f)
}

func runCategorize(cmd *cobra.Command, args []string) error {
	mg, err := loadMetaGraph()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, abbrev := range args {
		mp, err := mg.MetaPathFromAbbrev(abbrev)
		if err != nil {
			return err
		}
		pattern := metapath.RepeatPattern(mp)
		cat, err := metapath.Categorize(mp)
		if err != nil {
			fmt.Fprintf(out, "%s\t%s\t%v\n", abbrev, pattern, err)
			continue
		}
		segs, err := metapath.Segments(mp)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", abbrev, pattern, cat, metapath.FormatSegments(segs))
	}

	return nil
}
