// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/hetmat/config"
	"github.com/katalvlaran/hetmat/hetmat"
	"github.com/katalvlaran/hetmat/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global flags; they override values from --config.
var (
	configPath string
	hetmatPath string
	damping    float64
	workers    int
	logLevel   string
)

// Resolved by PersistentPreRunE.
var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hetmat",
	Short: "Degree-weighted path counts over heterogeneous networks",
	Long: `hetmat stores a heterogeneous network as matrices and computes
degree-weighted path counts (DWPC) along metapaths, with a permutation null
model for their significance.

Typical session:
  hetmat build graph.json.gz --hetmat data.hetmat
  hetmat permute --count 200
  hetmat significance DaGiGaD > DaGiGaD.tsv`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.StringVar(&hetmatPath, "hetmat", "", "hetmat directory")
	f.Float64Var(&damping, "damping", 0, "DWPC damping exponent")
	f.IntVar(&workers, "workers", 0, "concurrent permutation workers")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("hetmat") {
		cfg.HetMat = hetmatPath
	}
	if flags.Changed("damping") {
		cfg.Damping = damping
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	l, err := zc.Build()
	if err != nil {
		return err
	}
	logger = l

	return nil
}

func hetmatOptions() []hetmat.Option {
	return []hetmat.Option{
		hetmat.WithLogger(logger),
		hetmat.WithCompression(cfg.Gzip()),
		hetmat.WithDenseThreshold(cfg.DenseThreshold),
	}
}

func openPipeline() (*hetmat.HetMat, *pipeline.Pipeline, error) {
	hm, err := hetmat.Open(cfg.HetMat, hetmatOptions()...)
	if err != nil {
		return nil, nil, err
	}
	p, err := pipeline.New(hm,
		pipeline.WithLogger(logger),
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithArcsinhScale(cfg.ArcsinhScale),
	)
	if err != nil {
		return nil, nil, err
	}

	return hm, p, nil
}
