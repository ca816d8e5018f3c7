package main

import (
	"fmt"

	"gowrangle/adapters/filecache"
	"gowrangle/adapters/sqlsource"
	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/config"
	"gowrangle/internal/loader"
	"gowrangle/internal/split"
	"gowrangle/ports"

	"github.com/spf13/cobra"
)

// app holds the wired components shared by the dataset commands
type app struct {
	config *config.Config
	logger *internal.Logger
	loader *loader.Loader
}

func newApp(envFile string) (*app, error) {
	var cfg *config.Config
	var err error
	if envFile != "" {
		cfg, err = config.LoadFile(envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))

	// Without credentials the loader still serves cached datasets.
	var source ports.RemoteSource
	if src, err := sqlsource.New(cfg.Database, logger); err != nil {
		logger.Warn("[cli] remote source disabled: %v", err)
	} else {
		source = src
	}

	cache := filecache.New(cfg.Cache.Dir, logger)
	return &app{
		config: cfg,
		logger: logger,
		loader: loader.New(cache, source, logger),
	}, nil
}

func newFileCache(dir string) *filecache.Cache {
	return filecache.New(dir, internal.NewNopLogger())
}

// splitFlags overrides the configured split ratios
type splitFlags struct {
	validateRatio float64
	testRatio     float64
	seed          int64
	outDir        string
}

func (f *splitFlags) register(cmd *cobra.Command) {
	defaults := split.DefaultConfig()
	cmd.Flags().Float64Var(&f.validateRatio, "val-ratio", defaults.ValidateRatio, "Validate share of the whole dataset")
	cmd.Flags().Float64Var(&f.testRatio, "test-ratio", defaults.TestRatio, "Test share of the whole dataset")
	cmd.Flags().Int64Var(&f.seed, "seed", defaults.Seed, "Random seed for the shuffle")
	cmd.Flags().StringVar(&f.outDir, "out-dir", ".", "Directory for train.csv, test.csv and validate.csv")
}

// splitter uses the configured ratios unless a flag was given
func (a *app) splitter(cmd *cobra.Command, f splitFlags) *split.Splitter {
	cfg := split.Config{
		ValidateRatio: a.config.Split.ValidateRatio,
		TestRatio:     a.config.Split.TestRatio,
		Seed:          a.config.Split.Seed,
	}
	if cmd.Flags().Changed("val-ratio") {
		cfg.ValidateRatio = f.validateRatio
	}
	if cmd.Flags().Changed("test-ratio") {
		cfg.TestRatio = f.testRatio
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	return split.New(cfg, a.logger)
}

// writeSplit writes the three subsets and prints the realized sizes
func writeSplit(cmd *cobra.Command, outDir string, res *split.Result, logger *internal.Logger) error {
	out := filecache.New(outDir, logger)
	subsets := []struct {
		filename string
		frame    *frame.Frame
		ratio    float64
	}{
		{"train.csv", res.Train, res.Summary.TrainRatio},
		{"test.csv", res.Test, res.Summary.TestRatio},
		{"validate.csv", res.Validate, res.Summary.ValidateRatio},
	}

	w := cmd.OutOrStdout()
	for _, s := range subsets {
		if err := out.Write(s.filename, s.frame); err != nil {
			return err
		}
		fmt.Fprintf(w, "%-13s %6d rows  %s\n", s.filename, s.frame.Len(), formatRatio(s.ratio))
	}
	fmt.Fprintf(w, "stratified on %s (seed %d), max share deviation %s\n",
		res.Summary.Target, res.Summary.Seed, formatRatio(res.Summary.MaxDeviation))
	return nil
}
