package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gowrangle/domain/core"
	"gowrangle/domain/dataset"
	"gowrangle/internal/evaluation"
	"gowrangle/internal/hypothesis"
	"gowrangle/internal/prep"

	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "gowrangle",
		Short:         "Acquire, clean and split tabular datasets, then score models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read configuration from this file instead of .env")

	rootCmd.AddCommand(
		newListCmd(),
		newAcquireCmd(&envFile),
		newSplitCmd(&envFile),
		newPrepTelcoCmd(&envFile),
		newEvaluateCmd(),
		newHypothesisCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range dataset.IDs() {
				d, err := dataset.Lookup(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-12s %s\n", id, d.Filename, d.Source)
			}
			return nil
		},
	}
}

func newAcquireCmd(envFile *string) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "acquire [dataset]",
		Short: "Load a dataset from the local cache, fetching it on a miss",
		Long: `Load a dataset by id. The cache file is read when present; otherwise
the dataset is fetched from the remote store and cached.

Connection settings come from DB_DRIVER, DB_HOST, DB_USER, DB_PASS and
DB_PORT; the cache directory from CACHE_DIR.

Example: gowrangle acquire telco --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := core.ParseDatasetID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(*envFile)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			load := a.loader.Load
			if refresh {
				load = a.loader.Refresh
			}
			f, err := load(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d columns\n", id, f.Len(), len(f.Columns()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch from the remote store even when cached")
	return cmd
}

func newSplitCmd(envFile *string) *cobra.Command {
	var flags splitFlags
	var target string

	cmd := &cobra.Command{
		Use:   "split [dataset]",
		Short: "Split a dataset into stratified train, test and validate files",
		Long: `Split a dataset on a target column. Ratios are fractions of the whole
dataset; train gets the rest.

Example: gowrangle split iris --target species --val-ratio 0.2 --test-ratio 0.1 --out-dir splits/iris`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := core.ParseDatasetID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(*envFile)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			f, err := a.loader.Load(cmd.Context(), id)
			if err != nil {
				return err
			}

			res, err := a.splitter(cmd, flags).Split(f, target)
			if err != nil {
				return err
			}
			return writeSplit(cmd, flags.outDir, res, a.logger)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&target, "target", "", "Column to stratify on")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newPrepTelcoCmd(envFile *string) *cobra.Command {
	var flags splitFlags

	cmd := &cobra.Command{
		Use:   "prep-telco",
		Short: "Clean the telco churn dataset and split it on churn",
		Long: `Acquire the telco dataset, drop rows with blank total charges, drop id
columns, derive 0/1 columns and dummies, then split stratified on churn.

Example: gowrangle prep-telco --out-dir splits/telco`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*envFile)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			f, err := a.loader.Load(cmd.Context(), dataset.Telco)
			if err != nil {
				return err
			}

			res, err := prep.New(a.splitter(cmd, flags), a.logger).Prepare(f, prep.Telco)
			if err != nil {
				return err
			}
			return writeSplit(cmd, flags.outDir, res, a.logger)
		},
	}

	flags.register(cmd)
	return cmd
}

func newEvaluateCmd() *cobra.Command {
	var actual, predicted, positive string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "evaluate [predictions.csv]",
		Short: "Score a binary classifier's predictions",
		Long: `Read a CSV with an actual and a predicted column and print the confusion
matrix and scores. The predicted column name is used as the model name.

Example: gowrangle evaluate predictions.csv --actual churn --predicted baseline --positive Yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := newFileCache(filepath.Dir(path)).ReadTable(filepath.Base(path))
			if err != nil {
				return err
			}

			outcome, err := evaluation.EvaluateFrame(f, actual, predicted, positive, core.ModelName(predicted))
			if err != nil {
				return err
			}

			r := &evaluation.Reporter{Out: cmd.OutOrStdout(), Config: evaluation.Config{Quiet: quiet}}
			return r.Report(outcome)
		},
	}

	cmd.Flags().StringVar(&actual, "actual", "", "Column holding the actual labels")
	cmd.Flags().StringVar(&predicted, "predicted", "", "Column holding the predicted labels")
	cmd.Flags().StringVar(&positive, "positive", "", "Label of the positive outcome")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print scores")
	for _, name := range []string{"actual", "predicted", "positive"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newHypothesisCmd() *cobra.Command {
	var p, alpha, t, r, chi2 float64
	var null string

	cmd := &cobra.Command{
		Use:   "hypothesis",
		Short: "Decide a two tailed test from its p-value",
		Long: `Compare a p-value with alpha and print whether the null hypothesis is
rejected. Optional statistics are printed after the decision.

Example: gowrangle hypothesis --p 0.03 --null "churn is independent of contract" --chi2 12.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := hypothesis.Config{Alpha: alpha}
			if cmd.Flags().Changed("t") {
				cfg.T = hypothesis.Float(t)
			}
			if cmd.Flags().Changed("r") {
				cfg.R = hypothesis.Float(r)
			}
			if cmd.Flags().Changed("chi2") {
				cfg.Chi2 = hypothesis.Float(chi2)
			}

			reporter := &hypothesis.Reporter{Out: cmd.OutOrStdout()}
			return reporter.Report(hypothesis.Decide(p, null, cfg))
		},
	}

	cmd.Flags().Float64Var(&p, "p", 0, "p-value of the test")
	cmd.Flags().StringVar(&null, "null", "", "Statement of the null hypothesis")
	cmd.Flags().Float64Var(&alpha, "alpha", hypothesis.DefaultAlpha, "Significance level")
	cmd.Flags().Float64Var(&t, "t", 0, "t statistic to report")
	cmd.Flags().Float64Var(&r, "r", 0, "correlation coefficient to report")
	cmd.Flags().Float64Var(&chi2, "chi2", 0, "chi-square statistic to report")
	_ = cmd.MarkFlagRequired("p")
	_ = cmd.MarkFlagRequired("null")
	return cmd
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
