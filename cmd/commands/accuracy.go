package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beatoz/fxmath-go/accuracy"
	"github.com/beatoz/fxmath-go/cmd/version"
	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/spf13/cobra"
)

var (
	accFuncs          []string
	accMarkdownFile   string
	accJSONFile       string
	accUpdateBaseline bool
	accNoCompare      bool
)

var errRegressed = errors.New("accuracy regressed against the baseline")

func NewAccuracyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Measure every function against float64 references at both widths",
		Long: "Measure every function against references at both widths and compare the " +
			"mean relative errors with the stored baseline. The command fails if any of them regressed.",
		RunE: runAccuracy,
	}
	AddAccuracyConfigFlags(cmd)
	cmd.Flags().StringSliceVar(&accFuncs, "funcs", nil, "comma-separated functions to measure (default all)")
	cmd.Flags().StringVar(&accMarkdownFile, "markdown", "", "write the markdown error table to this file")
	cmd.Flags().StringVar(&accJSONFile, "json", "", "write the full JSON report to this file")
	cmd.Flags().BoolVar(&accUpdateBaseline, "update_baseline", false, "store this run as the new baseline")
	cmd.Flags().BoolVar(&accNoCompare, "no_compare", false, "skip the comparison with the baseline")
	return cmd
}

// AddAccuracyConfigFlags binds the [accuracy] config section to flags.
func AddAccuracyConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String(
		"accuracy.strategy",
		rootConfig.Accuracy.Strategy,
		"sampling strategy: quick | thorough")
	cmd.Flags().Bool(
		"accuracy.exact",
		rootConfig.Accuracy.Exact,
		"use arbitrary-precision references where available (exp, ln, log2, log10, sqrt, atan)")
	cmd.Flags().String(
		"accuracy.baseline_dir",
		rootConfig.Accuracy.BaselineDir,
		"baseline database directory")
}

func runAccuracy(cmd *cobra.Command, args []string) error {
	conf := rootConfig.Accuracy
	strategy, xerr := accuracy.StrategyByName(conf.Strategy)
	if xerr != nil {
		return xerr
	}
	fns, ok := accuracy.Lookup(accFuncs...)
	if !ok {
		return xerrors.ErrUnknownFunc.Wrapf("%v", accFuncs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("measuring accuracy", "strategy", strategy.Name, "exact", conf.Exact, "functions", len(fns))
	rpt, xerr := accuracy.NewRunner(strategy, conf.Exact, logger).Run(ctx, fns)
	if xerr != nil {
		return xerr
	}
	rpt.Version = version.String()

	out := cmd.OutOrStdout()
	if err := rpt.WriteTable(out); err != nil {
		return err
	}

	if accMarkdownFile != "" {
		if err := os.WriteFile(accMarkdownFile, []byte(rpt.Markdown()), 0o644); err != nil {
			return err
		}
	}
	if accJSONFile != "" {
		bz, err := rpt.Encode()
		if err != nil {
			return err
		}
		if err := os.WriteFile(accJSONFile, bz, 0o644); err != nil {
			return err
		}
	}

	if accNoCompare && !accUpdateBaseline {
		return nil
	}

	bdb, err := accuracy.OpenBaselineDB(conf.BaselineName, conf.BaselineDBDir())
	if err != nil {
		return err
	}
	defer bdb.Close()

	passed := true
	if !accNoCompare {
		base := bdb.Latest()
		if base == nil {
			logger.Info("no baseline stored yet")
		} else {
			logger.Info("comparing with baseline", "timestamp", base.Timestamp, "version", base.Version)
		}

		var cmps []accuracy.Comparison
		cmps, passed = accuracy.Compare(base, rpt)
		fmt.Fprintln(out)
		if err := accuracy.WriteComparisons(out, cmps); err != nil {
			return err
		}
	}

	if accUpdateBaseline {
		if err := bdb.Put(rpt); err != nil {
			return err
		}
		logger.Info("baseline updated", "timestamp", rpt.Timestamp)
		return nil
	}
	if !passed {
		return errRegressed
	}
	return nil
}
