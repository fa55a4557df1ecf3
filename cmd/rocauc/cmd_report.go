package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spboyer/rocauc/internal/metrics"
	"github.com/spboyer/rocauc/internal/reporting"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	format     string
	bootstrap  int
	confidence float64
	seed       int64
	allPts     bool
	samples    sampleFlags
}

func newReportCommand() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the ROC curve, AUC and operating point",
		Long: `Print the ROC curve points, the AUC with its interpretation, per-class
score statistics and the confusion matrix at the Youden-optimal threshold.

Pass --bootstrap N to add a stratified bootstrap confidence interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: table or json (default: report.format)")
	cmd.Flags().IntVar(&opts.bootstrap, "bootstrap", 0, "Bootstrap iterations for the AUC confidence interval (0 disables)")
	cmd.Flags().Float64Var(&opts.confidence, "confidence", 0, "Confidence level for the bootstrap interval")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Bootstrap random seed (negative for time-based)")
	cmd.Flags().BoolVar(&opts.allPts, "all-points", false, "Keep collinear points instead of dropping them")
	opts.samples.register(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Report.Format
	if opts.format != "" {
		format = strings.ToLower(opts.format)
	}
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported report format %q (want table or json)", format)
	}

	evalOpts := metrics.EvaluateOptions{
		DropIntermediate:    cfg.DropIntermediate() && !opts.allPts,
		BootstrapIterations: cfg.Bootstrap.Iterations,
		ConfidenceLevel:     cfg.Bootstrap.Confidence,
		Seed:                cfg.Seed(),
	}
	if cmd.Flags().Changed("bootstrap") {
		evalOpts.BootstrapIterations = opts.bootstrap
	}
	if cmd.Flags().Changed("confidence") {
		evalOpts.ConfidenceLevel = opts.confidence
	}
	if cmd.Flags().Changed("seed") {
		evalOpts.Seed = opts.seed
	}

	samples, err := opts.samples.samples()
	if err != nil {
		return err
	}

	slog.Debug("evaluating samples",
		"samples", len(samples),
		"bootstrap", evalOpts.BootstrapIterations,
		"seed", evalOpts.Seed)

	eval, err := metrics.Evaluate(samples, evalOpts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		return reporting.WriteJSON(w, eval)
	}
	return reporting.WriteTable(w, eval)
}
