package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/rocauc/internal/chart"
	"github.com/spboyer/rocauc/internal/metrics"
	"github.com/spboyer/rocauc/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdoutPath selects standard output as the plot destination.
const stdoutPath = "-"

var errTerminalOutput = errors.New("refusing to write a PNG image to a terminal; use -o <file> or redirect stdout")

type plotOptions struct {
	output  string
	format  string
	title   string
	width   int
	height  int
	allPts  bool
	samples sampleFlags
}

func newPlotCommand() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the ROC curve as an image",
		Long: `Render the ROC curve with its AUC in the legend and the dashed chance
diagonal for reference.

The image format follows --format, then the output file extension, then
the chart.format setting in .rocauc.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, or - for stdout (default: chart.output)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Image format: png or svg")
	cmd.Flags().StringVar(&opts.title, "title", "", "Chart title")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Image height in pixels")
	cmd.Flags().BoolVar(&opts.allPts, "all-points", false, "Keep collinear points instead of dropping them")
	opts.samples.register(cmd)

	return cmd
}

func runPlot(cmd *cobra.Command, opts *plotOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := cfg.Chart.Output
	if opts.output != "" {
		output = opts.output
	}

	chartOpts := chart.Options{
		Title:  cfg.Chart.Title,
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Format: plotFormat(cmd, opts, cfg.Chart.Format, output),
	}
	if opts.title != "" {
		chartOpts.Title = opts.title
	}
	if opts.width > 0 {
		chartOpts.Width = opts.width
	}
	if opts.height > 0 {
		chartOpts.Height = opts.height
	}

	samples, err := opts.samples.samples()
	if err != nil {
		return err
	}

	var curveOpts []metrics.CurveOption
	if cfg.DropIntermediate() && !opts.allPts {
		curveOpts = append(curveOpts, metrics.WithDropIntermediate())
	}
	curve, err := metrics.ROCCurve(samples, curveOpts...)
	if err != nil {
		return err
	}
	auc := metrics.TrapezoidAUC(curve)

	slog.Debug("rendering ROC curve",
		"points", len(curve.Points),
		"auc", auc,
		"format", chartOpts.Format,
		"output", output)

	if output == stdoutPath {
		out := cmd.OutOrStdout()
		if chartOpts.Format == chart.FormatPNG && isTerminal(out) {
			return errTerminalOutput
		}
		return chart.Render(out, curve, auc, chartOpts)
	}

	if err := writeChartFile(output, curve, auc, chartOpts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote ROC curve (AUC = %.2f) to %s\n", auc, output)
	return nil
}

// plotFormat resolves the image format from the flag, the output extension
// and finally the configured default.
func plotFormat(cmd *cobra.Command, opts *plotOptions, configured, output string) string {
	if cmd.Flags().Changed("format") {
		return strings.ToLower(opts.format)
	}
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(output), ".")); ext {
	case chart.FormatPNG, chart.FormatSVG:
		return ext
	}
	return configured
}

func writeChartFile(path string, curve models.Curve, auc float64, opts chart.Options) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return chart.Render(f, curve, auc, opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
