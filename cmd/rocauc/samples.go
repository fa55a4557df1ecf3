package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spboyer/rocauc/internal/dataset"
	"github.com/spboyer/rocauc/internal/models"
	"github.com/spboyer/rocauc/internal/projectconfig"
	"github.com/spboyer/rocauc/internal/validation"
	"github.com/spf13/cobra"
)

// sampleFlags lets a command evaluate inline labels and scores instead of
// the built-in example.
type sampleFlags struct {
	labels []int
	scores []float64
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.labels, "labels", nil, "Comma-separated 0/1 labels (default: built-in stress-detection example)")
	cmd.Flags().Float64SliceVar(&f.scores, "scores", nil, "Comma-separated classifier scores, one per label")
	cmd.MarkFlagsRequiredTogether("labels", "scores")
}

func (f *sampleFlags) samples() ([]models.Sample, error) {
	if len(f.labels) == 0 && len(f.scores) == 0 {
		slog.Debug("using built-in dataset", "name", "stress-detection")
		return dataset.StressDetection(), nil
	}
	return dataset.FromSlices(f.labels, f.scores)
}

func loadConfig() (*projectconfig.ProjectConfig, error) {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return nil, err
	}
	if cfg.Path == "" {
		return cfg, nil
	}

	slog.Debug("loaded project config", "path", cfg.Path)
	problems, err := validation.ValidateConfigFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s failed schema validation:\n  - %s", cfg.Path, strings.Join(problems, "\n  - "))
	}
	return cfg, nil
}
