// Package projectconfig provides the ProjectConfig struct and loader for
// .rocauc.yaml project-level configuration files.
package projectconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Load.
const FileName = ".rocauc.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultChartTitle  = "ROC Curve for Stress Detection"
	DefaultChartWidth  = 800
	DefaultChartHeight = 600
	DefaultChartFormat = "png"
	DefaultChartOutput = "roc_curve.png"

	DefaultBootstrapIterations = 0
	DefaultConfidenceLevel     = 0.95
	DefaultBootstrapSeed       = -1

	DefaultReportFormat = "table"
)

// ChartConfig holds rendering settings for the plot command.
type ChartConfig struct {
	Title            string `yaml:"title,omitempty"`
	Width            int    `yaml:"width,omitempty"`
	Height           int    `yaml:"height,omitempty"`
	Format           string `yaml:"format,omitempty"`
	Output           string `yaml:"output,omitempty"`
	DropIntermediate *bool  `yaml:"drop_intermediate,omitempty"`
}

// BootstrapConfig holds confidence interval settings. Iterations of 0
// disables the interval.
type BootstrapConfig struct {
	Iterations int     `yaml:"iterations,omitempty"`
	Confidence float64 `yaml:"confidence,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
}

// ReportConfig holds settings for the report command.
type ReportConfig struct {
	Format string `yaml:"format,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .rocauc.yaml.
type ProjectConfig struct {
	Chart     ChartConfig     `yaml:"chart,omitempty"`
	Bootstrap BootstrapConfig `yaml:"bootstrap,omitempty"`
	Report    ReportConfig    `yaml:"report,omitempty"`

	// Path is the file the values were read from, empty when defaults only.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Chart: ChartConfig{
			Title:            DefaultChartTitle,
			Width:            DefaultChartWidth,
			Height:           DefaultChartHeight,
			Format:           DefaultChartFormat,
			Output:           DefaultChartOutput,
			DropIntermediate: boolPtr(true),
		},
		Bootstrap: BootstrapConfig{
			Iterations: DefaultBootstrapIterations,
			Confidence: DefaultConfidenceLevel,
			Seed:       int64Ptr(DefaultBootstrapSeed),
		},
		Report: ReportConfig{
			Format: DefaultReportFormat,
		},
	}
}

// Load finds .rocauc.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	fileCfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, fileCfg)
	cfg.Path = path
	return cfg, nil
}

// Parse decodes raw YAML without applying defaults. Unknown keys are rejected.
func Parse(data []byte) (*ProjectConfig, error) {
	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// DropIntermediate reports whether collinear curve points should be removed.
func (c *ProjectConfig) DropIntermediate() bool {
	return c.Chart.DropIntermediate == nil || *c.Chart.DropIntermediate
}

// Seed returns the bootstrap seed, negative meaning non-deterministic.
func (c *ProjectConfig) Seed() int64 {
	if c.Bootstrap.Seed == nil {
		return DefaultBootstrapSeed
	}
	return *c.Bootstrap.Seed
}

// findConfigFile walks up from dir looking for .rocauc.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Chart
	if src.Chart.Title != "" {
		dst.Chart.Title = src.Chart.Title
	}
	if src.Chart.Width != 0 {
		dst.Chart.Width = src.Chart.Width
	}
	if src.Chart.Height != 0 {
		dst.Chart.Height = src.Chart.Height
	}
	if src.Chart.Format != "" {
		dst.Chart.Format = src.Chart.Format
	}
	if src.Chart.Output != "" {
		dst.Chart.Output = src.Chart.Output
	}
	if src.Chart.DropIntermediate != nil {
		dst.Chart.DropIntermediate = src.Chart.DropIntermediate
	}

	// Bootstrap
	if src.Bootstrap.Iterations != 0 {
		dst.Bootstrap.Iterations = src.Bootstrap.Iterations
	}
	if src.Bootstrap.Confidence != 0 {
		dst.Bootstrap.Confidence = src.Bootstrap.Confidence
	}
	if src.Bootstrap.Seed != nil {
		dst.Bootstrap.Seed = src.Bootstrap.Seed
	}

	// Report
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(v int64) *int64 {
	return &v
}
