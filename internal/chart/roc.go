// Package chart draws ROC curves as PNG or SVG images.
package chart

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"

	"github.com/spboyer/rocauc/internal/models"
)

// Output formats understood by Render.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

const (
	DefaultTitle  = "ROC Curve for Stress Detection"
	DefaultWidth  = 800
	DefaultHeight = 600
)

var (
	ErrUnsupportedFormat = errors.New("unsupported chart format")
	ErrEmptyCurve        = errors.New("curve needs at least two points")
)

var gridColor = drawing.ColorFromHex("e5e5e5")

// Options controls the rendered image. Zero values fall back to the defaults.
type Options struct {
	Title  string
	Width  int
	Height int
	Format string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	return o
}

// LegendLabel is the legend entry for a curve with the given AUC.
func LegendLabel(auc float64) string {
	return fmt.Sprintf("ROC Curve (AUC = %.2f)", auc)
}

// Render draws curve as a solid line with the dashed chance diagonal and
// writes the image to w.
func Render(w io.Writer, curve models.Curve, auc float64, opts Options) error {
	opts = opts.withDefaults()

	var provider chart.RendererProvider
	switch opts.Format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w %q: must be %s or %s", ErrUnsupportedFormat, opts.Format, FormatPNG, FormatSVG)
	}

	if len(curve.Points) < 2 {
		return ErrEmptyCurve
	}

	graph := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.StyleShow(),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "False Positive Rate",
			NameStyle:      chart.StyleShow(),
			Style:          chart.StyleShow(),
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks:          unitTicks(),
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "True Positive Rate",
			NameStyle:      chart.StyleShow(),
			Style:          chart.StyleShow(),
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks:          unitTicks(),
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    LegendLabel(auc),
				XValues: curve.FPR(),
				YValues: curve.TPR(),
				Style: chart.Style{
					Show:        true,
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Chance",
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					Show:            true,
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		lowerRightLegend(&graph),
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", opts.Format, err)
	}
	return nil
}

func unitTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 6)
	for i := 0; i <= 5; i++ {
		v := float64(i) / 5
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	return ticks
}

func gridStyle() chart.Style {
	return chart.Style{
		Show:        true,
		StrokeColor: gridColor,
		StrokeWidth: 1.0,
	}
}
