package chart

import (
	chart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

const (
	legendMargin    = 10
	legendPadding   = 6
	legendRowGap    = 6
	legendLineGap   = 6
	legendLineWidth = 28
)

// lowerRightLegend draws one row per named series, anchored to the bottom
// right corner of the plot area.
func lowerRightLegend(c *chart.Chart) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		style := defaults.InheritFrom(chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    9.0,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		})

		var labels []string
		var lines []chart.Style
		for _, s := range c.Series {
			if name := s.GetName(); name != "" {
				labels = append(labels, name)
				lines = append(lines, s.GetStyle())
			}
		}
		if len(labels) == 0 {
			return
		}

		style.GetTextOptions().WriteToRenderer(r)
		heights := make([]int, len(labels))
		textWidth, textHeight := 0, legendRowGap*(len(labels)-1)
		for i, label := range labels {
			tb := r.MeasureText(label)
			heights[i] = tb.Height()
			textWidth = max(textWidth, tb.Width())
			textHeight += tb.Height()
		}

		box := legendBox(cb, legendLineWidth+legendLineGap+textWidth, textHeight)
		chart.Draw.Box(r, box, style)
		style.GetTextOptions().WriteToRenderer(r)

		x := box.Left + legendPadding
		y := box.Top + legendPadding
		for i, label := range labels {
			baseline := y + heights[i]
			mid := baseline - heights[i]/2

			r.SetStrokeColor(lines[i].GetStrokeColor())
			r.SetStrokeWidth(lines[i].GetStrokeWidth(chart.DefaultAxisLineWidth))
			r.SetStrokeDashArray(lines[i].GetStrokeDashArray())
			r.MoveTo(x, mid)
			r.LineTo(x+legendLineWidth, mid)
			r.Stroke()

			r.Text(label, x+legendLineWidth+legendLineGap, baseline)
			y = baseline + legendRowGap
		}
	}
}

// legendBox places a box holding content of the given size in the lower
// right corner of canvas, inset by legendMargin.
func legendBox(canvas chart.Box, contentWidth, contentHeight int) chart.Box {
	right := canvas.Right - legendMargin
	bottom := canvas.Bottom - legendMargin
	return chart.Box{
		Top:    bottom - contentHeight - 2*legendPadding,
		Left:   right - contentWidth - 2*legendPadding,
		Right:  right,
		Bottom: bottom,
	}
}
