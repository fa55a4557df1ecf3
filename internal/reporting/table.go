package reporting

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/spboyer/rocauc/internal/models"
)

const ruleWidth = 60

// WriteTable writes a human-readable report of eval to w.
func WriteTable(w io.Writer, eval *models.Evaluation) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(" ROC REPORT\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	b.WriteString(fmt.Sprintf("  Samples: %d positive, %d negative\n\n",
		eval.Curve.Positives, eval.Curve.Negatives))

	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	b.WriteString(" CURVE\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	widths := []int{4, 12, 10, 10}
	writeRow(&b, widths, "#", "Threshold", "FPR", "TPR")
	for i, p := range eval.Curve.Points {
		writeRow(&b, widths,
			fmt.Sprintf("%d", i),
			FormatThreshold(p.Threshold),
			fmt.Sprintf("%.4f", p.FPR),
			fmt.Sprintf("%.4f", p.TPR),
		)
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	b.WriteString(" SCORES\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	widths = []int{10, 7, 8, 8, 8, 8, 8}
	writeRow(&b, widths, "Class", "Count", "Mean", "Median", "StdDev", "Min", "Max")
	for _, row := range []struct {
		name string
		s    models.ScoreSummary
	}{
		{"positive", eval.Positive},
		{"negative", eval.Negative},
	} {
		writeRow(&b, widths,
			row.name,
			fmt.Sprintf("%d", row.s.Count),
			fmt.Sprintf("%.4f", row.s.Mean),
			fmt.Sprintf("%.4f", row.s.Median),
			fmt.Sprintf("%.4f", row.s.StdDev),
			fmt.Sprintf("%.4f", row.s.Min),
			fmt.Sprintf("%.4f", row.s.Max),
		)
	}
	b.WriteString("\n")

	if c := eval.Confusion; c != nil {
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		b.WriteString(fmt.Sprintf(" OPERATING POINT (score >= %s)\n", FormatThreshold(c.Threshold)))
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		b.WriteString(fmt.Sprintf("  TP %-4d FP %-4d TN %-4d FN %-4d\n", c.TP, c.FP, c.TN, c.FN))
		b.WriteString(fmt.Sprintf("  Precision %.4f  Recall %.4f  F1 %.4f  Accuracy %.4f\n\n",
			c.Precision, c.Recall, c.F1, c.Accuracy))
	}

	b.WriteString(FormatSummary(eval))

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatThreshold renders a threshold, spelling out the +Inf start.
func FormatThreshold(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf"
	}
	return fmt.Sprintf("%.4g", v)
}

func writeRow(b *strings.Builder, widths []int, cells ...string) {
	b.WriteString(" ")
	for i, c := range cells {
		b.WriteString(" ")
		b.WriteString(padRight(c, widths[i]))
	}
	b.WriteString("\n")
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
