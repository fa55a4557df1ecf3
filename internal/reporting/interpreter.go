package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/rocauc/internal/metrics"
	"github.com/spboyer/rocauc/internal/models"
	"github.com/spboyer/rocauc/internal/statistics"
)

// InterpretAUC returns a plain-language label for an AUC value (0–1).
func InterpretAUC(auc float64) string {
	switch {
	case auc >= 0.9:
		return "Excellent (>=0.90)"
	case auc >= 0.8:
		return "Good (0.80-0.90)"
	case auc >= 0.7:
		return "Fair (0.70-0.80)"
	case auc >= 0.6:
		return "Poor (0.60-0.70)"
	case auc >= 0.5:
		return "Fail (0.50-0.60)"
	default:
		return "Worse than chance (<0.50)"
	}
}

// InterpretInterval explains what a bootstrap interval says about the
// classifier relative to random ranking.
func InterpretInterval(ci statistics.ConfidenceInterval) string {
	switch {
	case metrics.BetterThanChance(ci):
		return "The classifier ranks better than chance at this confidence level."
	case statistics.Excludes(ci, metrics.ChanceAUC):
		return "The classifier ranks worse than chance at this confidence level; its scores may be inverted."
	default:
		return fmt.Sprintf("The interval includes %.1f, so the classifier is not distinguishable from chance.", metrics.ChanceAUC)
	}
}

// FormatSummary produces a short plain-language interpretation of an evaluation.
func FormatSummary(eval *models.Evaluation) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(fmt.Sprintf("AUC: %.2f — %s\n", eval.AUC, InterpretAUC(eval.AUC)))
	b.WriteString(fmt.Sprintf("A randomly chosen positive outscores a randomly chosen negative %.0f%% of the time.\n", eval.AUC*100))

	if ci := eval.BootstrapCI; ci != nil {
		b.WriteString(fmt.Sprintf("%.0f%% CI: [%.2f, %.2f] — %s\n",
			ci.ConfidenceLevel*100, ci.Lower, ci.Upper, InterpretInterval(*ci)))
	}

	if c := eval.Confusion; c != nil {
		b.WriteString(fmt.Sprintf("Best threshold: %.4g (TPR %.2f, FPR %.2f)\n",
			c.Threshold, eval.Optimal.TPR, eval.Optimal.FPR))
	}

	return b.String()
}
