package reporting

import (
	"strings"
	"testing"

	"github.com/spboyer/rocauc/internal/dataset"
	"github.com/spboyer/rocauc/internal/metrics"
	"github.com/spboyer/rocauc/internal/models"
	"github.com/spboyer/rocauc/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleEvaluation(t *testing.T) *models.Evaluation {
	t.Helper()
	eval, err := metrics.Evaluate(dataset.StressDetection(), metrics.EvaluateOptions{})
	require.NoError(t, err)
	return eval
}

func TestInterpretAUC(t *testing.T) {
	tests := []struct {
		name string
		auc  float64
		want string
	}{
		{"perfect", 1.0, "Excellent (>=0.90)"},
		{"excellent boundary", 0.90, "Excellent (>=0.90)"},
		{"good high", 0.89, "Good (0.80-0.90)"},
		{"good low", 0.80, "Good (0.80-0.90)"},
		{"fair", 0.75, "Fair (0.70-0.80)"},
		{"poor", 0.65, "Poor (0.60-0.70)"},
		{"fail at chance", 0.50, "Fail (0.50-0.60)"},
		{"inverted", 0.49, "Worse than chance (<0.50)"},
		{"zero", 0.0, "Worse than chance (<0.50)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretAUC(tt.auc))
		})
	}
}

func TestInterpretInterval(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		contains     string
	}{
		{"above chance", 0.7, 0.95, "better than chance"},
		{"below chance", 0.1, 0.4, "worse than chance"},
		{"straddles chance", 0.4, 0.7, "includes 0.5"},
		{"touches chance", 0.5, 0.9, "includes 0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := statistics.ConfidenceInterval{Lower: tt.lower, Upper: tt.upper}
			assert.Contains(t, InterpretInterval(ci), tt.contains)
		})
	}
}

func TestFormatSummary(t *testing.T) {
	eval := exampleEvaluation(t)
	eval.BootstrapCI = &statistics.ConfidenceInterval{Lower: 0.82, Upper: 1.0, ConfidenceLevel: 0.95}

	summary := FormatSummary(eval)

	assert.Contains(t, summary, "=== Interpretation ===")
	assert.Contains(t, summary, "AUC: 0.96")
	assert.Contains(t, summary, "Excellent (>=0.90)")
	assert.Contains(t, summary, "96% of the time")
	assert.Contains(t, summary, "95% CI: [0.82, 1.00]")
	assert.Contains(t, summary, "Best threshold: 0.75 (TPR 0.80, FPR 0.00)")
}

func TestFormatSummary_Minimal(t *testing.T) {
	summary := FormatSummary(&models.Evaluation{AUC: 0.5})
	assert.True(t, strings.Contains(summary, "Interpretation"))
	assert.NotContains(t, summary, "CI:")
	assert.NotContains(t, summary, "Best threshold")
}
