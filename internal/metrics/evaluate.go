package metrics

import (
	"github.com/spboyer/rocauc/internal/models"
	"github.com/spboyer/rocauc/internal/statistics"
)

// ChanceAUC is the AUC of a classifier that ranks at random.
const ChanceAUC = 0.5

// EvaluateOptions controls the optional parts of Evaluate.
type EvaluateOptions struct {
	DropIntermediate bool

	// BootstrapIterations enables a confidence interval when > 0.
	BootstrapIterations int
	ConfidenceLevel     float64
	Seed                int64
}

// Evaluate computes the ROC curve, AUC and supporting statistics for samples.
func Evaluate(samples []models.Sample, opts EvaluateOptions) (*models.Evaluation, error) {
	var curveOpts []CurveOption
	if opts.DropIntermediate {
		curveOpts = append(curveOpts, WithDropIntermediate())
	}
	curve, err := ROCCurve(samples, curveOpts...)
	if err != nil {
		return nil, err
	}

	eval := &models.Evaluation{
		Curve:   curve,
		AUC:     TrapezoidAUC(curve),
		Optimal: YoudenOptimal(curve),
	}

	eval.Confusion, err = ConfusionAt(samples, eval.Optimal.Threshold)
	if err != nil {
		return nil, err
	}

	eval.Positive, eval.Negative, err = SummarizeScores(samples)
	if err != nil {
		return nil, err
	}

	if opts.BootstrapIterations > 0 {
		ci, err := BootstrapAUC(samples, opts.ConfidenceLevel, opts.BootstrapIterations, opts.Seed)
		if err != nil {
			return nil, err
		}
		eval.BootstrapCI = &ci
	}

	return eval, nil
}

// BootstrapAUC estimates a confidence interval for the AUC by resampling
// positives and negatives separately, so no resample is degenerate.
func BootstrapAUC(samples []models.Sample, confidenceLevel float64, iterations int, seed int64) (statistics.ConfidenceInterval, error) {
	if _, _, err := classCounts(samples); err != nil {
		return statistics.ConfidenceInterval{}, err
	}
	pos, neg := SplitScores(samples)
	return statistics.StratifiedCI(pos, neg, groupAUC, confidenceLevel, iterations, seed)
}

// BetterThanChance reports whether the whole interval lies above ChanceAUC.
func BetterThanChance(ci statistics.ConfidenceInterval) bool {
	return ci.Lower > ChanceAUC
}

func groupAUC(pos, neg []float64) float64 {
	samples := make([]models.Sample, 0, len(pos)+len(neg))
	for _, s := range pos {
		samples = append(samples, models.Sample{Label: models.LabelPositive, Score: s})
	}
	for _, s := range neg {
		samples = append(samples, models.Sample{Label: models.LabelNegative, Score: s})
	}
	return mannWhitney(samples, len(pos), len(neg))
}
