package metrics

import (
	"math"

	"github.com/spboyer/rocauc/internal/models"
)

// ConfusionAt classifies every sample with score >= threshold as positive and
// returns the resulting counts with precision, recall, F1 and accuracy.
func ConfusionAt(samples []models.Sample, threshold float64) (*models.Confusion, error) {
	if _, _, err := classCounts(samples); err != nil {
		return nil, err
	}

	var tp, fp, tn, fn int
	for _, s := range samples {
		predicted := s.Score >= threshold
		switch {
		case s.Positive() && predicted:
			tp++
		case !s.Positive() && predicted:
			fp++
		case !s.Positive() && !predicted:
			tn++
		case s.Positive() && !predicted:
			fn++
		}
	}

	precision := safeDivide(float64(tp), float64(tp+fp))
	recall := safeDivide(float64(tp), float64(tp+fn))

	var f1 float64
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	accuracy := safeDivide(float64(tp+tn), float64(len(samples)))

	return &models.Confusion{
		Threshold: threshold,
		TP:        tp,
		FP:        fp,
		TN:        tn,
		FN:        fn,
		Precision: roundTo4(precision),
		Recall:    roundTo4(recall),
		F1:        roundTo4(f1),
		Accuracy:  roundTo4(accuracy),
	}, nil
}

// YoudenOptimal returns the curve point with the largest TPR - FPR. The +Inf
// starting point is never chosen; the earliest point wins ties.
func YoudenOptimal(curve models.Curve) models.Point {
	if len(curve.Points) < 2 {
		if len(curve.Points) == 1 {
			return curve.Points[0]
		}
		return models.Point{}
	}

	best := curve.Points[1]
	bestJ := best.TPR - best.FPR
	for _, p := range curve.Points[2:] {
		if j := p.TPR - p.FPR; j > bestJ {
			best, bestJ = p, j
		}
	}
	return best
}

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}

func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
