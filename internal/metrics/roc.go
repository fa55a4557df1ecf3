package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/spboyer/rocauc/internal/models"
)

var (
	// ErrDegenerateInput is returned when a sample set lacks either class,
	// which leaves the ROC curve and AUC undefined.
	ErrDegenerateInput = errors.New("degenerate input: samples must contain both positive and negative labels")

	// ErrInvalidLabel is returned for a label other than models.LabelNegative or
	// models.LabelPositive.
	ErrInvalidLabel = errors.New("invalid label: must be 0 or 1")

	// ErrInvalidScore is returned for a NaN or infinite score.
	ErrInvalidScore = errors.New("invalid score: must be a finite number")
)

// CurveOption adjusts how ROCCurve builds its points.
type CurveOption func(*curveOptions)

type curveOptions struct {
	dropIntermediate bool
}

// WithDropIntermediate removes interior points that lie on the straight line
// between their neighbours. The starting point, the first threshold and the
// final point are always kept. The area under the curve is unchanged.
func WithDropIntermediate() CurveOption {
	return func(o *curveOptions) {
		o.dropIntermediate = true
	}
}

// classCounts validates samples and returns the number of positives and
// negatives.
func classCounts(samples []models.Sample) (pos, neg int, err error) {
	for i, s := range samples {
		switch s.Label {
		case models.LabelPositive:
			pos++
		case models.LabelNegative:
			neg++
		default:
			return 0, 0, fmt.Errorf("sample %d: %w (got %d)", i, ErrInvalidLabel, s.Label)
		}
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			return 0, 0, fmt.Errorf("sample %d: %w (got %v)", i, ErrInvalidScore, s.Score)
		}
	}
	if pos == 0 || neg == 0 {
		return pos, neg, fmt.Errorf("%w (%d positive, %d negative)", ErrDegenerateInput, pos, neg)
	}
	return pos, neg, nil
}

// ROCCurve sweeps the decision threshold from +Inf down through every
// distinct score and records the false and true positive rates at each step.
// Samples sharing a score enter the positive prediction together, yielding a
// single point. The input slice is not modified.
func ROCCurve(samples []models.Sample, opts ...CurveOption) (models.Curve, error) {
	var o curveOptions
	for _, opt := range opts {
		opt(&o)
	}

	pos, neg, err := classCounts(samples)
	if err != nil {
		return models.Curve{}, err
	}

	sorted := make([]models.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	// Cumulative counts per threshold, starting above every score.
	tps := []int{0}
	fps := []int{0}
	thresholds := []float64{math.Inf(1)}

	tp, fp := 0, 0
	for i := 0; i < len(sorted); {
		score := sorted[i].Score
		for i < len(sorted) && sorted[i].Score == score {
			if sorted[i].Positive() {
				tp++
			} else {
				fp++
			}
			i++
		}
		tps = append(tps, tp)
		fps = append(fps, fp)
		thresholds = append(thresholds, score)
	}

	keep := make([]int, 0, len(tps))
	for i := range tps {
		if o.dropIntermediate && i > 1 && i < len(tps)-1 && collinear(fps, tps, i) {
			continue
		}
		keep = append(keep, i)
	}

	curve := models.Curve{
		Points:    make([]models.Point, 0, len(keep)),
		Positives: pos,
		Negatives: neg,
	}
	for _, i := range keep {
		curve.Points = append(curve.Points, models.Point{
			FPR:       float64(fps[i]) / float64(neg),
			TPR:       float64(tps[i]) / float64(pos),
			Threshold: thresholds[i],
		})
	}
	return curve, nil
}

// collinear reports whether point i has zero second difference in both
// coordinates, meaning it sits on the segment joining its neighbours.
func collinear(fps, tps []int, i int) bool {
	return fps[i-1]-2*fps[i]+fps[i+1] == 0 && tps[i-1]-2*tps[i]+tps[i+1] == 0
}

// TrapezoidAUC integrates TPR over FPR with the trapezoidal rule, visiting
// points in ascending FPR order.
func TrapezoidAUC(curve models.Curve) float64 {
	pts := make([]models.Point, len(curve.Points))
	copy(pts, curve.Points)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].FPR < pts[j].FPR
	})

	area := 0.0
	for i := 1; i < len(pts); i++ {
		area += (pts[i].FPR - pts[i-1].FPR) * (pts[i].TPR + pts[i-1].TPR) / 2
	}
	return area
}

// ROCAUC computes the area under the ROC curve of samples.
func ROCAUC(samples []models.Sample) (float64, error) {
	curve, err := ROCCurve(samples)
	if err != nil {
		return 0, err
	}
	return TrapezoidAUC(curve), nil
}

// MannWhitneyAUC computes the AUC as the Mann-Whitney U statistic of the
// positive scores against the negative scores, normalized by the number of
// positive/negative pairs. Tied scores receive their average rank.
func MannWhitneyAUC(samples []models.Sample) (float64, error) {
	pos, neg, err := classCounts(samples)
	if err != nil {
		return 0, err
	}
	return mannWhitney(samples, pos, neg), nil
}

func mannWhitney(samples []models.Sample, pos, neg int) float64 {
	sorted := make([]models.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	rankSum := 0.0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].Score == sorted[i].Score {
			j++
		}
		// Ranks i+1..j share the mid-rank.
		midRank := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			if sorted[k].Positive() {
				rankSum += midRank
			}
		}
		i = j
	}

	u := rankSum - float64(pos)*float64(pos+1)/2
	return u / (float64(pos) * float64(neg))
}
