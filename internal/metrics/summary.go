package metrics

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/spboyer/rocauc/internal/models"
)

// SplitScores separates the scores of positive and negative samples,
// preserving input order within each class.
func SplitScores(samples []models.Sample) (pos, neg []float64) {
	for _, s := range samples {
		if s.Positive() {
			pos = append(pos, s.Score)
		} else {
			neg = append(neg, s.Score)
		}
	}
	return pos, neg
}

// SummarizeScores describes the score distribution of each class.
func SummarizeScores(samples []models.Sample) (pos, neg models.ScoreSummary, err error) {
	if _, _, err := classCounts(samples); err != nil {
		return pos, neg, err
	}

	posScores, negScores := SplitScores(samples)
	if pos, err = summarize(posScores); err != nil {
		return pos, neg, fmt.Errorf("positive scores: %w", err)
	}
	if neg, err = summarize(negScores); err != nil {
		return pos, neg, fmt.Errorf("negative scores: %w", err)
	}
	return pos, neg, nil
}

func summarize(scores []float64) (models.ScoreSummary, error) {
	var (
		s   = models.ScoreSummary{Count: len(scores)}
		err error
	)
	if s.Mean, err = stats.Mean(scores); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(scores); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(scores); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(scores); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(scores); err != nil {
		return s, err
	}
	return s, nil
}
