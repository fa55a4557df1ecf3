package statistics

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/montanaflynn/stats"
)

// ConfidenceInterval holds the result of a bootstrap confidence interval computation.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Estimate        float64 `json:"estimate"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	NumBootstraps   int     `json:"num_bootstraps"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples.
const DefaultBootstrapIterations = 10000

var (
	ErrEmptyGroup      = errors.New("bootstrap: both groups must be non-empty")
	ErrConfidenceLevel = errors.New("bootstrap: confidence level must be in (0, 1)")
)

// TwoSampleStatistic computes a statistic from two independent groups.
type TwoSampleStatistic func(a, b []float64) float64

// StratifiedCI computes a percentile bootstrap confidence interval for stat.
// Each resample draws len(a) values from a and len(b) values from b with
// replacement, so group sizes never change across resamples.
// iterations <= 0 uses DefaultBootstrapIterations. A negative seed uses a
// non-deterministic source.
func StratifiedCI(a, b []float64, stat TwoSampleStatistic, confidenceLevel float64, iterations int, seed int64) (ConfidenceInterval, error) {
	if len(a) == 0 || len(b) == 0 {
		return ConfidenceInterval{}, ErrEmptyGroup
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return ConfidenceInterval{}, fmt.Errorf("%w, got %v", ErrConfidenceLevel, confidenceLevel)
	}
	if iterations <= 0 {
		iterations = DefaultBootstrapIterations
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	boot := make([]float64, iterations)
	sampleA := make([]float64, len(a))
	sampleB := make([]float64, len(b))
	for i := 0; i < iterations; i++ {
		resample(rng, a, sampleA)
		resample(rng, b, sampleB)
		boot[i] = stat(sampleA, sampleB)
	}

	// Percentile method
	alpha := 1.0 - confidenceLevel
	lower, err := stats.PercentileNearestRank(boot, alpha/2.0*100)
	if err != nil {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: lower percentile: %w", err)
	}
	upper, err := stats.PercentileNearestRank(boot, (1.0-alpha/2.0)*100)
	if err != nil {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: upper percentile: %w", err)
	}
	m, err := stats.Mean(boot)
	if err != nil {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap: mean: %w", err)
	}

	return ConfidenceInterval{
		Lower:           lower,
		Upper:           upper,
		Estimate:        stat(a, b),
		Mean:            m,
		ConfidenceLevel: confidenceLevel,
		NumBootstraps:   iterations,
	}, nil
}

// Excludes returns true if the confidence interval lies entirely above or
// below v.
func Excludes(ci ConfidenceInterval, v float64) bool {
	return ci.Lower > v || ci.Upper < v
}

func resample(rng *rand.Rand, src, dst []float64) {
	for j := range dst {
		dst[j] = src[rng.Intn(len(src))]
	}
}
