package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/spboyer/rocauc/internal/dataset"
	"github.com/spboyer/rocauc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func samplesFrom(t *testing.T, labels []int, scores []float64) []models.Sample {
	t.Helper()
	s, err := dataset.FromSlices(labels, scores)
	require.NoError(t, err)
	return s
}

func TestROCCurve_WorkedExample(t *testing.T) {
	curve, err := ROCCurve(dataset.StressDetection())
	require.NoError(t, err)

	assert.Equal(t, 5, curve.Positives)
	assert.Equal(t, 5, curve.Negatives)

	wantFPR := []float64{0, 0, 0, 0, 0, 0.2, 0.2, 0.4, 0.6, 0.8, 1}
	wantTPR := []float64{0, 0.2, 0.4, 0.6, 0.8, 0.8, 1, 1, 1, 1, 1}
	assert.InDeltaSlice(t, wantFPR, curve.FPR(), epsilon)
	assert.InDeltaSlice(t, wantTPR, curve.TPR(), epsilon)

	thresholds := thresholdsOf(curve)
	assert.True(t, math.IsInf(thresholds[0], 1), "first threshold should be +Inf")
	assert.Equal(t, []float64{0.9, 0.85, 0.8, 0.75, 0.4, 0.35, 0.3, 0.2, 0.1, 0.05}, thresholds[1:])

	first := curve.Points[0]
	last := curve.Points[len(curve.Points)-1]
	assert.Equal(t, 0.0, first.FPR)
	assert.Equal(t, 0.0, first.TPR)
	assert.Equal(t, 1.0, last.FPR)
	assert.Equal(t, 1.0, last.TPR)
}

func TestAUC_WorkedExample(t *testing.T) {
	samples := dataset.StressDetection()

	trapezoid, err := ROCAUC(samples)
	require.NoError(t, err)
	mw, err := MannWhitneyAUC(samples)
	require.NoError(t, err)

	// 24 of the 25 positive/negative pairs are ranked correctly.
	assert.InDelta(t, 0.96, trapezoid, epsilon)
	assert.InDelta(t, trapezoid, mw, epsilon)
}

func TestROCCurve_DoesNotReorderInput(t *testing.T) {
	samples := dataset.StressDetection()
	before := make([]models.Sample, len(samples))
	copy(before, samples)

	_, err := ROCCurve(samples)
	require.NoError(t, err)
	_, err = MannWhitneyAUC(samples)
	require.NoError(t, err)

	assert.Equal(t, before, samples)
}

func TestROCCurve_TiesFormSinglePoint(t *testing.T) {
	samples := samplesFrom(t,
		[]int{1, 0, 1, 0},
		[]float64{0.5, 0.5, 0.9, 0.1},
	)

	curve, err := ROCCurve(samples)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 0, 0.5, 1}, curve.FPR(), epsilon)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1}, curve.TPR(), epsilon)

	auc := TrapezoidAUC(curve)
	mw, err := MannWhitneyAUC(samples)
	require.NoError(t, err)
	assert.InDelta(t, 0.875, auc, epsilon)
	assert.InDelta(t, auc, mw, epsilon)
}

func TestROCCurve_AllTied(t *testing.T) {
	samples := samplesFrom(t,
		[]int{1, 0, 1, 0},
		[]float64{0.3, 0.3, 0.3, 0.3},
	)

	curve, err := ROCCurve(samples)
	require.NoError(t, err)
	require.Len(t, curve.Points, 2)

	auc, err := ROCAUC(samples)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, auc, epsilon)
}

func TestROCCurve_DropIntermediate(t *testing.T) {
	samples := dataset.StressDetection()

	curve, err := ROCCurve(samples, WithDropIntermediate())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.2, 0.2, 1}, curve.FPR(), epsilon)
	assert.InDeltaSlice(t, []float64{0, 0.2, 0.8, 0.8, 1, 1}, curve.TPR(), epsilon)
	assert.Equal(t, []float64{0.9, 0.75, 0.4, 0.35, 0.05}, thresholdsOf(curve)[1:])

	full, err := ROCAUC(samples)
	require.NoError(t, err)
	assert.InDelta(t, full, TrapezoidAUC(curve), epsilon)
}

func TestAUC_Extremes(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		scores []float64
		want   float64
	}{
		{
			name:   "perfect separation",
			labels: []int{0, 0, 0, 1, 1},
			scores: []float64{0.1, 0.2, 0.3, 0.7, 0.8},
			want:   1.0,
		},
		{
			name:   "perfect inversion",
			labels: []int{1, 1, 0, 0, 0},
			scores: []float64{0.1, 0.2, 0.3, 0.7, 0.8},
			want:   0.0,
		},
		{
			name:   "single pair",
			labels: []int{1, 0},
			scores: []float64{0.6, 0.4},
			want:   1.0,
		},
		{
			name:   "negative scores",
			labels: []int{1, 0, 1, 0},
			scores: []float64{-1, -3, -2, -4},
			want:   1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := samplesFrom(t, tt.labels, tt.scores)

			got, err := ROCAUC(samples)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)

			mw, err := MannWhitneyAUC(samples)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, mw, epsilon)
		})
	}
}

func TestAUC_InvariantUnderMonotonicTransform(t *testing.T) {
	base := dataset.StressDetection()
	want, err := ROCAUC(base)
	require.NoError(t, err)

	transforms := map[string]func(float64) float64{
		"scale":  func(s float64) float64 { return s * 3 },
		"affine": func(s float64) float64 { return 10*s - 4 },
		"cube":   func(s float64) float64 { return s * s * s },
		"exp":    math.Exp,
		"logit":  func(s float64) float64 { return math.Log(s / (1 - s)) },
	}
	for name, f := range transforms {
		t.Run(name, func(t *testing.T) {
			transformed := make([]models.Sample, len(base))
			for i, s := range base {
				transformed[i] = models.Sample{Label: s.Label, Score: f(s.Score)}
			}

			got, err := ROCAUC(transformed)
			require.NoError(t, err)
			assert.InDelta(t, want, got, epsilon)
		})
	}
}

func TestROCCurve_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(40)
		samples := make([]models.Sample, n)
		for i := range samples {
			samples[i] = models.Sample{
				Label: rng.Intn(2),
				// Coarse scores so ties are common.
				Score: math.Round(rng.Float64()*10) / 10,
			}
		}
		samples[0].Label = models.LabelPositive
		samples[1].Label = models.LabelNegative

		curve, err := ROCCurve(samples)
		require.NoError(t, err)

		pts := curve.Points
		require.GreaterOrEqual(t, len(pts), 2)
		assert.Equal(t, models.Point{FPR: 0, TPR: 0, Threshold: math.Inf(1)}, pts[0])
		assert.Equal(t, 1.0, pts[len(pts)-1].FPR)
		assert.Equal(t, 1.0, pts[len(pts)-1].TPR)

		for i, p := range pts {
			assert.True(t, p.FPR >= 0 && p.FPR <= 1, "FPR out of range: %v", p.FPR)
			assert.True(t, p.TPR >= 0 && p.TPR <= 1, "TPR out of range: %v", p.TPR)
			if i > 0 {
				assert.GreaterOrEqual(t, p.FPR, pts[i-1].FPR)
				assert.GreaterOrEqual(t, p.TPR, pts[i-1].TPR)
				assert.Less(t, p.Threshold, pts[i-1].Threshold)
			}
		}

		auc := TrapezoidAUC(curve)
		mw, err := MannWhitneyAUC(samples)
		require.NoError(t, err)
		assert.InDelta(t, mw, auc, epsilon, "trial %d", trial)
		assert.True(t, auc >= 0 && auc <= 1)

		dropped, err := ROCCurve(samples, WithDropIntermediate())
		require.NoError(t, err)
		assert.InDelta(t, auc, TrapezoidAUC(dropped), epsilon, "trial %d", trial)
	}
}

func TestROCCurve_DegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		scores []float64
	}{
		{"all positive", []int{1, 1, 1}, []float64{0.2, 0.5, 0.9}},
		{"all negative", []int{0, 0}, []float64{0.2, 0.9}},
		{"single sample", []int{1}, []float64{0.5}},
		{"empty", []int{}, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := samplesFrom(t, tt.labels, tt.scores)

			_, err := ROCCurve(samples)
			assert.ErrorIs(t, err, ErrDegenerateInput)

			_, err = ROCAUC(samples)
			assert.ErrorIs(t, err, ErrDegenerateInput)

			_, err = MannWhitneyAUC(samples)
			assert.ErrorIs(t, err, ErrDegenerateInput)
		})
	}
}

func TestROCCurve_InvalidSamples(t *testing.T) {
	tests := []struct {
		name    string
		samples []models.Sample
		wantErr error
	}{
		{
			name:    "label out of range",
			samples: []models.Sample{{Label: 1, Score: 0.4}, {Label: 2, Score: 0.1}},
			wantErr: ErrInvalidLabel,
		},
		{
			name:    "negative label",
			samples: []models.Sample{{Label: -1, Score: 0.4}, {Label: 1, Score: 0.1}},
			wantErr: ErrInvalidLabel,
		},
		{
			name:    "NaN score",
			samples: []models.Sample{{Label: 1, Score: math.NaN()}, {Label: 0, Score: 0.1}},
			wantErr: ErrInvalidScore,
		},
		{
			name:    "infinite score",
			samples: []models.Sample{{Label: 1, Score: math.Inf(1)}, {Label: 0, Score: 0.1}},
			wantErr: ErrInvalidScore,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ROCCurve(tt.samples)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrDegenerateInput)
		})
	}
}

func TestDegenerateErrorMentionsCounts(t *testing.T) {
	_, err := ROCAUC([]models.Sample{{Label: 1, Score: 0.3}, {Label: 1, Score: 0.6}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 positive, 0 negative")
}

func thresholdsOf(curve models.Curve) []float64 {
	out := make([]float64, len(curve.Points))
	for i, p := range curve.Points {
		out[i] = p.Threshold
	}
	return out
}
