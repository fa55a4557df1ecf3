// Package dataset provides the sample sets the tool evaluates.
package dataset

import (
	"fmt"

	"github.com/spboyer/rocauc/internal/models"
)

var (
	stressLabels = []int{0, 0, 1, 1, 0, 1, 0, 1, 1, 0}
	stressScores = []float64{0.1, 0.4, 0.35, 0.8, 0.2, 0.75, 0.3, 0.9, 0.85, 0.05}
)

// StressDetection returns the built-in example: ten stress-detection
// classifier scores with their ground-truth labels.
func StressDetection() []models.Sample {
	samples, err := FromSlices(stressLabels, stressScores)
	if err != nil {
		panic(err)
	}
	return samples
}

// FromSlices zips parallel label and score slices into samples.
func FromSlices(labels []int, scores []float64) ([]models.Sample, error) {
	if len(labels) != len(scores) {
		return nil, fmt.Errorf("dataset: %d labels but %d scores", len(labels), len(scores))
	}
	samples := make([]models.Sample, len(labels))
	for i := range labels {
		samples[i] = models.Sample{Label: labels[i], Score: scores[i]}
	}
	return samples, nil
}
