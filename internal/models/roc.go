package models

import "github.com/spboyer/rocauc/internal/statistics"

// Label values for a binary classification sample.
const (
	LabelNegative = 0
	LabelPositive = 1
)

// Sample pairs a ground-truth label with the score a classifier assigned.
type Sample struct {
	Label int     `json:"label"`
	Score float64 `json:"score"`
}

// Positive reports whether the sample belongs to the positive class.
func (s Sample) Positive() bool {
	return s.Label == LabelPositive
}

// Point is one operating point on a ROC curve. Threshold is the score cut-off
// that produced it; the starting point uses +Inf.
type Point struct {
	FPR       float64 `json:"fpr"`
	TPR       float64 `json:"tpr"`
	Threshold float64 `json:"-"`
}

// Curve is an ordered ROC curve running from (0,0) to (1,1).
type Curve struct {
	Points    []Point `json:"points"`
	Positives int     `json:"positives"`
	Negatives int     `json:"negatives"`
}

// FPR returns the false positive rates in curve order.
func (c Curve) FPR() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.FPR
	}
	return out
}

// TPR returns the true positive rates in curve order.
func (c Curve) TPR() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.TPR
	}
	return out
}

// Confusion holds classification counts and derived rates for the rule
// "score >= Threshold means positive".
type Confusion struct {
	Threshold float64 `json:"threshold"`
	TP        int     `json:"true_positives"`
	FP        int     `json:"false_positives"`
	TN        int     `json:"true_negatives"`
	FN        int     `json:"false_negatives"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
}

// ScoreSummary describes the score distribution of one class.
type ScoreSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Evaluation is the full result of scoring a sample set.
type Evaluation struct {
	Curve       Curve                          `json:"curve"`
	AUC         float64                        `json:"auc"`
	BootstrapCI *statistics.ConfidenceInterval `json:"bootstrap_ci,omitempty"`
	Optimal     Point                          `json:"optimal"`
	Confusion   *Confusion                     `json:"confusion,omitempty"`
	Positive    ScoreSummary                   `json:"positive_scores"`
	Negative    ScoreSummary                   `json:"negative_scores"`
}
