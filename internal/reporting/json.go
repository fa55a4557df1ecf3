package reporting

import (
	"encoding/json"
	"io"
	"math"

	"github.com/spboyer/rocauc/internal/models"
	"github.com/spboyer/rocauc/internal/statistics"
)

// jsonPoint mirrors models.Point with the threshold exposed. JSON has no
// infinity, so the starting threshold is written as null.
type jsonPoint struct {
	FPR       float64  `json:"fpr"`
	TPR       float64  `json:"tpr"`
	Threshold *float64 `json:"threshold"`
}

type jsonReport struct {
	AUC            float64                        `json:"auc"`
	Interpretation string                         `json:"interpretation"`
	Positives      int                            `json:"positives"`
	Negatives      int                            `json:"negatives"`
	Points         []jsonPoint                    `json:"points"`
	BootstrapCI    *statistics.ConfidenceInterval `json:"bootstrap_ci,omitempty"`
	Optimal        jsonPoint                      `json:"optimal"`
	Confusion      *models.Confusion              `json:"confusion,omitempty"`
	PositiveScores models.ScoreSummary            `json:"positive_scores"`
	NegativeScores models.ScoreSummary            `json:"negative_scores"`
}

// WriteJSON writes eval to w as indented JSON.
func WriteJSON(w io.Writer, eval *models.Evaluation) error {
	report := jsonReport{
		AUC:            eval.AUC,
		Interpretation: InterpretAUC(eval.AUC),
		Positives:      eval.Curve.Positives,
		Negatives:      eval.Curve.Negatives,
		Points:         make([]jsonPoint, 0, len(eval.Curve.Points)),
		BootstrapCI:    eval.BootstrapCI,
		Optimal:        toJSONPoint(eval.Optimal),
		Confusion:      eval.Confusion,
		PositiveScores: eval.Positive,
		NegativeScores: eval.Negative,
	}
	for _, p := range eval.Curve.Points {
		report.Points = append(report.Points, toJSONPoint(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func toJSONPoint(p models.Point) jsonPoint {
	jp := jsonPoint{FPR: p.FPR, TPR: p.TPR}
	if !math.IsInf(p.Threshold, 0) && !math.IsNaN(p.Threshold) {
		t := p.Threshold
		jp.Threshold = &t
	}
	return jp
}
