package scoring

import (
	"math"

	"github.com/offerscope/offerscope/internal/model"
)

// recommend applies the decision table to the total score and risk level.
// Rows are evaluated in order; the first match wins.
func recommend(totalScore float64, risk model.RiskLevel, roi float64) model.Recommendation {
	var rec model.Recommendation

	switch {
	case totalScore >= 75 && risk == model.RiskLow:
		rec.Action = model.ActionPromote
		rec.Confidence = model.ConfidenceHigh
		rec.Reason = "Excellent scores across all metrics with low risk"
	case totalScore >= 60 && (risk == model.RiskLow || risk == model.RiskMedium):
		rec.Action = model.ActionPromote
		rec.Confidence = model.ConfidenceMedium
		rec.Reason = "Good overall scores, manageable risk"
	case totalScore >= 50:
		rec.Action = model.ActionTest
		rec.Confidence = model.ConfidenceLow
		rec.Reason = "Moderate scores, test with small budget first"
	default:
		rec.Action = model.ActionSkip
		rec.Confidence = model.ConfidenceNA
		rec.Reason = "Scores too low or risk too high"
	}

	rec.Priority = priority(totalScore, roi)
	return rec
}

// priority maps score and ROI to a 1-10 ranking. ROI's contribution is
// capped at 500% so a single spectacular estimate cannot dominate.
func priority(score, roi float64) int {
	p := score/10 + math.Min(roi, 500)/100
	rounded := int(math.Round(p))
	if rounded > 10 {
		return 10
	}
	if rounded < 1 {
		return 1
	}
	return rounded
}
