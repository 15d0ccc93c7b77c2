package model

import "math"

// ScoredProduct is the result of running a product through the scoring
// pipeline. It is constructed once per scoring call and never mutated;
// ownership transfers fully to the caller.
type ScoredProduct struct {
	Product        Product
	TotalScore     float64 // Unrounded; round only for display
	Grade          string
	Factors        FactorScores
	Risk           RiskAssessment
	Profitability  Profitability
	Analysis       string // Narrative from the collaborator, or a placeholder
	Recommendation Recommendation
}

// RoundedScore returns the total score rounded to one decimal place for
// presentation. Sorting always uses the unrounded TotalScore.
func (s *ScoredProduct) RoundedScore() float64 {
	return math.Round(s.TotalScore*10) / 10
}

// Grade converts a total score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 45:
		return "D+"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
