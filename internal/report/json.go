package report

import (
	"math"

	"github.com/offerscope/offerscope/internal/model"
)

// ScoredProductJSON is the wire representation of a scored product. Field
// names match the upstream platform's schema for downstream compatibility.
type ScoredProductJSON struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Category       string      `json:"category"`
	Niche          string      `json:"niche"`
	Platform       string      `json:"platform"`
	Price          float64     `json:"price"`
	CommissionRate float64     `json:"commission_rate"`
	Rating         float64     `json:"rating"`
	Reviews        int         `json:"reviews"`
	Scoring        ScoringJSON `json:"scoring"`
}

// ScoringJSON nests the computed scoring object.
type ScoringJSON struct {
	TotalScore     float64            `json:"total_score"`
	Grade          string             `json:"grade"`
	Scores         FactorsJSON        `json:"scores"`
	RiskAssessment RiskJSON           `json:"risk_assessment"`
	Profitability  ProfitabilityJSON  `json:"profitability"`
	Analysis       string             `json:"ai_analysis"`
	Recommendation RecommendationJSON `json:"recommendation"`
}

// FactorsJSON carries the per-factor scores, rounded to one decimal.
type FactorsJSON struct {
	MarketDemand        float64 `json:"market_demand"`
	Competition         float64 `json:"competition"`
	ConversionPotential float64 `json:"conversion_potential"`
	CommissionValue     float64 `json:"commission_value"`
	VendorReputation    float64 `json:"vendor_reputation"`
	RefundRisk          float64 `json:"refund_risk"`
	TrafficCost         float64 `json:"traffic_cost"`
}

// RiskJSON carries the risk assessment.
type RiskJSON struct {
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

// ProfitabilityJSON carries the profitability estimate.
type ProfitabilityJSON struct {
	CommissionPerSale       float64 `json:"commission_per_sale"`
	EstimatedCPC            float64 `json:"estimated_cpc"`
	EstimatedConversionRate float64 `json:"estimated_conversion_rate"`
	EstimatedCostPerSale    float64 `json:"estimated_cost_per_sale"`
	EstimatedProfitPerSale  float64 `json:"estimated_profit_per_sale"`
	EstimatedROI            float64 `json:"estimated_roi"`
	ProfitabilityLevel      string  `json:"profitability_level"`
}

// RecommendationJSON carries the final recommendation.
type RecommendationJSON struct {
	Action     string `json:"action"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
	Priority   int    `json:"priority"`
}

// ToJSON converts a scored product to its wire representation. Scores are
// rounded for presentation; sorting upstream always used unrounded values.
func ToJSON(scored *model.ScoredProduct) ScoredProductJSON {
	round1 := func(v float64) float64 {
		return math.Round(v*10) / 10
	}

	return ScoredProductJSON{
		ID:             scored.Product.ID,
		Name:           scored.Product.Name,
		Description:    scored.Product.Description,
		Category:       scored.Product.Category,
		Niche:          scored.Product.Niche,
		Platform:       scored.Product.Platform,
		Price:          scored.Product.Price,
		CommissionRate: scored.Product.CommissionRate,
		Rating:         scored.Product.Rating,
		Reviews:        scored.Product.Reviews,
		Scoring: ScoringJSON{
			TotalScore: scored.RoundedScore(),
			Grade:      scored.Grade,
			Scores: FactorsJSON{
				MarketDemand:        round1(scored.Factors.MarketDemand),
				Competition:         round1(scored.Factors.Competition),
				ConversionPotential: round1(scored.Factors.ConversionPotential),
				CommissionValue:     round1(scored.Factors.CommissionValue),
				VendorReputation:    round1(scored.Factors.VendorReputation),
				RefundRisk:          round1(scored.Factors.RefundRisk),
				TrafficCost:         round1(scored.Factors.TrafficCost),
			},
			RiskAssessment: RiskJSON{
				Level:   string(scored.Risk.Level),
				Factors: scored.Risk.Factors,
			},
			Profitability: ProfitabilityJSON{
				CommissionPerSale:       scored.Profitability.CommissionPerSale,
				EstimatedCPC:            scored.Profitability.EstimatedCPC,
				EstimatedConversionRate: scored.Profitability.EstimatedConversionRate,
				EstimatedCostPerSale:    scored.Profitability.EstimatedCostPerSale,
				EstimatedProfitPerSale:  scored.Profitability.EstimatedProfitPerSale,
				EstimatedROI:            scored.Profitability.EstimatedROI,
				ProfitabilityLevel:      string(scored.Profitability.Level),
			},
			Analysis: scored.Analysis,
			Recommendation: RecommendationJSON{
				Action:     string(scored.Recommendation.Action),
				Confidence: string(scored.Recommendation.Confidence),
				Reason:     scored.Recommendation.Reason,
				Priority:   scored.Recommendation.Priority,
			},
		},
	}
}
