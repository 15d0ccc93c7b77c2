package scoring

import (
	"fmt"

	"github.com/offerscope/offerscope/internal/model"
)

// Weights maps each factor to its integer share of the total score.
// The shares must sum to exactly 100 so the weighted total stays in [0,100]
// without further normalization.
type Weights struct {
	MarketDemand        int
	Competition         int
	ConversionPotential int
	CommissionValue     int
	VendorReputation    int
	RefundRisk          int
	TrafficCost         int
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		MarketDemand:        20,
		Competition:         15,
		ConversionPotential: 25,
		CommissionValue:     15,
		VendorReputation:    10,
		RefundRisk:          10,
		TrafficCost:         5,
	}
}

// Validate ensures the weights sum to exactly 100.
func (w Weights) Validate() error {
	sum := w.MarketDemand + w.Competition + w.ConversionPotential +
		w.CommissionValue + w.VendorReputation + w.RefundRisk + w.TrafficCost
	if sum != 100 {
		return fmt.Errorf("weights must sum to 100, got %d", sum)
	}
	return nil
}

// total computes the weighted total score for a set of factor scores.
// The result is unrounded; rounding happens at presentation time.
func (w Weights) total(f model.FactorScores) float64 {
	return f.MarketDemand*float64(w.MarketDemand)/100 +
		f.Competition*float64(w.Competition)/100 +
		f.ConversionPotential*float64(w.ConversionPotential)/100 +
		f.CommissionValue*float64(w.CommissionValue)/100 +
		f.VendorReputation*float64(w.VendorReputation)/100 +
		f.RefundRisk*float64(w.RefundRisk)/100 +
		f.TrafficCost*float64(w.TrafficCost)/100
}
