package scoring

import (
	"math"

	"github.com/offerscope/offerscope/internal/model"
)

// costPerSaleSentinel stands in for an effectively infinite acquisition
// cost when the estimated conversion rate is zero. It keeps the arithmetic
// out of division-by-zero territory while still signalling "unprofitable".
const costPerSaleSentinel = 999

// estimateProfitability derives unit economics from the commission terms
// and the traffic/conversion factor scores.
func estimateProfitability(p *model.Product, f model.FactorScores) model.Profitability {
	commission := p.CommissionAmount()

	// CPC moves inversely with the traffic cost score: $0.50-$1.50 given a
	// clamped score.
	cpc := 1.5 - f.TrafficCost/100

	// Conversion rate scales with the conversion score: 0%-5%.
	conversionRate := f.ConversionPotential / 100 * 0.05

	var costPerSale float64
	if conversionRate > 0 {
		clicksPerSale := 1 / conversionRate
		costPerSale = clicksPerSale * cpc
	} else {
		costPerSale = costPerSaleSentinel
	}

	profitPerSale := commission - costPerSale

	var roi float64
	if costPerSale > 0 {
		roi = profitPerSale / costPerSale * 100
	}

	var level model.ProfitabilityLevel
	switch {
	case roi >= 200:
		level = model.ProfitabilityExcellent
	case roi >= 100:
		level = model.ProfitabilityGood
	case roi >= 50:
		level = model.ProfitabilityModerate
	case roi >= 0:
		level = model.ProfitabilityLow
	default:
		level = model.ProfitabilityUnprofitable
	}

	return model.Profitability{
		CommissionPerSale:       round2(commission),
		EstimatedCPC:            round2(cpc),
		EstimatedConversionRate: round2(conversionRate * 100),
		EstimatedCostPerSale:    round2(costPerSale),
		EstimatedProfitPerSale:  round2(profitPerSale),
		EstimatedROI:            round1(roi),
		Level:                   level,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
