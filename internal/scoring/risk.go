package scoring

import "github.com/offerscope/offerscope/internal/model"

// assessRisk evaluates the red-flag rules against the computed factor
// scores. Three or more triggered rules mean HIGH risk, one or two MEDIUM,
// none LOW. The factor list is never left empty.
func assessRisk(f model.FactorScores) model.RiskAssessment {
	var factors []string

	if f.MarketDemand < 40 {
		factors = append(factors, "Low market demand - product may not sell well")
	}
	if f.Competition < 30 {
		factors = append(factors, "High competition - difficult to stand out")
	}
	if f.ConversionPotential < 40 {
		factors = append(factors, "Low conversion potential - may waste ad spend")
	}
	if f.VendorReputation < 50 {
		factors = append(factors, "Questionable vendor reputation - refund risk")
	}
	if f.RefundRisk < 50 {
		factors = append(factors, "High refund risk - unstable income")
	}
	if f.TrafficCost < 40 {
		factors = append(factors, "High traffic cost - low profit margins")
	}

	var level model.RiskLevel
	switch {
	case len(factors) >= 3:
		level = model.RiskHigh
	case len(factors) >= 1:
		level = model.RiskMedium
	default:
		level = model.RiskLow
	}

	if len(factors) == 0 {
		factors = append(factors, "No significant risks detected")
	}

	return model.RiskAssessment{Level: level, Factors: factors}
}
