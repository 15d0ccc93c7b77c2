package scoring

import "github.com/offerscope/offerscope/internal/model"

// The factor scorers below are pure functions of the product record. Each
// starts from a documented base value, applies additive adjustments, then
// clamps to [0,100]. Inputs are deliberately not validated: out-of-range
// values (negative price, rating above 5) flow through the arithmetic and
// only the result is clamped.

// clamp bounds a raw score to [0,100].
func clamp(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// scoreMarketDemand estimates demand from review volume, rating, and niche
// trends. Base 50.
func (e *Engine) scoreMarketDemand(p *model.Product) float64 {
	score := 50.0

	switch {
	case p.Reviews > 500:
		score += 30
	case p.Reviews > 100:
		score += 20
	case p.Reviews > 20:
		score += 10
	case p.Reviews < 5:
		score -= 20
	}

	switch {
	case p.Rating >= 4.5:
		score += 15
	case p.Rating >= 4.0:
		score += 10
	case p.Rating >= 3.5:
		score += 5
	case p.Rating < 3.0:
		score -= 20
	}

	if matchesAny(p.Niche, e.keywords.HotNiches) {
		score += 10
	}

	return clamp(score)
}

// scoreCompetition estimates market saturation. Higher score means less
// competition. Base 60.
func (e *Engine) scoreCompetition(p *model.Product) float64 {
	score := 60.0

	// High-ticket offers face thinner competition than low-ticket ones.
	switch {
	case p.Price > 200:
		score += 20
	case p.Price > 100:
		score += 10
	case p.Price < 20:
		score -= 15
	}

	if matchesAny(p.Niche, e.keywords.SaturatedNiches) {
		score -= 20
	}
	if matchesAny(p.Niche, e.keywords.EmergingNiches) {
		score += 15
	}

	return clamp(score)
}

// scoreConversionPotential estimates how likely traffic converts to sales.
// Base 50.
func (e *Engine) scoreConversionPotential(p *model.Product) float64 {
	score := 50.0

	// Social proof
	switch {
	case p.Reviews > 100 && p.Rating >= 4.5:
		score += 25
	case p.Reviews > 50 && p.Rating >= 4.0:
		score += 15
	case p.Reviews < 10:
		score -= 15
	}

	// Price sweet spot for cold traffic
	switch {
	case p.Price >= 47 && p.Price <= 197:
		score += 20
	case p.Price < 20:
		score -= 10
	case p.Price > 500:
		score -= 15
	}

	// Description length as a proxy for sales page quality
	switch {
	case len(p.Description) > 200:
		score += 10
	case p.Description == "":
		score -= 10
	}

	return clamp(score)
}

// scoreCommissionValue tiers the dollar commission per sale.
func (e *Engine) scoreCommissionValue(p *model.Product) float64 {
	amount := p.CommissionAmount()

	var score float64
	switch {
	case amount >= 100:
		score = 100
	case amount >= 50:
		score = 85
	case amount >= 30:
		score = 70
	case amount >= 20:
		score = 55
	case amount >= 10:
		score = 40
	default:
		score = 25
	}

	if p.CommissionRate >= 50 {
		score += 10
	}

	return clamp(score)
}

// scoreVendorReputation estimates seller trustworthiness from platform and
// social proof. Base 50.
func (e *Engine) scoreVendorReputation(p *model.Product) float64 {
	score := 50.0

	if matchesAny(p.Platform, e.keywords.TrustedPlatforms) {
		score += 20
	}

	switch {
	case p.Rating >= 4.5 && p.Reviews > 100:
		score += 30
	case p.Rating >= 4.0 && p.Reviews > 50:
		score += 20
	case p.Rating < 3.5:
		score -= 30
	}

	return clamp(score)
}

// scoreRefundRisk estimates refund and chargeback exposure. Higher score
// means lower risk. Base 70.
func (e *Engine) scoreRefundRisk(p *model.Product) float64 {
	score := 70.0

	if matchesAny(p.Category, e.keywords.HighRiskCategories) {
		score -= 30
	}

	switch {
	case p.Rating >= 4.5:
		score += 20
	case p.Rating < 3.5:
		score -= 25
	}

	switch {
	case p.Price > 300:
		score -= 15
	case p.Price < 50:
		score += 10
	}

	return clamp(score)
}

// scoreTrafficCost estimates ad cost for the niche. Higher score means
// cheaper traffic. Base 60.
func (e *Engine) scoreTrafficCost(p *model.Product) float64 {
	score := 60.0

	if matchesAny(p.Niche, e.keywords.ExpensiveNiches) {
		score -= 25
	}
	if matchesAny(p.Niche, e.keywords.CheapNiches) {
		score += 20
	}

	// High-ticket offers can absorb a higher CPC.
	if p.Price > 200 {
		score += 15
	}

	return clamp(score)
}

// scoreFactors runs all seven factor scorers.
func (e *Engine) scoreFactors(p *model.Product) model.FactorScores {
	return model.FactorScores{
		MarketDemand:        e.scoreMarketDemand(p),
		Competition:         e.scoreCompetition(p),
		ConversionPotential: e.scoreConversionPotential(p),
		CommissionValue:     e.scoreCommissionValue(p),
		VendorReputation:    e.scoreVendorReputation(p),
		RefundRisk:          e.scoreRefundRisk(p),
		TrafficCost:         e.scoreTrafficCost(p),
	}
}
