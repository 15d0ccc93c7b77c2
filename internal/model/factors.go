package model

// FactorScores holds the seven independently computed sub-scores that feed
// the weighted total. Every field is clamped to [0,100] by the scorers.
type FactorScores struct {
	MarketDemand        float64
	Competition         float64 // Higher = less competition
	ConversionPotential float64
	CommissionValue     float64
	VendorReputation    float64
	RefundRisk          float64 // Higher = lower risk
	TrafficCost         float64 // Higher = cheaper traffic
}
