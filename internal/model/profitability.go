package model

// ProfitabilityLevel buckets an offer's estimated return on ad spend.
type ProfitabilityLevel string

// Profitability tiers keyed off estimated ROI.
const (
	ProfitabilityExcellent    ProfitabilityLevel = "EXCELLENT"
	ProfitabilityGood         ProfitabilityLevel = "GOOD"
	ProfitabilityModerate     ProfitabilityLevel = "MODERATE"
	ProfitabilityLow          ProfitabilityLevel = "LOW"
	ProfitabilityUnprofitable ProfitabilityLevel = "UNPROFITABLE"
)

// Profitability holds the estimated unit economics of promoting an offer
// with paid traffic. Dollar amounts unless noted otherwise.
type Profitability struct {
	CommissionPerSale       float64
	EstimatedCPC            float64
	EstimatedConversionRate float64 // Percentage, 0-5
	EstimatedCostPerSale    float64
	EstimatedProfitPerSale  float64
	EstimatedROI            float64 // Percentage
	Level                   ProfitabilityLevel
}
