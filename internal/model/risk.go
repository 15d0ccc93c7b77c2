package model

// RiskLevel categorizes the overall risk of promoting an offer.
type RiskLevel string

// Risk levels, from safest to most dangerous.
const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskAssessment combines a risk level with the human-readable factors that
// triggered it. Factors is never empty; when nothing triggers it contains a
// single placeholder entry so callers can always render it.
type RiskAssessment struct {
	Level   RiskLevel
	Factors []string
}
