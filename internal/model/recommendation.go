package model

// Action is the recommended next step for an offer.
type Action string

// Recommended actions.
const (
	ActionPromote Action = "PROMOTE"
	ActionTest    Action = "TEST"
	ActionSkip    Action = "SKIP"
)

// Confidence expresses how sure the engine is about its recommendation.
type Confidence string

// Confidence levels. ConfidenceNA accompanies SKIP recommendations.
const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
	ConfidenceNA     Confidence = "N/A"
)

// Recommendation is the engine's final verdict on an offer.
type Recommendation struct {
	Action     Action
	Confidence Confidence
	Reason     string
	Priority   int // 1-10, higher = act sooner
}
