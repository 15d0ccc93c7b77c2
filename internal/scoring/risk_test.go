package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offerscope/offerscope/internal/model"
)

func cleanFactors() model.FactorScores {
	return model.FactorScores{
		MarketDemand:        80,
		Competition:         80,
		ConversionPotential: 80,
		CommissionValue:     80,
		VendorReputation:    80,
		RefundRisk:          80,
		TrafficCost:         80,
	}
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*model.FactorScores)
		wantLevel   model.RiskLevel
		wantFactors []string
	}{
		{
			name:        "no triggers is low risk with placeholder",
			mutate:      func(*model.FactorScores) {},
			wantLevel:   model.RiskLow,
			wantFactors: []string{"No significant risks detected"},
		},
		{
			name:        "single trigger is medium",
			mutate:      func(f *model.FactorScores) { f.MarketDemand = 39.9 },
			wantLevel:   model.RiskMedium,
			wantFactors: []string{"Low market demand - product may not sell well"},
		},
		{
			name: "two triggers is medium",
			mutate: func(f *model.FactorScores) {
				f.Competition = 29
				f.TrafficCost = 39
			},
			wantLevel: model.RiskMedium,
			wantFactors: []string{
				"High competition - difficult to stand out",
				"High traffic cost - low profit margins",
			},
		},
		{
			name: "three triggers is high",
			mutate: func(f *model.FactorScores) {
				f.ConversionPotential = 39
				f.VendorReputation = 49
				f.RefundRisk = 49
			},
			wantLevel: model.RiskHigh,
			wantFactors: []string{
				"Low conversion potential - may waste ad spend",
				"Questionable vendor reputation - refund risk",
				"High refund risk - unstable income",
			},
		},
		{
			name:        "threshold is exclusive",
			mutate:      func(f *model.FactorScores) { f.MarketDemand = 40 },
			wantLevel:   model.RiskLow,
			wantFactors: []string{"No significant risks detected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := cleanFactors()
			tt.mutate(&factors)

			risk := assessRisk(factors)
			assert.Equal(t, tt.wantLevel, risk.Level)
			assert.Equal(t, tt.wantFactors, risk.Factors)
			assert.NotEmpty(t, risk.Factors)
		})
	}
}

func TestAssessRiskAllTriggers(t *testing.T) {
	risk := assessRisk(model.FactorScores{})
	assert.Equal(t, model.RiskHigh, risk.Level)
	assert.Len(t, risk.Factors, 6)
}
