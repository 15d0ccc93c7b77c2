package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerscope/offerscope/internal/model"
)

func TestDefaultWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeightsValidateRejectsBadSum(t *testing.T) {
	w := DefaultWeights()
	w.MarketDemand = 25

	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 105")
}

func TestWeightedTotal(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name    string
		factors model.FactorScores
		want    float64
	}{
		{"all zero", model.FactorScores{}, 0},
		{
			"all hundred",
			model.FactorScores{
				MarketDemand:        100,
				Competition:         100,
				ConversionPotential: 100,
				CommissionValue:     100,
				VendorReputation:    100,
				RefundRisk:          100,
				TrafficCost:         100,
			},
			100,
		},
		{
			"mixed",
			model.FactorScores{
				MarketDemand:        95,
				Competition:         70,
				ConversionPotential: 85,
				CommissionValue:     95,
				VendorReputation:    80,
				RefundRisk:          90,
				TrafficCost:         35,
			},
			83.75,
		},
		{
			"conversion dominates at quarter weight",
			model.FactorScores{ConversionPotential: 100},
			25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, w.total(tt.factors), 0.0001)
		})
	}
}
