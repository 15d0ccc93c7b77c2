package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{"half of 197", Product{Price: 197, CommissionRate: 50}, 98.5},
		{"full rate", Product{Price: 80, CommissionRate: 100}, 80},
		{"zero rate", Product{Price: 997}, 0},
		{"zero price", Product{CommissionRate: 75}, 0},
		{"negative price passes through", Product{Price: -100, CommissionRate: 50}, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.product.CommissionAmount(), 0.0001)
		})
	}
}
