package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{85, "A"},
		{83.75, "A-"},
		{80, "A-"},
		{79.9, "B+"},
		{75, "B+"},
		{70, "B"},
		{65, "B-"},
		{60, "C+"},
		{55, "C"},
		{50, "C-"},
		{45, "D+"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %.2f", tt.score)
	}
}

func TestRoundedScore(t *testing.T) {
	tests := []struct {
		total float64
		want  float64
	}{
		{83.75, 83.8},
		{83.74, 83.7},
		{0, 0},
		{100, 100},
	}

	for _, tt := range tests {
		s := ScoredProduct{TotalScore: tt.total}
		assert.InDelta(t, tt.want, s.RoundedScore(), 0.0001)
	}
}
