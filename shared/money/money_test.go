package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostly/shared/money"
)

func TestRoundToHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		decimals int32
		expected float64
	}{
		{name: "binary float midpoint rounds up", amount: 1.005, decimals: 2, expected: 1.01},
		{name: "already rounded", amount: 10.5, decimals: 2, expected: 10.5},
		{name: "below midpoint", amount: 2.344, decimals: 2, expected: 2.34},
		{name: "midpoint", amount: 2.345, decimals: 2, expected: 2.35},
		{name: "zero decimals", amount: 2.5, decimals: 0, expected: 3},
		{name: "large amount", amount: 123456.785, decimals: 2, expected: 123456.79},
		{name: "zero", amount: 0, decimals: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.RoundToHalfUp(tt.amount, tt.decimals))
		})
	}
}

func TestRoundToHalfUp_Idempotent(t *testing.T) {
	for _, amount := range []float64{1.005, 0.125, 99.995, 7.1, 1234.5678} {
		once := money.RoundToHalfUp(amount, 2)

		assert.Equal(t, once, money.RoundToHalfUp(once, 2))
	}
}

func TestCalculateAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		modifier money.Modifier
		base     float64
		expected float64
	}{
		{
			name:     "fixed ignores base",
			modifier: money.Modifier{Type: money.AdjustmentFixed, Amount: 5},
			base:     100,
			expected: 5,
		},
		{
			name:     "fixed with zero base",
			modifier: money.Modifier{Type: money.AdjustmentFixed, Amount: 5},
			base:     0,
			expected: 5,
		},
		{
			name:     "percentage",
			modifier: money.Modifier{Type: money.AdjustmentPercentage, Amount: 10},
			base:     100,
			expected: 10,
		},
		{
			name:     "percentage of zero",
			modifier: money.Modifier{Type: money.AdjustmentPercentage, Amount: 10},
			base:     0,
			expected: 0,
		},
		{
			name:     "unknown type contributes nothing",
			modifier: money.Modifier{Type: "BOGUS", Amount: 5},
			base:     100,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.CalculateAdjustment(tt.modifier, tt.base))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.3, money.Sum(0.1, 0.2))
	assert.Equal(t, 0.0, money.Sum())
	assert.Equal(t, 12.35, money.Sum(10, 2.345))
}

func TestSplit(t *testing.T) {
	parts := money.Split(100, 3)

	assert.Equal(t, []float64{33.33, 33.33, 33.34}, parts)
	assert.Equal(t, 100.0, money.Sum(parts...))
	assert.Nil(t, money.Split(100, 0))
	assert.Equal(t, []float64{50}, money.Split(50, 1))
}
