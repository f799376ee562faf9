package money

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	DefaultDecimals = 2

	AdjustmentFixed      = "FIXED"
	AdjustmentPercentage = "PERCENTAGE"
)

var hundred = decimal.NewFromInt(100)

// Modifier is a fixed or percentage amount applied against a base.
type Modifier struct {
	Type   string  `json:"type"   db:"type"`
	Amount float64 `json:"amount" db:"amount"`
}

// RoundToHalfUp rounds through the shortest decimal representation of amount, so 1.005 becomes 1.01.
func RoundToHalfUp(amount float64, decimals int32) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(decimals).Float64()

	return rounded
}

// Round is RoundToHalfUp with two decimals.
func Round(amount float64) float64 {
	return RoundToHalfUp(amount, DefaultDecimals)
}

// CalculateAdjustment returns what the modifier contributes against base.
// Unknown modifier types contribute zero.
func CalculateAdjustment(modifier Modifier, base float64) float64 {
	switch modifier.Type {
	case AdjustmentFixed:
		return modifier.Amount
	case AdjustmentPercentage:
		result, _ := decimal.NewFromFloat(base).
			Mul(decimal.NewFromFloat(modifier.Amount)).
			Div(hundred).
			Float64()

		return result
	default:
		log.Warn().
			Str("type", modifier.Type).
			Float64("amount", modifier.Amount).
			Msg("unknown adjustment type, contributing zero")

		return 0
	}
}

// Sum adds amounts exactly and rounds the result half-up to two decimals.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(decimal.NewFromFloat(amount))
	}

	result, _ := total.Round(DefaultDecimals).Float64()

	return result
}

// Sub returns a-b rounded half-up to two decimals.
func Sub(a, b float64) float64 {
	result, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(DefaultDecimals).Float64()

	return result
}

// Mul returns a*b rounded half-up to two decimals.
func Mul(a, b float64) float64 {
	result, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(DefaultDecimals).Float64()

	return result
}

// Split divides total into n parts rounded to cents; the last part absorbs the remainder.
func Split(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	whole := decimal.NewFromFloat(total)
	part := whole.Div(decimal.NewFromInt(int64(n))).Round(DefaultDecimals)

	parts := make([]float64, n)
	allocated := decimal.Zero

	for i := range n - 1 {
		parts[i], _ = part.Float64()
		allocated = allocated.Add(part)
	}

	parts[n-1], _ = whole.Sub(allocated).Round(DefaultDecimals).Float64()

	return parts
}
