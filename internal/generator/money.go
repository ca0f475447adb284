package generator

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds a currency amount to cents, half away from zero.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
