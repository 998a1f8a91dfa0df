package calc

import "github.com/shopspring/decimal"

// roundHalfUp rounds v to places decimal places with ties rounding away
// from zero, so 2.675 at two places becomes 2.68 rather than the 2.67 a
// naive float shift produces.
func roundHalfUp(v float64, places int) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return rounded
}
