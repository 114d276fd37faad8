package gst

import "github.com/shopspring/decimal"

// Round2 rounds to paise, half away from zero. It is applied to every computed
// money field independently, so totals built from rounded parts can drift by a
// paisa from a single final rounding.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundRupee rounds to whole rupees, half away from zero.
func RoundRupee(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// Sum adds money values exactly and rounds the result to paise.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}
