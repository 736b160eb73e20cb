package money

import (
	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary amount to 2 decimal places.
// All amounts that cross an output boundary (line items, result totals,
// formatted statements) go through this; intermediate arithmetic stays
// at full precision.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NonNegative clamps a negative amount to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FromInt creates a decimal amount from whole dirhams.
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// String returns the amount with fixed 2-decimal formatting.
func String(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format formats the amount as AED currency.
func Format(d decimal.Decimal) string {
	return "AED " + String(d)
}
