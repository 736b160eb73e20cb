package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/pkg/money"
)

// VATSplit is a VAT-inclusive price decomposed into its taxable base and
// the VAT collected on top of it.
type VATSplit struct {
	BaseExVAT decimal.Decimal
	VATAmount decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// SplitVAT decomposes a VAT-inclusive price for the given percentage rate.
// The base is rounded to cents and the VAT amount is derived as the exact
// remainder, so BaseExVAT + VATAmount always reproduces the price.
// Negative inputs are the caller's responsibility.
func SplitVAT(priceInclVAT, ratePercent decimal.Decimal) VATSplit {
	divisor := decimal.NewFromInt(1).Add(ratePercent.Div(oneHundred))
	base := money.RoundCents(priceInclVAT.Div(divisor))
	return VATSplit{
		BaseExVAT: base,
		VATAmount: money.RoundCents(priceInclVAT.Sub(base)),
	}
}
