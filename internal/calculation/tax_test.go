package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestSplitVAT verifies the VAT decomposition and the reconstruction
// property: base plus VAT always reproduces the inclusive price exactly.
func TestSplitVAT(t *testing.T) {
	tests := []struct {
		name         string
		price        decimal.Decimal
		rate         decimal.Decimal
		expectedBase decimal.Decimal
		expectedVAT  decimal.Decimal
	}{
		{
			name:         "Standard 5 percent rate",
			price:        decimal.NewFromInt(10000),
			rate:         decimal.NewFromInt(5),
			expectedBase: decimal.NewFromFloat(9523.81),
			expectedVAT:  decimal.NewFromFloat(476.19),
		},
		{
			name:         "Zero rate keeps the full price as base",
			price:        decimal.NewFromInt(12500),
			rate:         decimal.Zero,
			expectedBase: decimal.NewFromInt(12500),
			expectedVAT:  decimal.Zero,
		},
		{
			name:         "Zero price",
			price:        decimal.Zero,
			rate:         decimal.NewFromInt(5),
			expectedBase: decimal.Zero,
			expectedVAT:  decimal.Zero,
		},
		{
			name:         "Odd price with sub-cent division",
			price:        decimal.NewFromFloat(10001.37),
			rate:         decimal.NewFromInt(5),
			expectedBase: decimal.NewFromFloat(9525.11),
			expectedVAT:  decimal.NewFromFloat(476.26),
		},
		{
			name:         "High rate",
			price:        decimal.NewFromInt(5000),
			rate:         decimal.NewFromInt(20),
			expectedBase: decimal.NewFromFloat(4166.67),
			expectedVAT:  decimal.NewFromFloat(833.33),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitVAT(tt.price, tt.rate)
			assert.True(t, split.BaseExVAT.Equal(tt.expectedBase),
				"base: expected %s, got %s", tt.expectedBase, split.BaseExVAT)
			assert.True(t, split.VATAmount.Equal(tt.expectedVAT),
				"vat: expected %s, got %s", tt.expectedVAT, split.VATAmount)
			assert.True(t, split.BaseExVAT.Add(split.VATAmount).Equal(tt.price),
				"base + vat must reproduce the price")
		})
	}
}
