package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tadbeer/refund-calculator/internal/domain"
)

func TestStageDeduction(t *testing.T) {
	tests := []struct {
		name        string
		nationality domain.Nationality
		stage       domain.CancellationStage
		expected    int64
	}{
		{"Indonesia is flat regardless of stage", domain.NationalityIndonesia, domain.StageNone, 6000},
		{"Indonesia at medical stage", domain.NationalityIndonesia, domain.StageMedicalDone, 6000},
		{"Philippines OEC issued", domain.NationalityPhilippines, domain.StageOECIssued, 6000},
		{"Philippines contract attested", domain.NationalityPhilippines, domain.StageContractAttested, 1800},
		{"Philippines medical done", domain.NationalityPhilippines, domain.StageMedicalDone, 5000},
		{"Philippines no stage", domain.NationalityPhilippines, domain.StageNone, 0},
		{"Ethiopia has no penalty", domain.NationalityEthiopia, domain.StageOECIssued, 0},
		{"Other has no penalty", domain.NationalityOther, domain.StageMedicalDone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StageDeduction(tt.nationality, tt.stage)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, got)
		})
	}
}

func TestOptionBPenalty(t *testing.T) {
	assert.True(t, OptionBPenalty(domain.EmirateDubai).Equal(decimal.NewFromInt(1750)))
	assert.True(t, OptionBPenalty(domain.EmirateSharjah).Equal(decimal.NewFromInt(1300)))
	assert.True(t, OptionBPenalty(domain.EmirateAbuDhabi).Equal(decimal.NewFromInt(1300)))
}

func TestDailyContractCharge(t *testing.T) {
	tests := []struct {
		days     int
		expected int64
	}{
		{0, 0},
		{-3, 0},
		{1, 105},
		{4, 420},
		{5, 525},
		{6, 735},   // 525 + 210
		{10, 1575}, // 525 + 5*210
		{29, 5565}, // 525 + 24*210
	}

	for _, tt := range tests {
		got := DailyContractCharge(tt.days)
		assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
			"days %d: expected %d, got %s", tt.days, tt.expected, got)
	}
}

func TestMonthlyProrationDeduction(t *testing.T) {
	base := decimal.NewFromFloat(9523.81)
	monthlyRate := base.Div(decimal.NewFromInt(24))

	tests := []struct {
		name     string
		days     int
		expected decimal.Decimal
	}{
		{
			name:     "Exactly one month",
			days:     30,
			expected: monthlyRate,
		},
		{
			name:     "One month and a half",
			days:     45,
			expected: monthlyRate.Add(monthlyRate.Div(decimal.NewFromInt(30)).Mul(decimal.NewFromInt(15))),
		},
		{
			name:     "Three full months",
			days:     90,
			expected: monthlyRate.Mul(decimal.NewFromInt(3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyProrationDeduction(base, tt.days)
			assert.True(t, got.Round(2).Equal(tt.expected.Round(2)),
				"expected %s, got %s", tt.expected.Round(2), got.Round(2))
		})
	}
}
