package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/internal/domain"
)

// Penalty and charge tables. These mirror the fee schedule the center
// operates under; amounts are in AED.

var (
	// philippinesStageDeductions is the stage-based cancellation penalty
	// for Filipino candidates.
	philippinesStageDeductions = map[domain.CancellationStage]decimal.Decimal{
		domain.StageOECIssued:        decimal.NewFromInt(6000),
		domain.StageContractAttested: decimal.NewFromInt(1800),
		domain.StageMedicalDone:      decimal.NewFromInt(5000),
	}

	// indonesiaFlatDeduction applies to Indonesian candidates at any stage.
	indonesiaFlatDeduction = decimal.NewFromInt(6000)

	optionBPenaltyDubai  = decimal.NewFromInt(1750)
	optionBPenaltyOthers = decimal.NewFromInt(1300)

	dailyChargeFirstTier  = decimal.NewFromInt(105) // per day, days 1-5
	dailyChargeSecondTier = decimal.NewFromInt(210) // per day, day 6 onwards

	amortizationMonths = decimal.NewFromInt(24)
	daysPerMonth       = decimal.NewFromInt(30)
)

// StageDeduction returns the nationality/stage cancellation penalty.
// Indonesia is a flat amount regardless of stage, the Philippines follows
// the OEC/attestation/medical schedule, and every other nationality has no
// penalty.
func StageDeduction(nationality domain.Nationality, stage domain.CancellationStage) decimal.Decimal {
	switch nationality {
	case domain.NationalityIndonesia:
		return indonesiaFlatDeduction
	case domain.NationalityPhilippines:
		if d, ok := philippinesStageDeductions[stage]; ok {
			return d
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// OptionBPenalty returns the fixed Option B penalty for the client's
// emirate. Dubai carries a higher amount than the other emirates.
func OptionBPenalty(emirate domain.Emirate) decimal.Decimal {
	if emirate == domain.EmirateDubai {
		return optionBPenaltyDubai
	}
	return optionBPenaltyOthers
}

// DailyContractCharge returns the tiered per-day contract charge for a
// tenure of the given whole days: 105/day for the first five days and
// 210/day from day six on.
func DailyContractCharge(days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	firstTierDays := days
	if firstTierDays > 5 {
		firstTierDays = 5
	}
	charge := dailyChargeFirstTier.Mul(decimal.NewFromInt(int64(firstTierDays)))
	if days > 5 {
		charge = charge.Add(dailyChargeSecondTier.Mul(decimal.NewFromInt(int64(days - 5))))
	}
	return charge
}

// MonthlyProrationDeduction prorates the commercial package over a fixed
// 24-month amortization for stays of 30 days and longer: full months at
// the monthly rate plus remaining days at a 30th of it per day.
func MonthlyProrationDeduction(baseExVAT decimal.Decimal, days int) decimal.Decimal {
	monthlyRate := baseExVAT.Div(amortizationMonths)
	fullMonths := decimal.NewFromInt(int64(days / 30))
	remainingDays := decimal.NewFromInt(int64(days % 30))
	return monthlyRate.Mul(fullMonths).Add(monthlyRate.Div(daysPerMonth).Mul(remainingDays))
}
