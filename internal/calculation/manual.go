package calculation

import (
	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/money"
)

// ApplyManualDeduction appends a user-entered deduction to a computed
// result and re-derives the totals. It runs outside the engine proper: the
// deduction is part of the persisted record, not a classifier branch.
// Non-positive amounts and no-refund cases are returned unchanged.
func ApplyManualDeduction(result domain.RefundResult, d domain.ManualDeduction) domain.RefundResult {
	amount := money.RoundCents(d.Amount)
	if !amount.IsPositive() || result.IsNoRefundCase {
		return result
	}

	label := d.Description
	if label == "" {
		label = "Manual deduction"
	}

	deductions := append([]domain.LineItem(nil), result.Deductions...)
	deductions = append(deductions, domain.LineItem{
		Label:           label,
		Amount:          amount.Neg(),
		RuleExplanation: "Additional deduction entered by the user",
	})

	result.Deductions = deductions
	result.RefundExVAT = result.RefundExVAT.Sub(amount)
	result.TotalRefund = money.NonNegative(result.RefundExVAT).Add(result.VATRefundable)
	return result
}
