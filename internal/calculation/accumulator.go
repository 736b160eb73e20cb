package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/money"
)

// Accumulator builds the ordered refund audit trail and folds it into a
// running balance. Items are appended in calculation order so the printed
// statement reads the way the rules were applied: base price first, branch
// items next, the unpaid-salary master deduction last.
type Accumulator struct {
	additions  []domain.LineItem
	deductions []domain.LineItem
	balance    decimal.Decimal
}

// Add appends a positive addition line item. Amounts are rounded to cents
// on entry so the folded balance always equals the sum of the printed
// items. Zero and negative amounts are dropped.
func (a *Accumulator) Add(label string, amount decimal.Decimal, explanation string) {
	amount = money.RoundCents(amount)
	if !amount.IsPositive() {
		return
	}
	a.additions = append(a.additions, domain.LineItem{
		Label:           label,
		Amount:          amount,
		RuleExplanation: explanation,
	})
	a.balance = a.balance.Add(amount)
}

// Deduct appends a deduction line item, stored with a negative amount.
// Zero and negative inputs are dropped.
func (a *Accumulator) Deduct(label string, amount decimal.Decimal, explanation string) {
	amount = money.RoundCents(amount)
	if !amount.IsPositive() {
		return
	}
	a.deductions = append(a.deductions, domain.LineItem{
		Label:           label,
		Amount:          amount.Neg(),
		RuleExplanation: explanation,
	})
	a.balance = a.balance.Sub(amount)
}

// Balance returns the folded total: additions minus deductions.
func (a *Accumulator) Balance() decimal.Decimal {
	return a.balance
}

// Additions returns the addition items in insertion order.
func (a *Accumulator) Additions() []domain.LineItem {
	return a.additions
}

// Deductions returns the deduction items in insertion order.
func (a *Accumulator) Deductions() []domain.LineItem {
	return a.deductions
}
