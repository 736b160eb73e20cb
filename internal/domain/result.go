package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one signed entry in the refund audit trail. Additions carry
// positive amounts, deductions negative ones, so folding the items always
// reproduces the refund balance.
type LineItem struct {
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	RuleExplanation string          `json:"rule_explanation"`
}

// RefundResult is the immutable outcome of one refund determination.
//
// Invariants:
//   - VATCollected = PriceInclVAT - BaseExVAT (2-decimal rounding).
//   - RefundExVAT = sum(Additions) + sum(Deductions); BaseExVAT is always
//     the first addition so the trail is self-contained.
//   - TotalRefund = max(0, RefundExVAT) + VATRefundable.
//   - A no-refund case carries zero line items; every other case carries at
//     least the base price addition.
//   - DueDate is set only when PendingDocuments is empty.
type RefundResult struct {
	BaseExVAT     decimal.Decimal `json:"base_ex_vat"`
	VATCollected  decimal.Decimal `json:"vat_collected"`
	VATRefundable decimal.Decimal `json:"vat_refundable"`
	RefundExVAT   decimal.Decimal `json:"refund_ex_vat"`
	TotalRefund   decimal.Decimal `json:"total_refund"`

	Additions  []LineItem `json:"additions"`
	Deductions []LineItem `json:"deductions"`

	TenureDays int `json:"tenure_days"`

	DueDate          *time.Time `json:"due_date,omitempty"`
	PendingDocuments []string   `json:"pending_documents,omitempty"`

	IsNoRefundCase bool `json:"is_no_refund_case"`
}

// RefundStatement pairs a case with its computed result for rendering and
// hand-off to the persistence collaborator.
type RefundStatement struct {
	Case   RefundCase   `json:"case"`
	Result RefundResult `json:"result"`
}
