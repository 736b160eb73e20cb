package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/money"
)

// CSVFormatter exports the audit trail one row per line item, followed by
// the statement totals.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(statement *domain.RefundStatement) ([]byte, error) {
	res := statement.Result

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Type", "Label", "Amount", "Explanation"}); err != nil {
		return nil, err
	}
	for _, it := range res.Additions {
		if err := w.Write([]string{"addition", it.Label, money.String(it.Amount), it.RuleExplanation}); err != nil {
			return nil, err
		}
	}
	for _, it := range res.Deductions {
		if err := w.Write([]string{"deduction", it.Label, money.String(it.Amount), it.RuleExplanation}); err != nil {
			return nil, err
		}
	}

	totals := [][]string{
		{"total", "Base (excl. VAT)", money.String(res.BaseExVAT), ""},
		{"total", "VAT collected", money.String(res.VATCollected), ""},
		{"total", "VAT refundable", money.String(res.VATRefundable), ""},
		{"total", "Refund (excl. VAT)", money.String(res.RefundExVAT), ""},
		{"total", "Total refund", money.String(res.TotalRefund), ""},
		{"total", "No refund case", strconv.FormatBool(res.IsNoRefundCase), ""},
	}
	for _, row := range totals {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
