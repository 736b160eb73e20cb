package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/money"
)

// ConsoleFormatter renders a refund statement as a plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(statement *domain.RefundStatement) ([]byte, error) {
	cs := statement.Case
	res := statement.Result

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REFUND STATEMENT")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintf(&buf, "Location: %s  Direct hire: %t  Nationality: %s  Reason: %s\n",
		cs.Location, cs.IsDirectHire(), cs.Nationality, cs.ReasonForReturn)
	fmt.Fprintf(&buf, "Price incl. VAT: %s (rate %s%%)\n",
		money.Format(cs.PriceInclVAT), cs.VATRatePercent.String())
	fmt.Fprintf(&buf, "Tenure: %d days\n", res.TenureDays)
	fmt.Fprintln(&buf)

	if res.IsNoRefundCase {
		fmt.Fprintln(&buf, "NO REFUND: delivered direct hire keeps the full contract value.")
	} else {
		fmt.Fprintf(&buf, "Base (excl. VAT):  %s\n", money.Format(res.BaseExVAT))
		fmt.Fprintf(&buf, "VAT collected:     %s\n", money.Format(res.VATCollected))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Line items:")
		for _, it := range res.Additions {
			fmt.Fprintf(&buf, "  + %-12s %s: %s\n", money.String(it.Amount), it.Label, it.RuleExplanation)
		}
		for _, it := range res.Deductions {
			fmt.Fprintf(&buf, "  - %-12s %s: %s\n", money.String(it.Amount.Abs()), it.Label, it.RuleExplanation)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Refund excl. VAT:  %s\n", money.Format(res.RefundExVAT))
		fmt.Fprintf(&buf, "VAT refundable:    %s\n", money.Format(res.VATRefundable))
	}

	fmt.Fprintf(&buf, "TOTAL REFUND:      %s\n", money.Format(res.TotalRefund))
	fmt.Fprintln(&buf)

	switch {
	case res.DueDate != nil:
		fmt.Fprintf(&buf, "Due date: %s\n", res.DueDate.Format("2006-01-02"))
	case len(res.PendingDocuments) > 0:
		fmt.Fprintf(&buf, "Blocked pending: %s\n", strings.Join(res.PendingDocuments, ", "))
	default:
		fmt.Fprintln(&buf, "Due date: not determined (no return date on file)")
	}

	return buf.Bytes(), nil
}
