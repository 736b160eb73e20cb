package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/dateutil"
)

// VATRefundable decides how much of the collected VAT comes back to the
// client. VAT is returned in full when no delivery ever happened (nothing
// was filed for the sale) or when the worker came back before the quarterly
// filing cutoff following the delivery; once that filing has passed the VAT
// is gone. The Medically Unfit override bypasses this rule entirely.
func VATRefundable(c *domain.RefundCase, endDate *time.Time, vatAmount decimal.Decimal) decimal.Decimal {
	if c.DeliveredDate == nil {
		return vatAmount
	}
	if endDate == nil {
		return decimal.Zero
	}
	cutoff := dateutil.NextFilingCutoff(*c.DeliveredDate)
	if endDate.Before(cutoff) {
		return vatAmount
	}
	return decimal.Zero
}
