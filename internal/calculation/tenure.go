package calculation

import (
	"time"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/dateutil"
)

// Tenure is the worker's elapsed time with the client. RawDays keeps the
// uncorrected difference (it can be negative on inconsistent form input and
// the VAT filing check wants the real end date); Days is clamped at zero
// for every downstream tier lookup.
type Tenure struct {
	EndDate *time.Time
	RawDays int
	Days    int
}

// ComputeTenure determines the reference end date and elapsed whole days
// for a case. A runaway case with a filed abscond report date ends on that
// date; every other case ends on the returned date.
func ComputeTenure(c *domain.RefundCase) Tenure {
	end := c.ReturnedDate
	if c.ReasonForReturn == domain.ReasonRunaway && c.AbscondReportDate != nil {
		end = c.AbscondReportDate
	}

	t := Tenure{EndDate: end}
	if c.DeliveredDate == nil || end == nil {
		return t
	}

	t.RawDays = dateutil.WholeDaysBetween(*c.DeliveredDate, *end)
	t.Days = t.RawDays
	if t.Days < 0 {
		t.Days = 0
	}
	return t
}
