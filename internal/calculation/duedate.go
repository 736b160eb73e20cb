package calculation

import (
	"time"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/dateutil"
)

// Document names reported back to the caller while the refund is blocked.
const (
	PendingPhone            = "phone"
	PendingPassport         = "passport"
	PendingVisaCancellation = "visa cancellation"
	PendingAbscondReport    = "abscond report"
)

// refundDueAfterDays is how long the center has to pay out once every
// required document is back.
const refundDueAfterDays = 14

// DueDateResolution is either a concrete due date or the list of documents
// still outstanding, never both.
type DueDateResolution struct {
	DueDate *time.Time
	Pending []string
}

// ResolveDueDate gates the refund due date on the returned documents.
// Phone, passport and visa cancellation are always required; the abscond
// report only for runaway cases. The rule is the same on every financial
// branch, including the Medically Unfit override.
func ResolveDueDate(c *domain.RefundCase, endDate *time.Time) DueDateResolution {
	var pending []string
	if !c.DocumentsReturned.Phone {
		pending = append(pending, PendingPhone)
	}
	if !c.DocumentsReturned.Passport {
		pending = append(pending, PendingPassport)
	}
	if !c.DocumentsReturned.VisaCancellation {
		pending = append(pending, PendingVisaCancellation)
	}
	if c.ReasonForReturn == domain.ReasonRunaway && !c.AbscondReportFiled {
		pending = append(pending, PendingAbscondReport)
	}

	if len(pending) > 0 {
		return DueDateResolution{Pending: pending}
	}
	if endDate == nil {
		return DueDateResolution{}
	}
	due := dateutil.AddDays(*endDate, refundDueAfterDays)
	return DueDateResolution{DueDate: &due}
}
