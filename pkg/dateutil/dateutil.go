package dateutil

import (
	"time"
)

// filingCutoffMonths are the months carrying a quarterly VAT filing cutoff.
// Each cutoff falls on the 29th; February's lands on March 1 in non-leap
// years through date normalization, matching the agency's filing calendar.
var filingCutoffMonths = []time.Month{time.February, time.May, time.August, time.November}

// WholeDaysBetween returns the number of whole days from one date to
// another. The result is negative when to precedes from; callers decide
// whether to clamp.
func WholeDaysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}

// AddDays adds a number of calendar days to a date.
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// NextFilingCutoff returns the first quarterly VAT filing cutoff strictly
// after the given date, rolling into the following year when all of the
// year's cutoffs have passed.
func NextFilingCutoff(after time.Time) time.Time {
	for _, m := range filingCutoffMonths {
		cutoff := time.Date(after.Year(), m, 29, 0, 0, 0, 0, after.Location())
		if cutoff.After(after) {
			return cutoff
		}
	}
	return time.Date(after.Year()+1, time.February, 29, 0, 0, 0, 0, after.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
