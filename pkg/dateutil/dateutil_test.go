package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestWholeDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{"Same day", "2025-03-01", "2025-03-01", 0},
		{"Ten days", "2025-03-01", "2025-03-11", 10},
		{"Month boundary", "2025-03-01", "2025-04-01", 31},
		{"Reversed is negative", "2025-03-11", "2025-03-01", -10},
		{"Across a year boundary", "2025-12-30", "2026-01-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WholeDaysBetween(mustDate(t, tt.from), mustDate(t, tt.to))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWholeDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, WholeDaysBetween(from, to))
}

func TestAddDays(t *testing.T) {
	got := AddDays(mustDate(t, "2025-03-11"), 14)
	assert.Equal(t, "2025-03-25", got.Format("2006-01-02"))

	got = AddDays(mustDate(t, "2025-12-25"), 14)
	assert.Equal(t, "2026-01-08", got.Format("2006-01-02"))
}

func TestNextFilingCutoff(t *testing.T) {
	tests := []struct {
		name     string
		after    string
		expected string
	}{
		{"Mid quarter", "2025-03-01", "2025-05-29"},
		{"Just before a cutoff", "2025-05-28", "2025-05-29"},
		{"On the cutoff day rolls forward", "2025-05-29", "2025-08-29"},
		{"Non-leap February normalizes to March 1", "2025-01-15", "2025-03-01"},
		{"Leap year keeps February 29", "2024-01-15", "2024-02-29"},
		{"Past November rolls into next year", "2025-12-01", "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFilingCutoff(mustDate(t, tt.after))
			assert.Equal(t, tt.expected, got.Format("2006-01-02"))
		})
	}
}
