package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer/refund-calculator/internal/calculation"
	"github.com/tadbeer/refund-calculator/internal/domain"
)

func sampleStatement(t *testing.T) *domain.RefundStatement {
	t.Helper()
	delivered, err := time.Parse("2006-01-02", "2025-03-01")
	require.NoError(t, err)
	returned, err := time.Parse("2006-01-02", "2025-03-11")
	require.NoError(t, err)

	c := domain.RefundCase{
		Location:            domain.LocationInsideCountry,
		Nationality:         domain.NationalityPhilippines,
		ReasonForReturn:     domain.ReasonOther,
		Emirate:             domain.EmirateDubai,
		PriceInclVAT:        decimal.NewFromInt(10000),
		VATRatePercent:      decimal.NewFromInt(5),
		DeliveredDate:       &delivered,
		ReturnedDate:        &returned,
		OptionBSelected:     true,
		StandardTadbeerFees: decimal.NewFromInt(500),
		DocumentsReturned:   domain.DocumentChecklist{Phone: true, Passport: true, VisaCancellation: true},
	}
	result := calculation.NewRefundEngine().ComputeRefund(c)
	return &domain.RefundStatement{Case: c, Result: result}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"console", "console"},
		{"json", "json"},
		{"csv", "csv"},
		{"text", "console"},
		{"plain", "console"},
		{"json-pretty", "json"},
		{"csv-items", "csv"},
		{"  CONSOLE  ", "console"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "formatter for %q", tt.input)
		assert.Equal(t, tt.expected, f.Name(), "formatter for %q", tt.input)
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleStatement(t))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "REFUND STATEMENT")
	assert.Contains(t, text, "Tenure: 10 days")
	assert.Contains(t, text, "Option B fixed penalty (Dubai)")
	assert.Contains(t, text, "TOTAL REFUND:      AED 7750.00")
	assert.Contains(t, text, "Due date: 2025-03-25")
	assert.NotContains(t, text, "NO REFUND")
}

func TestConsoleFormatterNoRefund(t *testing.T) {
	st := sampleStatement(t)
	st.Case.Location = domain.LocationOutsideCountry
	st.Case.DirectHire = true
	st.Result = calculation.NewRefundEngine().ComputeRefund(st.Case)

	data, err := ConsoleFormatter{}.Format(st)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "NO REFUND")
	assert.Contains(t, text, "TOTAL REFUND:      AED 0.00")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleStatement(t))
	require.NoError(t, err)

	var decoded struct {
		Case   domain.RefundCase   `json:"case"`
		Result domain.RefundResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.LocationInsideCountry, decoded.Case.Location)
	assert.Equal(t, 10, decoded.Result.TenureDays)
	assert.True(t, decoded.Result.TotalRefund.Equal(decimal.NewFromFloat(7750)))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleStatement(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Type", "Label", "Amount", "Explanation"}, rows[0])

	var additions, deductions, totals int
	for _, row := range rows[1:] {
		switch row[0] {
		case "addition":
			additions++
		case "deduction":
			deductions++
		case "total":
			totals++
		}
	}
	assert.Equal(t, 1, additions)
	assert.Equal(t, 2, deductions) // Option B penalty and Tadbeer fees
	assert.Equal(t, 6, totals)
}
