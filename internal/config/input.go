package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tadbeer/refund-calculator/internal/domain"
)

// CaseFile is the on-disk form of one refund calculation: the case itself
// plus the optional user-entered deduction applied after the engine runs.
type CaseFile struct {
	Case            domain.RefundCase       `yaml:"case"`
	ManualDeduction *domain.ManualDeduction `yaml:"manual_deduction,omitempty"`
}

// InputParser handles parsing of refund case files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case file from YAML.
func (ip *InputParser) LoadFromFile(filename string) (*CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateCase(&cf.Case); err != nil {
		return nil, fmt.Errorf("case validation failed: %w", err)
	}
	if cf.ManualDeduction != nil && cf.ManualDeduction.Amount.IsNegative() {
		return nil, fmt.Errorf("manual deduction amount cannot be negative")
	}

	return &cf, nil
}

// ValidateCase checks the business fields a form must supply before the
// engine runs. The engine itself never validates; this is the boundary
// where bad input is rejected.
func (ip *InputParser) ValidateCase(c *domain.RefundCase) error {
	if !c.Location.Valid() {
		return fmt.Errorf("location must be %q or %q, got %q",
			domain.LocationInsideCountry, domain.LocationOutsideCountry, c.Location)
	}
	if c.CancellationStage != "" && !c.CancellationStage.Valid() {
		return fmt.Errorf("unknown cancellation stage %q", c.CancellationStage)
	}
	if c.Nationality != "" && !c.Nationality.Valid() {
		return fmt.Errorf("unknown nationality %q", c.Nationality)
	}
	if c.ReasonForReturn != "" && !c.ReasonForReturn.Valid() {
		return fmt.Errorf("unknown reason for return %q", c.ReasonForReturn)
	}
	if c.Emirate != "" && !c.Emirate.Valid() {
		return fmt.Errorf("unknown emirate %q", c.Emirate)
	}
	if c.PriceInclVAT.IsNegative() {
		return fmt.Errorf("price including VAT cannot be negative")
	}
	if c.VATRatePercent.IsNegative() {
		return fmt.Errorf("VAT rate cannot be negative")
	}
	if c.VATRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("VAT rate cannot exceed 100%%")
	}
	for _, amt := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"cash_assistance_paid", c.CashAssistancePaid},
		{"government_visa_fee_paid", c.GovernmentVisaFeePaid},
		{"medical_visa_cost", c.MedicalVisaCost},
		{"worker_monthly_salary", c.WorkerMonthlySalary},
		{"standard_tadbeer_fees", c.StandardTadbeerFees},
	} {
		if amt.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", amt.name)
		}
	}
	if c.UnpaidSalaryDays < 0 {
		return fmt.Errorf("unpaid_salary_days cannot be negative")
	}
	// A direct-hire flag on an inside-country case is tolerated here: the
	// engine forces it off, matching what the wizard does on screen.
	return nil
}

// CreateExampleCase creates a starter case file for the example command.
func (ip *InputParser) CreateExampleCase() *CaseFile {
	delivered, _ := time.Parse("2006-01-02", "2025-03-01")
	returned, _ := time.Parse("2006-01-02", "2025-03-11")

	return &CaseFile{
		Case: domain.RefundCase{
			Location:          domain.LocationInsideCountry,
			CancellationStage: domain.StageNone,
			Nationality:       domain.NationalityPhilippines,
			ReasonForReturn:   domain.ReasonOther,
			Emirate:           domain.EmirateDubai,

			PriceInclVAT:   decimal.NewFromInt(10000),
			VATRatePercent: decimal.NewFromInt(5),

			WorkerMonthlySalary: decimal.NewFromInt(1500),
			UnpaidSalaryDays:    0,

			DeliveredDate: &delivered,
			ReturnedDate:  &returned,

			DocumentsReturned: domain.DocumentChecklist{
				Phone:            true,
				Passport:         true,
				VisaCancellation: true,
			},

			OptionBSelected:     true,
			StandardTadbeerFees: decimal.NewFromInt(500),
		},
	}
}
