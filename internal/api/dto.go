package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/internal/domain"
)

// CalculateRequest is the JSON body for a refund calculation. Dates use
// the YYYY-MM-DD form the wizard submits; every monetary field accepts a
// JSON number or string.
type CalculateRequest struct {
	Location          string `json:"location"`
	DirectHire        bool   `json:"direct_hire"`
	FailedToBring     bool   `json:"failed_to_bring"`
	CenterAtFault     bool   `json:"center_at_fault"`
	CancellationStage string `json:"cancellation_stage"`
	Nationality       string `json:"nationality"`
	ReasonForReturn   string `json:"reason_for_return"`
	Emirate           string `json:"emirate"`

	PriceInclVAT   decimal.Decimal `json:"price_incl_vat"`
	VATRatePercent decimal.Decimal `json:"vat_rate_percent"`

	CashAssistancePaid    decimal.Decimal `json:"cash_assistance_paid"`
	GovernmentVisaFeePaid decimal.Decimal `json:"government_visa_fee_paid"`
	MedicalVisaCost       decimal.Decimal `json:"medical_visa_cost"`
	UnpaidSalaryDays      int             `json:"unpaid_salary_days"`
	WorkerMonthlySalary   decimal.Decimal `json:"worker_monthly_salary"`

	DeliveredDate     *string `json:"delivered_date,omitempty"`
	ReturnedDate      *string `json:"returned_date,omitempty"`
	AbscondReportDate *string `json:"abscond_report_date,omitempty"`

	AbscondReportFiled bool                     `json:"abscond_report_filed"`
	DocumentsReturned  domain.DocumentChecklist `json:"documents_returned"`

	VisaAndVPACompletedByClient bool            `json:"visa_and_vpa_completed_by_client"`
	OptionBSelected             bool            `json:"option_b_selected"`
	StandardTadbeerFees         decimal.Decimal `json:"standard_tadbeer_fees"`

	AbscondClassification string `json:"abscond_classification,omitempty"`

	ManualDeduction *domain.ManualDeduction `json:"manual_deduction,omitempty"`
}

// ToCase converts the request to a domain case.
func (r *CalculateRequest) ToCase() (domain.RefundCase, error) {
	c := domain.RefundCase{
		Location:          domain.Location(r.Location),
		DirectHire:        r.DirectHire,
		FailedToBring:     r.FailedToBring,
		CenterAtFault:     r.CenterAtFault,
		CancellationStage: domain.CancellationStage(r.CancellationStage),
		Nationality:       domain.Nationality(r.Nationality),
		ReasonForReturn:   domain.ReturnReason(r.ReasonForReturn),
		Emirate:           domain.Emirate(r.Emirate),

		PriceInclVAT:   r.PriceInclVAT,
		VATRatePercent: r.VATRatePercent,

		CashAssistancePaid:    r.CashAssistancePaid,
		GovernmentVisaFeePaid: r.GovernmentVisaFeePaid,
		MedicalVisaCost:       r.MedicalVisaCost,
		UnpaidSalaryDays:      r.UnpaidSalaryDays,
		WorkerMonthlySalary:   r.WorkerMonthlySalary,

		AbscondReportFiled: r.AbscondReportFiled,
		DocumentsReturned:  r.DocumentsReturned,

		VisaAndVPACompletedByClient: r.VisaAndVPACompletedByClient,
		OptionBSelected:             r.OptionBSelected,
		StandardTadbeerFees:         r.StandardTadbeerFees,

		AbscondClassification: r.AbscondClassification,
	}

	var err error
	if c.DeliveredDate, err = parseDate("delivered_date", r.DeliveredDate); err != nil {
		return c, err
	}
	if c.ReturnedDate, err = parseDate("returned_date", r.ReturnedDate); err != nil {
		return c, err
	}
	if c.AbscondReportDate, err = parseDate("abscond_report_date", r.AbscondReportDate); err != nil {
		return c, err
	}
	return c, nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q (use YYYY-MM-DD)", field, *value)
	}
	return &t, nil
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
