package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location indicates where the worker was recruited from.
type Location string

const (
	LocationInsideCountry  Location = "inside_country"
	LocationOutsideCountry Location = "outside_country"
)

// Valid reports whether the location is a known value.
func (l Location) Valid() bool {
	return l == LocationInsideCountry || l == LocationOutsideCountry
}

// CancellationStage records how far the candidate's government paperwork
// had progressed before the placement was cancelled.
type CancellationStage string

const (
	StageNone             CancellationStage = "none"
	StageOECIssued        CancellationStage = "oec_issued"
	StageContractAttested CancellationStage = "contract_attested"
	StageMedicalDone      CancellationStage = "medical_done"
)

// Valid reports whether the stage is a known value.
func (s CancellationStage) Valid() bool {
	switch s {
	case StageNone, StageOECIssued, StageContractAttested, StageMedicalDone:
		return true
	}
	return false
}

// Nationality is the worker's nationality. Only Philippines and Indonesia
// carry stage-based cancellation penalties; the rest are listed because the
// recruitment pipeline distinguishes them elsewhere.
type Nationality string

const (
	NationalityPhilippines Nationality = "philippines"
	NationalityIndonesia   Nationality = "indonesia"
	NationalityEthiopia    Nationality = "ethiopia"
	NationalityUganda      Nationality = "uganda"
	NationalityKenya       Nationality = "kenya"
	NationalityMyanmar     Nationality = "myanmar"
	NationalityIndia       Nationality = "india"
	NationalityOther       Nationality = "other"
)

// Valid reports whether the nationality is a known value.
func (n Nationality) Valid() bool {
	switch n {
	case NationalityPhilippines, NationalityIndonesia, NationalityEthiopia,
		NationalityUganda, NationalityKenya, NationalityMyanmar,
		NationalityIndia, NationalityOther:
		return true
	}
	return false
}

// ReturnReason is why the worker was returned. MedicallyUnfit overrides
// every other calculation branch; Runaway switches the tenure end date to
// the abscond report and adds the abscond report to the required documents.
type ReturnReason string

const (
	ReasonMedicallyUnfit ReturnReason = "medically_unfit"
	ReasonRunaway        ReturnReason = "runaway"
	ReasonOther          ReturnReason = "other"
)

// Valid reports whether the reason is a known value.
func (r ReturnReason) Valid() bool {
	return r == ReasonMedicallyUnfit || r == ReasonRunaway || r == ReasonOther
}

// Emirate is the emirate of the sponsoring client. It only affects the
// Option B fixed penalty amount.
type Emirate string

const (
	EmirateDubai        Emirate = "dubai"
	EmirateAbuDhabi     Emirate = "abu_dhabi"
	EmirateSharjah      Emirate = "sharjah"
	EmirateAjman        Emirate = "ajman"
	EmirateUmmAlQuwain  Emirate = "umm_al_quwain"
	EmirateRasAlKhaimah Emirate = "ras_al_khaimah"
	EmirateFujairah     Emirate = "fujairah"
)

// Valid reports whether the emirate is a known value.
func (e Emirate) Valid() bool {
	switch e {
	case EmirateDubai, EmirateAbuDhabi, EmirateSharjah, EmirateAjman,
		EmirateUmmAlQuwain, EmirateRasAlKhaimah, EmirateFujairah:
		return true
	}
	return false
}

// DocumentChecklist tracks which of the client's documents have been
// returned to the center. All three gate the refund due date.
type DocumentChecklist struct {
	Phone            bool `yaml:"phone" json:"phone"`
	Passport         bool `yaml:"passport" json:"passport"`
	VisaCancellation bool `yaml:"visa_cancellation" json:"visa_cancellation"`
}

// ManualDeduction is a free-form deduction entered by the user after the
// engine has run. It is never computed by the engine itself.
type ManualDeduction struct {
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Description string          `yaml:"description" json:"description"`
}

// RefundCase carries every fact about a cancelled placement needed to
// determine the refund. It is built once per session by the caller and is
// immutable for the duration of one calculation; missing optional values
// are treated as zero/false/absent, never rejected.
type RefundCase struct {
	Location          Location          `yaml:"location" json:"location"`
	DirectHire        bool              `yaml:"direct_hire" json:"direct_hire"`
	FailedToBring     bool              `yaml:"failed_to_bring" json:"failed_to_bring"`
	CenterAtFault     bool              `yaml:"center_at_fault" json:"center_at_fault"`
	CancellationStage CancellationStage `yaml:"cancellation_stage" json:"cancellation_stage"`
	Nationality       Nationality       `yaml:"nationality" json:"nationality"`
	ReasonForReturn   ReturnReason      `yaml:"reason_for_return" json:"reason_for_return"`
	Emirate           Emirate           `yaml:"emirate" json:"emirate"`

	PriceInclVAT   decimal.Decimal `yaml:"price_incl_vat" json:"price_incl_vat"`
	VATRatePercent decimal.Decimal `yaml:"vat_rate_percent" json:"vat_rate_percent"`

	CashAssistancePaid    decimal.Decimal `yaml:"cash_assistance_paid" json:"cash_assistance_paid"`
	GovernmentVisaFeePaid decimal.Decimal `yaml:"government_visa_fee_paid" json:"government_visa_fee_paid"`
	MedicalVisaCost       decimal.Decimal `yaml:"medical_visa_cost" json:"medical_visa_cost"`
	UnpaidSalaryDays      int             `yaml:"unpaid_salary_days" json:"unpaid_salary_days"`
	WorkerMonthlySalary   decimal.Decimal `yaml:"worker_monthly_salary" json:"worker_monthly_salary"`

	DeliveredDate     *time.Time `yaml:"delivered_date,omitempty" json:"delivered_date,omitempty"`
	ReturnedDate      *time.Time `yaml:"returned_date,omitempty" json:"returned_date,omitempty"`
	AbscondReportDate *time.Time `yaml:"abscond_report_date,omitempty" json:"abscond_report_date,omitempty"`

	AbscondReportFiled bool              `yaml:"abscond_report_filed" json:"abscond_report_filed"`
	DocumentsReturned  DocumentChecklist `yaml:"documents_returned" json:"documents_returned"`

	VisaAndVPACompletedByClient bool            `yaml:"visa_and_vpa_completed_by_client" json:"visa_and_vpa_completed_by_client"`
	OptionBSelected             bool            `yaml:"option_b_selected" json:"option_b_selected"`
	StandardTadbeerFees         decimal.Decimal `yaml:"standard_tadbeer_fees" json:"standard_tadbeer_fees"`

	// AbscondClassification is a free-text classification (Non-Insured /
	// Insured / Agent-Covered) recorded for abscond cases. It travels with
	// the case for the persistence collaborator; the engine never reads it.
	AbscondClassification string `yaml:"abscond_classification,omitempty" json:"abscond_classification,omitempty"`
}

// IsDirectHire reports the effective direct-hire flag. Direct hire is only
// possible for outside-country recruitment; the flag is forced false for
// inside-country cases no matter what the form submitted.
func (c *RefundCase) IsDirectHire() bool {
	return c.DirectHire && c.Location == LocationOutsideCountry
}
