package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tadbeer/refund-calculator/internal/domain"
	"github.com/tadbeer/refund-calculator/pkg/money"
)

// casePath is the exhaustive classification of a refund case. Every
// combination of location, direct-hire and failed-to-bring flags maps to
// exactly one path; the Medically Unfit override is resolved before any of
// them and short-circuits the rest.
type casePath int

const (
	pathMedicallyUnfit casePath = iota
	pathOutsideDirectDelivered
	pathOutsideDirectFailedToBring
	pathOutsideDirectCancelled
	pathOutsideAgency
	pathInsideCountry
)

func (p casePath) String() string {
	switch p {
	case pathMedicallyUnfit:
		return "medically-unfit override"
	case pathOutsideDirectDelivered:
		return "outside/direct-hire/delivered (no refund)"
	case pathOutsideDirectFailedToBring:
		return "outside/direct-hire/failed-to-bring"
	case pathOutsideDirectCancelled:
		return "outside/direct-hire/cancelled before delivery"
	case pathOutsideAgency:
		return "outside/agency"
	case pathInsideCountry:
		return "inside country"
	}
	return "unknown"
}

// RefundEngine computes refund determinations. It is a pure calculator:
// no I/O, no shared mutable state, safe for concurrent use from any number
// of callers.
type RefundEngine struct {
	Logger Logger
}

// NewRefundEngine creates a refund engine with a no-op logger.
func NewRefundEngine() *RefundEngine {
	return &RefundEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *RefundEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputeRefund determines the refund for one case. It never fails: every
// flag combination resolves to exactly one calculation path and missing
// optional values are treated as zero or absent.
func (e *RefundEngine) ComputeRefund(c domain.RefundCase) domain.RefundResult {
	split := SplitVAT(c.PriceInclVAT, c.VATRatePercent)
	tenure := ComputeTenure(&c)
	path := classify(&c)
	e.Logger.Debugf("case classified as %s (tenure %d days, raw %d)", path, tenure.Days, tenure.RawDays)

	due := ResolveDueDate(&c, tenure.EndDate)

	result := domain.RefundResult{
		BaseExVAT:        split.BaseExVAT,
		VATCollected:     split.VATAmount,
		TenureDays:       tenure.Days,
		DueDate:          due.DueDate,
		PendingDocuments: due.Pending,
	}

	if path == pathOutsideDirectDelivered {
		// A delivered direct hire keeps nothing: no line items, no VAT back.
		result.IsNoRefundCase = true
		result.VATRefundable = decimal.Zero
		result.RefundExVAT = decimal.Zero
		result.TotalRefund = decimal.Zero
		return result
	}

	acc := &Accumulator{}
	acc.Add("Contract value (excl. VAT)", split.BaseExVAT,
		"Package price with VAT separated out; the starting point of every refund")

	switch path {
	case pathMedicallyUnfit:
		e.buildMedicallyUnfit(&c, acc)
	case pathOutsideDirectFailedToBring:
		e.buildOutsideDirectFailedToBring(&c, acc)
	case pathOutsideDirectCancelled:
		e.buildOutsideDirectCancelled(&c, acc)
	case pathOutsideAgency:
		e.buildOutsideAgency(&c, acc)
	case pathInsideCountry:
		e.buildInsideCountry(&c, acc, split.BaseExVAT, tenure.Days)
	}

	if masterSalaryDeductionApplies(&c, path) {
		applyUnpaidSalaryDeduction(&c, acc)
	}

	if path == pathMedicallyUnfit {
		// Medically unfit always returns the VAT in full, independent of
		// the filing cutoff.
		result.VATRefundable = split.VATAmount
	} else {
		result.VATRefundable = VATRefundable(&c, tenure.EndDate, split.VATAmount)
	}

	result.Additions = acc.Additions()
	result.Deductions = acc.Deductions()
	result.RefundExVAT = money.RoundCents(acc.Balance())
	result.TotalRefund = money.NonNegative(result.RefundExVAT).Add(result.VATRefundable)
	return result
}

// classify routes a case to its single calculation path. The medically
// unfit override is checked first; inside-country cases ignore the
// direct-hire flag entirely.
func classify(c *domain.RefundCase) casePath {
	if c.ReasonForReturn == domain.ReasonMedicallyUnfit {
		return pathMedicallyUnfit
	}
	if c.Location == domain.LocationInsideCountry {
		return pathInsideCountry
	}
	if !c.IsDirectHire() {
		return pathOutsideAgency
	}
	switch {
	case c.FailedToBring:
		return pathOutsideDirectFailedToBring
	case c.DeliveredDate != nil:
		return pathOutsideDirectDelivered
	default:
		return pathOutsideDirectCancelled
	}
}

// buildMedicallyUnfit refunds the full base plus the medical visa cost.
// No other deductions apply on this path.
func (e *RefundEngine) buildMedicallyUnfit(c *domain.RefundCase, acc *Accumulator) {
	acc.Add("Medical visa cost", c.MedicalVisaCost,
		"Worker declared medically unfit; the medical visa cost is reimbursed on top of the full price")
}

// buildOutsideDirectFailedToBring is the full-refund path for a direct
// hire the center failed to bring into the country.
func (e *RefundEngine) buildOutsideDirectFailedToBring(c *domain.RefundCase, acc *Accumulator) {
	acc.Add("Government visa fee reimbursement", c.GovernmentVisaFeePaid,
		"Center failed to bring the worker; the government visa fee paid by the client is returned")
	acc.Deduct("Cash assistance paid to worker", c.CashAssistancePaid,
		"Cash assistance already handed to the worker is recovered from the refund")
}

// buildOutsideDirectCancelled handles a direct hire cancelled before
// delivery: the nationality/stage penalty and any cash assistance come off
// the base price.
func (e *RefundEngine) buildOutsideDirectCancelled(c *domain.RefundCase, acc *Accumulator) {
	applyStageDeduction(c, acc)
	acc.Deduct("Cash assistance paid to worker", c.CashAssistancePaid,
		"Cash assistance already handed to the worker is recovered from the refund")
}

// buildOutsideAgency handles the standard outside-country supply chain.
// When the center is at fault for a failed delivery the government visa
// fee is refunded instead of charging the stage penalty.
func (e *RefundEngine) buildOutsideAgency(c *domain.RefundCase, acc *Accumulator) {
	if c.FailedToBring && c.CenterAtFault {
		acc.Add("Government visa fee reimbursement", c.GovernmentVisaFeePaid,
			"Center at fault for failed delivery; the government visa fee paid by the client is returned")
		return
	}
	applyStageDeduction(c, acc)
}

// buildInsideCountry applies the tenure-tier deduction for an
// inside-country return.
func (e *RefundEngine) buildInsideCountry(c *domain.RefundCase, acc *Accumulator, baseExVAT decimal.Decimal, days int) {
	switch {
	case days >= 30:
		acc.Deduct(dayCountLabel("Monthly package proration", days),
			MonthlyProrationDeduction(baseExVAT, days),
			"Stay of 30 days or more; the package is prorated over its 24-month amortization")
	case days >= 5:
		switch {
		case c.VisaAndVPACompletedByClient:
			// Client completed visa and VPA: nothing beyond the master
			// unpaid-salary deduction.
		case c.OptionBSelected:
			acc.Deduct(optionBLabel(c.Emirate), OptionBPenalty(c.Emirate),
				"Option B selected in place of visa/VPA completion; fixed penalty per the client's emirate")
			acc.Deduct("Standard Tadbeer fees", c.StandardTadbeerFees,
				"Standard Tadbeer processing fees are retained alongside the Option B penalty")
		default:
			acc.Deduct(dayCountLabel("Daily contract charges", days), DailyContractCharge(days),
				"Neither visa/VPA completion nor Option B; tiered daily charges apply")
		}
	default:
		acc.Deduct(dayCountLabel("Daily contract charges", days), DailyContractCharge(days),
			"Stay under 5 days; tiered daily charges apply")
	}
}

// masterSalaryDeductionApplies excludes the branches where the center, not
// the client, bears the worker's unpaid salary: failed outside deliveries,
// the no-refund case and the medically unfit override.
func masterSalaryDeductionApplies(c *domain.RefundCase, path casePath) bool {
	switch path {
	case pathMedicallyUnfit, pathOutsideDirectDelivered:
		return false
	}
	return !(c.Location == domain.LocationOutsideCountry && c.FailedToBring)
}

// applyUnpaidSalaryDeduction subtracts the worker's unpaid salary, prorated
// per day at a 30th of the monthly salary. Applied after every
// branch-specific item so the audit trail keeps base-price items first.
func applyUnpaidSalaryDeduction(c *domain.RefundCase, acc *Accumulator) {
	if c.UnpaidSalaryDays <= 0 || !c.WorkerMonthlySalary.IsPositive() {
		return
	}
	amount := c.WorkerMonthlySalary.Div(daysPerMonth).
		Mul(decimal.NewFromInt(int64(c.UnpaidSalaryDays)))
	acc.Deduct(dayCountLabel("Unpaid worker salary", c.UnpaidSalaryDays), amount,
		"Salary owed to the worker is settled out of the client's refund")
}

func dayCountLabel(label string, days int) string {
	return fmt.Sprintf("%s (%d days)", label, days)
}

func optionBLabel(e domain.Emirate) string {
	if e == domain.EmirateDubai {
		return "Option B fixed penalty (Dubai)"
	}
	return "Option B fixed penalty"
}

func applyStageDeduction(c *domain.RefundCase, acc *Accumulator) {
	acc.Deduct("Cancellation stage penalty", StageDeduction(c.Nationality, c.CancellationStage),
		"Nationality/stage penalty for paperwork already progressed at cancellation")
}
