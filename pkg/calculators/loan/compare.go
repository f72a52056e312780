package loan

import (
	"errors"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ErrNoAffordableTerm indicates no term in the requested range keeps the EMI
// within the payment budget.
var ErrNoAffordableTerm = errors.New("loan: no term in the range meets the payment budget")

// TermComparisonInput bounds a sweep of loan terms under a payment budget.
type TermComparisonInput struct {
	Principal         float64 `json:"principal"`
	AnnualRate        float64 `json:"annualRate"`
	MinTermMonths     int     `json:"minTermMonths"`
	MaxTermMonths     int     `json:"maxTermMonths"`
	MaxMonthlyPayment float64 `json:"maxMonthlyPayment"`
}

// TermOption is one evaluated term in a comparison sweep.
type TermOption struct {
	TermMonths    int     `json:"termMonths"`
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
	Affordable    bool    `json:"affordable"`
}

// TermComparison reports every evaluated term plus the recommended one: the
// affordable term with the lowest total interest.
type TermComparison struct {
	RecommendedTerm int          `json:"recommendedTerm"`
	Options         []TermOption `json:"options"`
}

// Validate checks the sweep bounds. The range is capped so a single request
// cannot ask for an unbounded amount of work.
func (in TermComparisonInput) Validate() error {
	if err := validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("minTermMonths", in.MinTermMonths, 1, constants.MaxScheduleMonths),
		validation.IntInRange("maxTermMonths", in.MaxTermMonths, 1, constants.MaxScheduleMonths),
		validation.Positive("maxMonthlyPayment", in.MaxMonthlyPayment),
	); err != nil {
		return err
	}
	if in.MinTermMonths > in.MaxTermMonths {
		return validation.NewFieldError("minTermMonths", "must not exceed maxTermMonths (%d > %d)",
			in.MinTermMonths, in.MaxTermMonths)
	}
	if in.MaxTermMonths-in.MinTermMonths > constants.MaxTermRangeMonths {
		return validation.NewFieldError("maxTermMonths", "term range must not exceed %d months",
			constants.MaxTermRangeMonths)
	}
	return nil
}

// CompareTerm evaluates the EMI and total cost of every term in the range and
// recommends the cheapest term whose EMI fits the payment budget.
func CompareTerm(in TermComparisonInput) (TermComparison, error) {
	if err := in.Validate(); err != nil {
		return TermComparison{}, err
	}

	comparison := TermComparison{}
	best := -1
	for term := in.MinTermMonths; term <= in.MaxTermMonths; term++ {
		result, err := Calculate(Input{
			Principal:  in.Principal,
			AnnualRate: in.AnnualRate,
			TermMonths: term,
		})
		if err != nil {
			return TermComparison{}, err
		}

		option := TermOption{
			TermMonths:    term,
			EMI:           result.EMI,
			TotalPayment:  result.TotalPayment,
			TotalInterest: result.TotalInterest,
			Affordable:    result.EMI <= in.MaxMonthlyPayment,
		}
		comparison.Options = append(comparison.Options, option)

		if option.Affordable && (best == -1 || option.TotalInterest < comparison.Options[best].TotalInterest) {
			best = len(comparison.Options) - 1
		}
	}

	if best == -1 {
		return TermComparison{}, ErrNoAffordableTerm
	}
	comparison.RecommendedTerm = comparison.Options[best].TermMonths
	return comparison, nil
}
