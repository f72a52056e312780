// Package loan provides EMI and amortization schedule calculations.
package loan

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Input holds the parameters of a standard EMI calculation. AnnualRate is a
// percentage (12 means 12% per year).
type Input struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	TermMonths int     `json:"termMonths"`
}

// Result holds the outputs of an EMI calculation, rounded to two decimals.
type Result struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

// Validate checks the input ranges shared by all loan operations.
func (in Input) Validate() error {
	return validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("termMonths", in.TermMonths, 1, constants.MaxScheduleMonths),
	)
}

// MonthlyRate returns the periodic rate for the input's annual percentage rate.
func (in Input) MonthlyRate() float64 {
	return in.AnnualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Calculate computes the equated monthly installment using the standard
// amortization formula. A zero rate degenerates to dividing the principal
// evenly across the term.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	payment, err := monthlyPayment(in)
	if err != nil {
		return Result{}, err
	}

	total := payment * float64(in.TermMonths)
	return Result{
		EMI:           numeric.Round(payment),
		TotalPayment:  numeric.Round(total),
		TotalInterest: numeric.Round(total - in.Principal),
	}, nil
}

// monthlyPayment returns the unrounded periodic payment for a validated input.
func monthlyPayment(in Input) (float64, error) {
	periodicRate := in.MonthlyRate()
	if numeric.IsEffectivelyZero(periodicRate, 0) {
		return numeric.Divide(in.Principal, float64(in.TermMonths))
	}

	power, err := numeric.Power(1.00+periodicRate, float64(in.TermMonths))
	if err != nil {
		return 0, fmt.Errorf("amortization power term: %w", err)
	}
	discountFactor, err := numeric.Divide(power-1.00, power)
	if err != nil {
		return 0, fmt.Errorf("amortization discount factor: %w", err)
	}
	return numeric.Divide(in.Principal*periodicRate, discountFactor)
}

// InterestPortion returns the interest component of one monthly payment
// against the given remaining balance.
func InterestPortion(balance, annualRate float64) float64 {
	return balance * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
