// Package interest provides simple and compound interest calculations.
package interest

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ErrTooManyPeriods indicates the compounding period count exceeds the
// supported cap, which would risk float overflow in the growth term.
var ErrTooManyPeriods = errors.New("interest: compounding periods exceed the supported cap")

// Frequency names a compounding cadence.
type Frequency string

// Supported compounding frequencies.
const (
	Yearly     Frequency = "yearly"
	HalfYearly Frequency = "half-yearly"
	Quarterly  Frequency = "quarterly"
	Monthly    Frequency = "monthly"
	Daily      Frequency = "daily"
)

// PeriodsPerYear returns the number of compounding periods per year for the
// frequency. An empty frequency defaults to yearly.
func (f Frequency) PeriodsPerYear() (int, error) {
	switch f {
	case Yearly, "":
		return 1, nil
	case HalfYearly:
		return 2, nil
	case Quarterly:
		return 4, nil
	case Monthly:
		return constants.MonthsPerYear, nil
	case Daily:
		return constants.DaysPerYear, nil
	default:
		return 0, validation.NewFieldError("frequency",
			"must be one of %s, %s, %s, %s, %s, got %q", Yearly, HalfYearly, Quarterly, Monthly, Daily, f)
	}
}

// SimpleInput holds the parameters of a simple interest calculation.
// AnnualRate is a percentage; Years may be fractional.
type SimpleInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	Years      float64 `json:"years"`
}

// SimpleResult holds the outputs of a simple interest calculation, rounded to
// two decimals.
type SimpleResult struct {
	Interest float64 `json:"interest"`
	Amount   float64 `json:"amount"`
}

// Simple computes flat interest P*R*T/100 with no compounding.
func Simple(in SimpleInput) (SimpleResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.PositiveMax("years", in.Years, constants.MaxTenureYears),
	); err != nil {
		return SimpleResult{}, err
	}

	interest := in.Principal * in.AnnualRate * in.Years / constants.PercentageMultiplier
	return SimpleResult{
		Interest: numeric.Round(interest),
		Amount:   numeric.Round(in.Principal + interest),
	}, nil
}

// CompoundInput holds the parameters of a compound interest calculation.
type CompoundInput struct {
	Principal  float64   `json:"principal"`
	AnnualRate float64   `json:"annualRate"`
	Years      float64   `json:"years"`
	Frequency  Frequency `json:"frequency,omitempty"`
}

// CompoundResult holds the outputs of a compound interest calculation, rounded
// to two decimals.
type CompoundResult struct {
	Interest float64 `json:"interest"`
	Amount   float64 `json:"amount"`
	Periods  int     `json:"periods"`
}

// Compound computes maturity P*(1+r/m)^(m*t) for the compounding frequency.
// The total period count is capped; exceeding it returns ErrTooManyPeriods
// rather than a silently clamped result.
func Compound(in CompoundInput) (CompoundResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.PositiveMax("years", in.Years, constants.MaxTenureYears),
	); err != nil {
		return CompoundResult{}, err
	}

	periodsPerYear, err := in.Frequency.PeriodsPerYear()
	if err != nil {
		return CompoundResult{}, err
	}

	periods := float64(periodsPerYear) * in.Years
	if periods > constants.MaxCompoundingPeriods {
		return CompoundResult{}, fmt.Errorf("%w: %.0f periods, cap %d",
			ErrTooManyPeriods, periods, constants.MaxCompoundingPeriods)
	}

	periodRate := in.AnnualRate / constants.PercentageMultiplier / float64(periodsPerYear)
	amount := in.Principal
	if !numeric.IsEffectivelyZero(periodRate, 0) {
		growth, err := numeric.Power(1+periodRate, periods)
		if err != nil {
			return CompoundResult{}, fmt.Errorf("compound growth term: %w", err)
		}
		amount, err = numeric.Multiply(in.Principal, growth)
		if err != nil {
			return CompoundResult{}, fmt.Errorf("compound maturity: %w", err)
		}
	}

	return CompoundResult{
		Interest: numeric.Round(amount - in.Principal),
		Amount:   numeric.Round(amount),
		Periods:  int(periods),
	}, nil
}
