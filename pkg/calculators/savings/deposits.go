package savings

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/calculators/interest"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// FixedDepositInput holds the parameters of a fixed deposit. Frequency
// defaults to quarterly, the prevailing bank convention.
type FixedDepositInput struct {
	Principal  float64            `json:"principal"`
	AnnualRate float64            `json:"annualRate"`
	TermMonths int                `json:"termMonths"`
	Frequency  interest.Frequency `json:"frequency,omitempty"`
}

// FixedDeposit computes the maturity of a lumpsum deposit compounded at the
// given frequency over a term in months. Partial compounding periods accrue
// pro rata through a fractional exponent.
func FixedDeposit(in FixedDepositInput) (Result, error) {
	if err := validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("termMonths", in.TermMonths, 1, constants.MaxScheduleMonths),
	); err != nil {
		return Result{}, err
	}

	frequency := in.Frequency
	if frequency == "" {
		frequency = interest.Quarterly
	}
	periodsPerYear, err := frequency.PeriodsPerYear()
	if err != nil {
		return Result{}, err
	}

	years := float64(in.TermMonths) / constants.MonthsPerYear
	periods := float64(periodsPerYear) * years
	if periods > constants.MaxCompoundingPeriods {
		return Result{}, fmt.Errorf("%w: %.0f periods, cap %d",
			interest.ErrTooManyPeriods, periods, constants.MaxCompoundingPeriods)
	}

	periodRate := in.AnnualRate / constants.PercentageMultiplier / float64(periodsPerYear)
	maturity := in.Principal
	if !numeric.IsEffectivelyZero(periodRate, 0) {
		growth, err := numeric.Power(1+periodRate, periods)
		if err != nil {
			return Result{}, fmt.Errorf("fixed deposit growth term: %w", err)
		}
		maturity = in.Principal * growth
	}

	return Result{
		MaturityAmount: numeric.Round(maturity),
		TotalInvested:  numeric.Round(in.Principal),
		TotalGains:     numeric.Round(maturity - in.Principal),
	}, nil
}

// RecurringDepositInput holds the parameters of a recurring deposit.
type RecurringDepositInput struct {
	MonthlyDeposit float64 `json:"monthlyDeposit"`
	AnnualRate     float64 `json:"annualRate"`
	TermMonths     int     `json:"termMonths"`
}

// RecurringDeposit computes the maturity of a fixed monthly deposit with
// quarterly compounding. Each installment compounds independently for the
// quarters remaining in its own tenure, the standard bank formula.
func RecurringDeposit(in RecurringDepositInput) (Result, error) {
	if err := validation.FirstError(
		validation.PositiveMax("monthlyDeposit", in.MonthlyDeposit, constants.MaxPrincipal),
		validation.InRange("annualRate", in.AnnualRate, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("termMonths", in.TermMonths, 1, constants.MaxScheduleMonths),
	); err != nil {
		return Result{}, err
	}

	quarterlyRate := in.AnnualRate / constants.PercentageMultiplier / 4
	var maturity float64
	if numeric.IsEffectivelyZero(quarterlyRate, 0) {
		maturity = in.MonthlyDeposit * float64(in.TermMonths)
	} else {
		for month := 1; month <= in.TermMonths; month++ {
			monthsHeld := float64(in.TermMonths - month + 1)
			quartersHeld := 4 * monthsHeld / constants.MonthsPerYear
			growth, err := numeric.Power(1+quarterlyRate, quartersHeld)
			if err != nil {
				return Result{}, fmt.Errorf("recurring deposit growth term: %w", err)
			}
			maturity += in.MonthlyDeposit * growth
		}
	}

	invested := in.MonthlyDeposit * float64(in.TermMonths)
	return Result{
		MaturityAmount: numeric.Round(maturity),
		TotalInvested:  numeric.Round(invested),
		TotalGains:     numeric.Round(maturity - invested),
	}, nil
}
