// Package savings provides maturity calculations for recurring and lumpsum
// savings vehicles: SIP, fixed and recurring deposits, PPF, and gold.
package savings

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// SIPInput holds the parameters of a systematic investment plan projection.
// AnnualReturn is a percentage; contributions land at the start of each month.
type SIPInput struct {
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	AnnualReturn      float64 `json:"annualReturn"`
	Months            int     `json:"months"`
	InitialInvestment float64 `json:"initialInvestment,omitempty"`
}

// Result is the common shape of a savings projection, rounded to two decimals.
type Result struct {
	MaturityAmount float64 `json:"maturityAmount"`
	TotalInvested  float64 `json:"totalInvested"`
	TotalGains     float64 `json:"totalGains"`
}

// SIP projects a monthly contribution plan using the annuity-due formula
// FV = PMT*((1+r)^n - 1)/r*(1+r). A zero return degenerates to the linear sum
// of contributions. An optional initial lumpsum compounds alongside.
func SIP(in SIPInput) (Result, error) {
	if err := validation.FirstError(
		validation.PositiveMax("monthlyInvestment", in.MonthlyInvestment, constants.MaxPrincipal),
		validation.InRange("annualReturn", in.AnnualReturn, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("months", in.Months, 1, constants.MaxScheduleMonths),
		validation.NonNegative("initialInvestment", in.InitialInvestment),
	); err != nil {
		return Result{}, err
	}

	monthlyRate := in.AnnualReturn / constants.PercentageMultiplier / constants.MonthsPerYear
	months := float64(in.Months)

	var maturity float64
	if numeric.IsEffectivelyZero(monthlyRate, 0) {
		maturity = in.MonthlyInvestment*months + in.InitialInvestment
	} else {
		growth, err := numeric.Power(1+monthlyRate, months)
		if err != nil {
			return Result{}, fmt.Errorf("sip growth term: %w", err)
		}
		annuity, err := numeric.Divide((growth-1)*(1+monthlyRate), monthlyRate)
		if err != nil {
			return Result{}, fmt.Errorf("sip annuity factor: %w", err)
		}
		maturity = in.MonthlyInvestment*annuity + in.InitialInvestment*growth
	}

	invested := in.MonthlyInvestment*months + in.InitialInvestment
	return Result{
		MaturityAmount: numeric.Round(maturity),
		TotalInvested:  numeric.Round(invested),
		TotalGains:     numeric.Round(maturity - invested),
	}, nil
}

// LumpsumInput holds the parameters of a one-time investment projection.
type LumpsumInput struct {
	Principal    float64 `json:"principal"`
	AnnualReturn float64 `json:"annualReturn"`
	Years        float64 `json:"years"`
}

// Lumpsum projects a single deposit with monthly compounding at the given
// annual return.
func Lumpsum(in LumpsumInput) (Result, error) {
	if err := validation.FirstError(
		validation.PositiveMax("principal", in.Principal, constants.MaxPrincipal),
		validation.InRange("annualReturn", in.AnnualReturn, 0, constants.MaxAnnualRatePercent),
		validation.PositiveMax("years", in.Years, constants.MaxTenureYears),
	); err != nil {
		return Result{}, err
	}

	monthlyRate := in.AnnualReturn / constants.PercentageMultiplier / constants.MonthsPerYear
	months := in.Years * constants.MonthsPerYear

	maturity := in.Principal
	if !numeric.IsEffectivelyZero(monthlyRate, 0) {
		growth, err := numeric.Power(1+monthlyRate, months)
		if err != nil {
			return Result{}, fmt.Errorf("lumpsum growth term: %w", err)
		}
		maturity = in.Principal * growth
	}

	return Result{
		MaturityAmount: numeric.Round(maturity),
		TotalInvested:  numeric.Round(in.Principal),
		TotalGains:     numeric.Round(maturity - in.Principal),
	}, nil
}
