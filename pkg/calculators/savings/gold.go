package savings

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// GoldInput holds the parameters of a gold investment. The invested amount is
// given either directly through Amount or as Grams times PricePerGram, never
// both.
type GoldInput struct {
	Amount             float64 `json:"amount,omitempty"`
	Grams              float64 `json:"grams,omitempty"`
	PricePerGram       float64 `json:"pricePerGram,omitempty"`
	AnnualAppreciation float64 `json:"annualAppreciation"`
	Years              float64 `json:"years"`
}

// GoldResult extends the shared maturity summary with the projected price per
// gram when the investment was given by weight.
type GoldResult struct {
	Result
	Grams             float64 `json:"grams,omitempty"`
	FinalPricePerGram float64 `json:"finalPricePerGram,omitempty"`
}

// Gold projects the value of a gold holding appreciating at an annual rate
// with yearly compounding. Fractional years accrue pro rata through the
// exponent.
func Gold(in GoldInput) (GoldResult, error) {
	byWeight := in.Grams != 0 || in.PricePerGram != 0
	if in.Amount != 0 && byWeight {
		return GoldResult{}, validation.NewFieldError("amount",
			"provide either amount or grams with pricePerGram, not both")
	}

	invested := in.Amount
	if byWeight {
		if err := validation.FirstError(
			validation.PositiveMax("grams", in.Grams, 1_000_000),
			validation.PositiveMax("pricePerGram", in.PricePerGram, constants.MaxPrincipal),
		); err != nil {
			return GoldResult{}, err
		}
		invested = in.Grams * in.PricePerGram
	}

	if err := validation.FirstError(
		validation.PositiveMax("amount", invested, constants.MaxPrincipal),
		validation.InRange("annualAppreciation", in.AnnualAppreciation, 0, constants.MaxAnnualRatePercent),
		validation.PositiveMax("years", in.Years, constants.MaxTenureYears),
	); err != nil {
		return GoldResult{}, err
	}

	annualRate := in.AnnualAppreciation / constants.PercentageMultiplier
	growth := 1.0
	if !numeric.IsEffectivelyZero(annualRate, 0) {
		var err error
		growth, err = numeric.Power(1+annualRate, in.Years)
		if err != nil {
			return GoldResult{}, err
		}
	}

	maturity := invested * growth
	result := GoldResult{
		Result: Result{
			MaturityAmount: numeric.Round(maturity),
			TotalInvested:  numeric.Round(invested),
			TotalGains:     numeric.Round(maturity - invested),
		},
	}
	if byWeight {
		result.Grams = in.Grams
		result.FinalPricePerGram = numeric.Round(in.PricePerGram * growth)
	}
	return result, nil
}
