package tax

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// GSTInput holds the parameters of a GST split. Inclusive treats Amount as
// the gross figure and extracts the tax from it; otherwise tax is added on
// top. InterState selects IGST over the CGST+SGST split.
type GSTInput struct {
	Amount      float64 `json:"amount"`
	RatePercent float64 `json:"ratePercent"`
	InterState  bool    `json:"interState,omitempty"`
	Inclusive   bool    `json:"inclusive,omitempty"`
}

// GSTResult reports the base, the component split, and the gross total.
// Intra-state supplies fill CGST and SGST, inter-state supplies fill IGST.
type GSTResult struct {
	BaseAmount  float64 `json:"baseAmount"`
	TotalTax    float64 `json:"totalTax"`
	CGST        float64 `json:"cgst,omitempty"`
	SGST        float64 `json:"sgst,omitempty"`
	IGST        float64 `json:"igst,omitempty"`
	GrossAmount float64 `json:"grossAmount"`
}

// GST computes the tax on a supply and splits it between the levies.
func GST(in GSTInput) (GSTResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("amount", in.Amount, constants.MaxPrincipal),
		validation.InRange("ratePercent", in.RatePercent, 0, constants.MaxAnnualRatePercent),
	); err != nil {
		return GSTResult{}, err
	}

	var base, tax float64
	if in.Inclusive {
		gross := in.Amount
		divided, err := numeric.Divide(gross, 1+in.RatePercent/constants.PercentageMultiplier)
		if err != nil {
			return GSTResult{}, err
		}
		base = divided
		tax = gross - base
	} else {
		base = in.Amount
		tax = numeric.ApplyPercentage(base, in.RatePercent)
	}

	result := GSTResult{
		BaseAmount:  numeric.Round(base),
		TotalTax:    numeric.Round(tax),
		GrossAmount: numeric.Round(base + tax),
	}
	if in.InterState {
		result.IGST = result.TotalTax
	} else {
		// Halve so the rounded components still sum to the rounded tax.
		result.CGST = numeric.Round(tax / 2)
		result.SGST = numeric.Round(result.TotalTax - result.CGST)
	}
	return result, nil
}
