package tax

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// HRAInput holds the annual figures of an HRA exemption check. DA covers the
// dearness allowance counted with basic salary for the statutory formulas.
type HRAInput struct {
	BasicSalary float64 `json:"basicSalary"`
	DA          float64 `json:"da,omitempty"`
	HRAReceived float64 `json:"hraReceived"`
	RentPaid    float64 `json:"rentPaid"`
	Metro       bool    `json:"metro,omitempty"`
}

// HRAResult reports the exemption alongside the three statutory candidates
// it was the minimum of.
type HRAResult struct {
	Exemption     float64 `json:"exemption"`
	TaxableHRA    float64 `json:"taxableHRA"`
	ActualHRA     float64 `json:"actualHRA"`
	RentOverBasic float64 `json:"rentOverBasic"`
	BasicPortion  float64 `json:"basicPortion"`
}

// HRA computes the exempt portion of a house rent allowance: the least of
// the allowance itself, rent beyond ten percent of basic pay, and the metro
// or non-metro share of basic pay, floored at zero.
func HRA(in HRAInput) (HRAResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("basicSalary", in.BasicSalary, constants.MaxPrincipal),
		validation.NonNegative("da", in.DA),
		validation.NonNegative("hraReceived", in.HRAReceived),
		validation.NonNegative("rentPaid", in.RentPaid),
	); err != nil {
		return HRAResult{}, err
	}

	pay := in.BasicSalary + in.DA
	sharePercent := constants.NonMetroHRAPercent
	if in.Metro {
		sharePercent = constants.MetroHRAPercent
	}

	actual := in.HRAReceived
	rentOverBasic := in.RentPaid - numeric.ApplyPercentage(pay, 10)
	basicPortion := numeric.ApplyPercentage(pay, sharePercent)

	exemption := math.Min(actual, math.Min(rentOverBasic, basicPortion))
	if exemption < 0 {
		exemption = 0
	}

	return HRAResult{
		Exemption:     numeric.Round(exemption),
		TaxableHRA:    numeric.Round(in.HRAReceived - exemption),
		ActualHRA:     numeric.Round(actual),
		RentOverBasic: numeric.Round(rentOverBasic),
		BasicPortion:  numeric.Round(basicPortion),
	}, nil
}
