// Package investment provides project appraisal calculations: return on
// investment, net present value, and internal rate of return.
package investment

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ROIInput holds the parameters of a return-on-investment calculation.
// DurationMonths is optional; without it no annualized figure is produced.
type ROIInput struct {
	InitialInvestment float64 `json:"initialInvestment"`
	FinalValue        float64 `json:"finalValue"`
	DurationMonths    int     `json:"durationMonths,omitempty"`
}

// ROIResult reports absolute and relative returns. CAGRPercent is the
// annualized growth rate and is only set when the input carried a duration.
type ROIResult struct {
	AbsoluteGain float64 `json:"absoluteGain"`
	ROIPercent   float64 `json:"roiPercent"`
	CAGRPercent  float64 `json:"cagrPercent,omitempty"`
}

// ROI computes the gain on an investment. A final value below the initial
// investment yields negative figures; a total loss annualizes to -100%.
func ROI(in ROIInput) (ROIResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("initialInvestment", in.InitialInvestment, constants.MaxPrincipal),
		validation.InRange("finalValue", in.FinalValue, 0, constants.MaxPrincipal),
		validation.IntInRange("durationMonths", in.DurationMonths, 0, constants.MaxScheduleMonths),
	); err != nil {
		return ROIResult{}, err
	}

	gain := in.FinalValue - in.InitialInvestment
	result := ROIResult{
		AbsoluteGain: numeric.Round(gain),
		ROIPercent:   numeric.RoundTo(numeric.Percentage(gain, in.InitialInvestment), 2),
	}

	if in.DurationMonths > 0 {
		ratio := in.FinalValue / in.InitialInvestment
		growth, err := numeric.Power(ratio, constants.MonthsPerYear/float64(in.DurationMonths))
		if err != nil {
			return ROIResult{}, fmt.Errorf("annualized growth term: %w", err)
		}
		result.CAGRPercent = numeric.RoundTo((growth-1)*constants.PercentageMultiplier, 2)
	}

	return result, nil
}
