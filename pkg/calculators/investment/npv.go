package investment

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// NPVInput holds the parameters of a net-present-value calculation. The cash
// flows are given either as a flat MonthlyCashFlow over DurationMonths or as
// an explicit period-indexed CashFlows series, never both.
type NPVInput struct {
	InitialInvestment  float64   `json:"initialInvestment"`
	AnnualDiscountRate float64   `json:"annualDiscountRate"`
	MonthlyCashFlow    float64   `json:"monthlyCashFlow,omitempty"`
	DurationMonths     int       `json:"durationMonths,omitempty"`
	CashFlows          []float64 `json:"cashFlows,omitempty"`
}

// NPVResult reports the discounted value of the cash flows and the net result
// after the initial outflow.
type NPVResult struct {
	NetPresentValue float64 `json:"netPresentValue"`
	DiscountedFlows float64 `json:"discountedFlows"`
}

// NPV discounts the monthly cash flows at annualRate/12 and nets them against
// the initial investment.
func NPV(in NPVInput) (NPVResult, error) {
	if err := validation.FirstError(
		validation.PositiveMax("initialInvestment", in.InitialInvestment, constants.MaxPrincipal),
		validation.InRange("annualDiscountRate", in.AnnualDiscountRate, 0, constants.MaxAnnualRatePercent),
	); err != nil {
		return NPVResult{}, err
	}
	flows, err := monthlyFlows(in.MonthlyCashFlow, in.DurationMonths, in.CashFlows)
	if err != nil {
		return NPVResult{}, err
	}

	monthlyRate := in.AnnualDiscountRate / constants.PercentageMultiplier / constants.MonthsPerYear
	discounted := presentValue(flows, monthlyRate)

	return NPVResult{
		NetPresentValue: numeric.Round(discounted - in.InitialInvestment),
		DiscountedFlows: numeric.Round(discounted),
	}, nil
}

// presentValue discounts period-indexed flows at a per-period rate above -1.
func presentValue(flows []float64, rate float64) float64 {
	discount := 1.0
	total := 0.0
	for _, flow := range flows {
		discount *= 1 + rate
		total += flow / discount
	}
	return total
}

// monthlyFlows resolves the two input forms into one period-indexed series.
func monthlyFlows(flat float64, months int, explicit []float64) ([]float64, error) {
	if len(explicit) > 0 {
		if flat != 0 || months != 0 {
			return nil, validation.NewFieldError("cashFlows",
				"provide either cashFlows or monthlyCashFlow with durationMonths, not both")
		}
		if len(explicit) > constants.MaxScheduleMonths {
			return nil, validation.NewFieldError("cashFlows",
				"must not exceed %d periods, got %d", constants.MaxScheduleMonths, len(explicit))
		}
		for i, flow := range explicit {
			if err := validation.Finite("cashFlows", flow); err != nil {
				return nil, validation.NewFieldError("cashFlows",
					"entry %d must be a finite number, got %v", i, flow)
			}
		}
		return explicit, nil
	}

	if err := validation.FirstError(
		validation.Positive("monthlyCashFlow", flat),
		validation.IntInRange("durationMonths", months, 1, constants.MaxScheduleMonths),
	); err != nil {
		return nil, err
	}
	flows := make([]float64, months)
	for i := range flows {
		flows[i] = flat
	}
	return flows, nil
}
