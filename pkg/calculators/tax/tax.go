// Package tax provides Indian income tax, GST, and HRA exemption
// calculations. Slab tables and statutory knobs are passed in explicitly so
// regimes can be swapped or overridden through configuration.
package tax

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Slab is one marginal bracket. UpTo zero marks the unbounded top bracket.
type Slab struct {
	UpTo        float64 `json:"upTo" yaml:"upTo"`
	RatePercent float64 `json:"ratePercent" yaml:"ratePercent"`
}

// SlabTable is an ordered list of brackets ending in an unbounded slab.
type SlabTable []Slab

// Validate checks that the brackets are strictly increasing, carry sane
// rates, and terminate in an unbounded top slab.
func (s SlabTable) Validate() error {
	if len(s) == 0 {
		return validation.NewFieldError("slabs", "must contain at least one slab")
	}
	prev := 0.0
	for i, slab := range s {
		if err := validation.InRange("slabs", slab.RatePercent, 0, constants.MaxAnnualRatePercent); err != nil {
			return validation.NewFieldError("slabs", "slab %d rate must be between 0 and 100, got %g", i, slab.RatePercent)
		}
		if i == len(s)-1 {
			if slab.UpTo != 0 {
				return validation.NewFieldError("slabs", "last slab must be unbounded (upTo 0), got %g", slab.UpTo)
			}
			continue
		}
		if slab.UpTo <= prev {
			return validation.NewFieldError("slabs", "slab %d bound %g must exceed the previous bound %g", i, slab.UpTo, prev)
		}
		prev = slab.UpTo
	}
	return nil
}

// Regime bundles a slab table with the statutory knobs that accompany it.
type Regime struct {
	Name              string    `json:"name" yaml:"name"`
	Slabs             SlabTable `json:"slabs" yaml:"slabs"`
	StandardDeduction float64   `json:"standardDeduction" yaml:"standardDeduction"`
	RebateThreshold   float64   `json:"rebateThreshold" yaml:"rebateThreshold"`
	RebateCap         float64   `json:"rebateCap" yaml:"rebateCap"`
	CessPercent       float64   `json:"cessPercent" yaml:"cessPercent"`
}

// DefaultRegimes returns the published new and old regime tables for
// FY 2025-26. Configuration may replace these wholesale.
func DefaultRegimes() []Regime {
	return []Regime{
		{
			Name: "new",
			Slabs: SlabTable{
				{UpTo: 400000, RatePercent: 0},
				{UpTo: 800000, RatePercent: 5},
				{UpTo: 1200000, RatePercent: 10},
				{UpTo: 1600000, RatePercent: 15},
				{UpTo: 2000000, RatePercent: 20},
				{UpTo: 2400000, RatePercent: 25},
				{UpTo: 0, RatePercent: 30},
			},
			StandardDeduction: 75000,
			RebateThreshold:   1200000,
			RebateCap:         60000,
			CessPercent:       constants.DefaultCessPercent,
		},
		{
			Name: "old",
			Slabs: SlabTable{
				{UpTo: 250000, RatePercent: 0},
				{UpTo: 500000, RatePercent: 5},
				{UpTo: 1000000, RatePercent: 20},
				{UpTo: 0, RatePercent: 30},
			},
			StandardDeduction: 50000,
			RebateThreshold:   500000,
			RebateCap:         12500,
			CessPercent:       constants.DefaultCessPercent,
		},
	}
}

// RegimeByName finds a regime in the list, matching case-sensitively.
func RegimeByName(regimes []Regime, name string) (Regime, bool) {
	for _, regime := range regimes {
		if regime.Name == name {
			return regime, true
		}
	}
	return Regime{}, false
}

// IncomeInput holds gross annual income and the regime to tax it under.
type IncomeInput struct {
	AnnualIncome float64 `json:"annualIncome"`
	Regime       Regime  `json:"regime"`
}

// SlabTax is one row of the marginal breakup.
type SlabTax struct {
	From        float64 `json:"from"`
	UpTo        float64 `json:"upTo,omitempty"`
	RatePercent float64 `json:"ratePercent"`
	Amount      float64 `json:"amount"`
	Tax         float64 `json:"tax"`
}

// IncomeResult reports the tax computation with its slab-by-slab breakup.
type IncomeResult struct {
	TaxableIncome float64   `json:"taxableIncome"`
	Tax           float64   `json:"tax"`
	Rebate        float64   `json:"rebate"`
	Cess          float64   `json:"cess"`
	TotalTax      float64   `json:"totalTax"`
	EffectiveRate float64   `json:"effectiveRate"`
	Breakup       []SlabTax `json:"breakup"`
}

// Income applies the regime's slab table marginally to the income after the
// standard deduction, then the rebate when taxable income is under the
// threshold, then cess on what remains.
func Income(in IncomeInput) (IncomeResult, error) {
	if err := validation.FirstError(
		validation.InRange("annualIncome", in.AnnualIncome, 0, constants.MaxPrincipal),
		in.Regime.Slabs.Validate(),
		validation.NonNegative("standardDeduction", in.Regime.StandardDeduction),
		validation.NonNegative("rebateThreshold", in.Regime.RebateThreshold),
		validation.NonNegative("rebateCap", in.Regime.RebateCap),
		validation.InRange("cessPercent", in.Regime.CessPercent, 0, constants.MaxAnnualRatePercent),
	); err != nil {
		return IncomeResult{}, err
	}

	taxable := in.AnnualIncome - in.Regime.StandardDeduction
	if taxable < 0 {
		taxable = 0
	}

	var tax float64
	var breakup []SlabTax
	prev := 0.0
	for _, slab := range in.Regime.Slabs {
		if taxable <= prev {
			break
		}
		upper := slab.UpTo
		if upper == 0 || upper > taxable {
			upper = taxable
		}
		amount := upper - prev
		slabTax := numeric.ApplyPercentage(amount, slab.RatePercent)
		tax += slabTax
		breakup = append(breakup, SlabTax{
			From:        prev,
			UpTo:        slab.UpTo,
			RatePercent: slab.RatePercent,
			Amount:      numeric.Round(amount),
			Tax:         numeric.Round(slabTax),
		})
		prev = slab.UpTo
		if slab.UpTo == 0 {
			break
		}
	}

	var rebate float64
	if in.Regime.RebateThreshold > 0 && taxable <= in.Regime.RebateThreshold {
		rebate = math.Min(tax, in.Regime.RebateCap)
		tax -= rebate
	}

	cess := numeric.ApplyPercentage(tax, in.Regime.CessPercent)
	total := tax + cess

	return IncomeResult{
		TaxableIncome: numeric.Round(taxable),
		Tax:           numeric.Round(tax),
		Rebate:        numeric.Round(rebate),
		Cess:          numeric.Round(cess),
		TotalTax:      numeric.Round(total),
		EffectiveRate: numeric.RoundTo(numeric.Percentage(total, in.AnnualIncome), 2),
		Breakup:       breakup,
	}, nil
}
