package tax

import (
	"math"
	"testing"
)

func newRegime(t *testing.T) Regime {
	t.Helper()
	regime, ok := RegimeByName(DefaultRegimes(), "new")
	if !ok {
		t.Fatal("default regimes are missing the new regime")
	}
	return regime
}

func oldRegime(t *testing.T) Regime {
	t.Helper()
	regime, ok := RegimeByName(DefaultRegimes(), "old")
	if !ok {
		t.Fatal("default regimes are missing the old regime")
	}
	return regime
}

func TestIncomeNewRegime(t *testing.T) {
	tests := []struct {
		name            string
		income          float64
		expectedTaxable float64
		expectedTax     float64
		expectedTotal   float64
		expectedRate    float64
	}{
		{
			name:            "Sixteen lakh salary",
			income:          1600000,
			expectedTaxable: 1525000,
			expectedTax:     108750,
			expectedTotal:   113100,
			expectedRate:    7.07,
		},
		{
			name:            "Ten lakh zeroed by rebate",
			income:          1000000,
			expectedTaxable: 925000,
			expectedTax:     0,
			expectedTotal:   0,
			expectedRate:    0,
		},
		{
			name:            "Rebate boundary at twelve lakh taxable",
			income:          1275000,
			expectedTaxable: 1200000,
			expectedTax:     0,
			expectedTotal:   0,
			expectedRate:    0,
		},
		{
			name:            "Thirty lakh salary",
			income:          3000000,
			expectedTaxable: 2925000,
			expectedTax:     457500,
			expectedTotal:   475800,
			expectedRate:    15.86,
		},
		{
			name:            "Income below the standard deduction",
			income:          50000,
			expectedTaxable: 0,
			expectedTax:     0,
			expectedTotal:   0,
			expectedRate:    0,
		},
	}

	regime := newRegime(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Income(IncomeInput{AnnualIncome: tt.income, Regime: regime})
			if err != nil {
				t.Fatalf("Income() error = %v", err)
			}
			if math.Abs(result.TaxableIncome-tt.expectedTaxable) > 0.005 {
				t.Errorf("Income() TaxableIncome = %.2f, expected %.2f", result.TaxableIncome, tt.expectedTaxable)
			}
			if math.Abs(result.Tax-tt.expectedTax) > 0.005 {
				t.Errorf("Income() Tax = %.2f, expected %.2f", result.Tax, tt.expectedTax)
			}
			if math.Abs(result.TotalTax-tt.expectedTotal) > 0.005 {
				t.Errorf("Income() TotalTax = %.2f, expected %.2f", result.TotalTax, tt.expectedTotal)
			}
			if math.Abs(result.EffectiveRate-tt.expectedRate) > 0.005 {
				t.Errorf("Income() EffectiveRate = %.2f, expected %.2f", result.EffectiveRate, tt.expectedRate)
			}
		})
	}
}

func TestIncomeOldRegime(t *testing.T) {
	result, err := Income(IncomeInput{AnnualIncome: 1000000, Regime: oldRegime(t)})
	if err != nil {
		t.Fatalf("Income() error = %v", err)
	}
	if math.Abs(result.TaxableIncome-950000) > 0.005 {
		t.Errorf("Income() TaxableIncome = %.2f, expected 950000", result.TaxableIncome)
	}
	if math.Abs(result.Tax-102500) > 0.005 {
		t.Errorf("Income() Tax = %.2f, expected 102500", result.Tax)
	}
	if math.Abs(result.Cess-4100) > 0.005 {
		t.Errorf("Income() Cess = %.2f, expected 4100", result.Cess)
	}
	if math.Abs(result.TotalTax-106600) > 0.005 {
		t.Errorf("Income() TotalTax = %.2f, expected 106600", result.TotalTax)
	}
}

func TestIncomeBreakup(t *testing.T) {
	result, err := Income(IncomeInput{AnnualIncome: 1600000, Regime: newRegime(t)})
	if err != nil {
		t.Fatalf("Income() error = %v", err)
	}

	if len(result.Breakup) != 4 {
		t.Fatalf("Income() breakup has %d rows, expected 4", len(result.Breakup))
	}

	wantTax := []float64{0, 20000, 40000, 48750}
	var sum float64
	for i, row := range result.Breakup {
		if math.Abs(row.Tax-wantTax[i]) > 0.005 {
			t.Errorf("breakup row %d tax = %.2f, expected %.2f", i, row.Tax, wantTax[i])
		}
		sum += row.Tax
	}
	if math.Abs(sum-result.Tax) > 0.01 {
		t.Errorf("breakup rows sum to %.2f, Tax = %.2f", sum, result.Tax)
	}
}

func TestIncomeMonotonic(t *testing.T) {
	regime := newRegime(t)
	prevTotal := -1.0
	for income := 0.0; income <= 3000000; income += 50000 {
		result, err := Income(IncomeInput{AnnualIncome: income, Regime: regime})
		if err != nil {
			t.Fatalf("Income(%v) error = %v", income, err)
		}
		if result.TotalTax < prevTotal {
			t.Fatalf("TotalTax decreased from %.2f to %.2f at income %.0f", prevTotal, result.TotalTax, income)
		}
		prevTotal = result.TotalTax
	}
}

func TestIncomeTopMarginalRate(t *testing.T) {
	regime := newRegime(t)
	result, err := Income(IncomeInput{AnnualIncome: 5000000, Regime: regime})
	if err != nil {
		t.Fatalf("Income() error = %v", err)
	}
	last := result.Breakup[len(result.Breakup)-1]
	wantRate := regime.Slabs[len(regime.Slabs)-1].RatePercent
	if last.RatePercent != wantRate {
		t.Errorf("top breakup rate = %.2f, expected the last slab rate %.2f", last.RatePercent, wantRate)
	}
	if last.UpTo != 0 {
		t.Errorf("top breakup row UpTo = %.2f, expected the unbounded marker 0", last.UpTo)
	}
}

func TestSlabTableValidate(t *testing.T) {
	invalid := []SlabTable{
		{},
		{{UpTo: 250000, RatePercent: 5}},
		{{UpTo: 250000, RatePercent: 0}, {UpTo: 250000, RatePercent: 5}, {UpTo: 0, RatePercent: 30}},
		{{UpTo: 500000, RatePercent: 0}, {UpTo: 250000, RatePercent: 5}, {UpTo: 0, RatePercent: 30}},
		{{UpTo: 250000, RatePercent: -5}, {UpTo: 0, RatePercent: 30}},
		{{UpTo: 250000, RatePercent: 0}, {UpTo: 0, RatePercent: 101}},
	}

	for i, table := range invalid {
		if err := table.Validate(); err == nil {
			t.Errorf("table %d expected validation error but got none", i)
		}
	}

	for _, regime := range DefaultRegimes() {
		if err := regime.Slabs.Validate(); err != nil {
			t.Errorf("default regime %s failed validation: %v", regime.Name, err)
		}
	}
}

func TestIncomeValidation(t *testing.T) {
	regime := newRegime(t)

	if _, err := Income(IncomeInput{AnnualIncome: -1, Regime: regime}); err == nil {
		t.Error("Income() accepted negative income")
	}

	badCess := regime
	badCess.CessPercent = 101
	if _, err := Income(IncomeInput{AnnualIncome: 1000000, Regime: badCess}); err == nil {
		t.Error("Income() accepted cess above 100 percent")
	}

	noSlabs := regime
	noSlabs.Slabs = nil
	if _, err := Income(IncomeInput{AnnualIncome: 1000000, Regime: noSlabs}); err == nil {
		t.Error("Income() accepted an empty slab table")
	}
}
