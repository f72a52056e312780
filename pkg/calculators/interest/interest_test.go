package interest

import (
	"errors"
	"math"
	"testing"
)

func TestSimple(t *testing.T) {
	tests := []struct {
		name             string
		input            SimpleInput
		expectedInterest float64
		expectedAmount   float64
	}{
		{
			name:             "Three year deposit",
			input:            SimpleInput{Principal: 10000, AnnualRate: 5, Years: 3},
			expectedInterest: 1500.00,
			expectedAmount:   11500.00,
		},
		{
			name:             "Fractional years",
			input:            SimpleInput{Principal: 100000, AnnualRate: 12, Years: 0.5},
			expectedInterest: 6000.00,
			expectedAmount:   106000.00,
		},
		{
			name:             "Zero rate",
			input:            SimpleInput{Principal: 50000, AnnualRate: 0, Years: 10},
			expectedInterest: 0.00,
			expectedAmount:   50000.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Simple(tt.input)
			if err != nil {
				t.Fatalf("Simple() error = %v", err)
			}
			if math.Abs(result.Interest-tt.expectedInterest) > 0.01 {
				t.Errorf("Simple() Interest = %.2f, expected %.2f", result.Interest, tt.expectedInterest)
			}
			if math.Abs(result.Amount-tt.expectedAmount) > 0.01 {
				t.Errorf("Simple() Amount = %.2f, expected %.2f", result.Amount, tt.expectedAmount)
			}
		})
	}
}

func TestSimpleValidation(t *testing.T) {
	invalid := []SimpleInput{
		{Principal: 0, AnnualRate: 5, Years: 3},
		{Principal: -1, AnnualRate: 5, Years: 3},
		{Principal: 10000, AnnualRate: -0.1, Years: 3},
		{Principal: 10000, AnnualRate: 101, Years: 3},
		{Principal: 10000, AnnualRate: 5, Years: 0},
		{Principal: 10000, AnnualRate: 5, Years: 101},
		{Principal: math.Inf(1), AnnualRate: 5, Years: 3},
	}

	for _, in := range invalid {
		if _, err := Simple(in); err == nil {
			t.Errorf("Simple(%+v) expected validation error but got none", in)
		}
	}
}

func TestCompound(t *testing.T) {
	tests := []struct {
		name           string
		input          CompoundInput
		expectedAmount float64
		tolerance      float64
	}{
		{
			name:           "Yearly compounding",
			input:          CompoundInput{Principal: 10000, AnnualRate: 5, Years: 3, Frequency: Yearly},
			expectedAmount: 11576.25,
			tolerance:      0.01,
		},
		{
			name:           "Default frequency is yearly",
			input:          CompoundInput{Principal: 10000, AnnualRate: 5, Years: 3},
			expectedAmount: 11576.25,
			tolerance:      0.01,
		},
		{
			name:           "Half-yearly compounding",
			input:          CompoundInput{Principal: 10000, AnnualRate: 10, Years: 3, Frequency: HalfYearly},
			expectedAmount: 13400.96,
			tolerance:      0.01,
		},
		{
			name:           "Quarterly compounding",
			input:          CompoundInput{Principal: 10000, AnnualRate: 8, Years: 5, Frequency: Quarterly},
			expectedAmount: 14859.47,
			tolerance:      0.01,
		},
		{
			name:           "Monthly compounding",
			input:          CompoundInput{Principal: 100000, AnnualRate: 12, Years: 1, Frequency: Monthly},
			expectedAmount: 112682.50,
			tolerance:      0.01,
		},
		{
			name:           "Daily compounding",
			input:          CompoundInput{Principal: 100000, AnnualRate: 10, Years: 1, Frequency: Daily},
			expectedAmount: 110515.58,
			tolerance:      0.05,
		},
		{
			name:           "Zero rate returns principal",
			input:          CompoundInput{Principal: 42000, AnnualRate: 0, Years: 10, Frequency: Monthly},
			expectedAmount: 42000.00,
			tolerance:      0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compound(tt.input)
			if err != nil {
				t.Fatalf("Compound() error = %v", err)
			}
			if math.Abs(result.Amount-tt.expectedAmount) > tt.tolerance {
				t.Errorf("Compound() Amount = %.2f, expected %.2f", result.Amount, tt.expectedAmount)
			}
			wantInterest := result.Amount - tt.input.Principal
			if math.Abs(result.Interest-wantInterest) > 0.01 {
				t.Errorf("Compound() Interest = %.2f, expected %.2f", result.Interest, wantInterest)
			}
		})
	}
}

func TestCompoundPeriodCap(t *testing.T) {
	// Daily compounding over three years crosses the period cap.
	_, err := Compound(CompoundInput{Principal: 10000, AnnualRate: 8, Years: 3, Frequency: Daily})
	if !errors.Is(err, ErrTooManyPeriods) {
		t.Fatalf("Compound() error = %v, want ErrTooManyPeriods", err)
	}

	// Two years of daily compounding stays under it.
	if _, err := Compound(CompoundInput{Principal: 10000, AnnualRate: 8, Years: 2, Frequency: Daily}); err != nil {
		t.Fatalf("Compound() unexpected error = %v", err)
	}
}

func TestCompoundUnknownFrequency(t *testing.T) {
	_, err := Compound(CompoundInput{Principal: 10000, AnnualRate: 8, Years: 3, Frequency: "weekly"})
	if err == nil {
		t.Fatal("Compound() expected frequency error but got none")
	}
}

func TestCompoundZeroRateLimit(t *testing.T) {
	zero, err := Compound(CompoundInput{Principal: 250000, AnnualRate: 0, Years: 5, Frequency: Monthly})
	if err != nil {
		t.Fatalf("Compound() error = %v", err)
	}
	// A rate just above the effective-zero threshold takes the compounding
	// path and must still converge to the degenerate result.
	nearZero, err := Compound(CompoundInput{Principal: 250000, AnnualRate: 0.0000015, Years: 5, Frequency: Monthly})
	if err != nil {
		t.Fatalf("Compound() error = %v", err)
	}

	if math.Abs(zero.Amount-250000) > 0.001 {
		t.Errorf("zero-rate Amount = %.2f, expected exactly the principal", zero.Amount)
	}
	if math.Abs(nearZero.Amount-zero.Amount) > 0.05 {
		t.Errorf("near-zero rate Amount = %.2f diverges from zero-rate Amount = %.2f",
			nearZero.Amount, zero.Amount)
	}
}

func TestPeriodsPerYear(t *testing.T) {
	tests := []struct {
		frequency Frequency
		expected  int
	}{
		{Yearly, 1},
		{HalfYearly, 2},
		{Quarterly, 4},
		{Monthly, 12},
		{Daily, 365},
		{"", 1},
	}

	for _, tt := range tests {
		got, err := tt.frequency.PeriodsPerYear()
		if err != nil {
			t.Errorf("PeriodsPerYear(%q) error = %v", tt.frequency, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("PeriodsPerYear(%q) = %d, expected %d", tt.frequency, got, tt.expected)
		}
	}

	if _, err := Frequency("fortnightly").PeriodsPerYear(); err == nil {
		t.Error("PeriodsPerYear(fortnightly) expected error but got none")
	}
}
