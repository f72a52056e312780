package loan

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name                  string
		input                 Input
		expectedEMI           float64
		expectedTotalPayment  float64
		expectedTotalInterest float64
	}{
		{
			name:                  "Standard 5-year personal loan",
			input:                 Input{Principal: 500000, AnnualRate: 12, TermMonths: 60},
			expectedEMI:           11122.22,
			expectedTotalPayment:  667333.43,
			expectedTotalInterest: 167333.43,
		},
		{
			name:                  "Zero interest loan",
			input:                 Input{Principal: 120000, AnnualRate: 0, TermMonths: 12},
			expectedEMI:           10000.00,
			expectedTotalPayment:  120000.00,
			expectedTotalInterest: 0.00,
		},
		{
			name:                  "Single payment",
			input:                 Input{Principal: 10000, AnnualRate: 12, TermMonths: 1},
			expectedEMI:           10100.00,
			expectedTotalPayment:  10100.00,
			expectedTotalInterest: 100.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.input)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}

			if math.Abs(result.EMI-tt.expectedEMI) > 0.01 {
				t.Errorf("Calculate() EMI = %.2f, expected %.2f", result.EMI, tt.expectedEMI)
			}
			if math.Abs(result.TotalPayment-tt.expectedTotalPayment) > 0.01 {
				t.Errorf("Calculate() TotalPayment = %.2f, expected %.2f", result.TotalPayment, tt.expectedTotalPayment)
			}
			if math.Abs(result.TotalInterest-tt.expectedTotalInterest) > 0.01 {
				t.Errorf("Calculate() TotalInterest = %.2f, expected %.2f", result.TotalInterest, tt.expectedTotalInterest)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "Zero principal",
			input: Input{Principal: 0, AnnualRate: 12, TermMonths: 60},
		},
		{
			name:  "Negative principal",
			input: Input{Principal: -100000, AnnualRate: 12, TermMonths: 60},
		},
		{
			name:  "Principal above cap",
			input: Input{Principal: 2e9, AnnualRate: 12, TermMonths: 60},
		},
		{
			name:  "Negative rate",
			input: Input{Principal: 100000, AnnualRate: -1, TermMonths: 60},
		},
		{
			name:  "Rate above cap",
			input: Input{Principal: 100000, AnnualRate: 101, TermMonths: 60},
		},
		{
			name:  "Zero term",
			input: Input{Principal: 100000, AnnualRate: 12, TermMonths: 0},
		},
		{
			name:  "Term above cap",
			input: Input{Principal: 100000, AnnualRate: 12, TermMonths: 601},
		},
		{
			name:  "NaN principal",
			input: Input{Principal: math.NaN(), AnnualRate: 12, TermMonths: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(tt.input); err == nil {
				t.Errorf("Calculate(%+v) expected validation error but got none", tt.input)
			}
		})
	}
}

func TestCalculateTotalsAreConsistent(t *testing.T) {
	inputs := []Input{
		{Principal: 500000, AnnualRate: 12, TermMonths: 60},
		{Principal: 2500000, AnnualRate: 9, TermMonths: 240},
		{Principal: 10000, AnnualRate: 18, TermMonths: 36},
		{Principal: 75000, AnnualRate: 0, TermMonths: 48},
	}

	for _, in := range inputs {
		result, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(%+v) error = %v", in, err)
		}

		// EMI*n and the total payment differ only by output rounding, so the
		// divergence is bounded by half a paisa per period.
		paymentFromEMI := result.EMI * float64(in.TermMonths)
		roundingBound := 0.005*float64(in.TermMonths) + 0.01
		if math.Abs(paymentFromEMI-result.TotalPayment) > roundingBound {
			t.Errorf("EMI*n = %.2f diverges from TotalPayment = %.2f beyond rounding bound %.3f",
				paymentFromEMI, result.TotalPayment, roundingBound)
		}

		wantInterest := result.TotalPayment - in.Principal
		if math.Abs(wantInterest-result.TotalInterest) > 0.01 {
			t.Errorf("TotalPayment - principal = %.2f, but TotalInterest = %.2f", wantInterest, result.TotalInterest)
		}
	}
}

func TestCalculateZeroRateLimit(t *testing.T) {
	// A vanishing rate must converge to the linear principal/term split.
	linear, err := Calculate(Input{Principal: 600000, AnnualRate: 0, TermMonths: 60})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	nearZero, err := Calculate(Input{Principal: 600000, AnnualRate: 0.001, TermMonths: 60})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if linear.EMI != 10000.00 {
		t.Errorf("zero-rate EMI = %.2f, expected exactly 10000.00", linear.EMI)
	}
	if math.Abs(nearZero.EMI-linear.EMI) > 0.01 {
		t.Errorf("near-zero rate EMI = %.2f diverges from linear EMI = %.2f", nearZero.EMI, linear.EMI)
	}
}

func TestInterestPortion(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		annualRate float64
		expected   float64
	}{
		{
			name:       "Standard home loan interest",
			balance:    2000000,
			annualRate: 9.0,
			expected:   15000.0,
		},
		{
			name:       "Personal loan interest",
			balance:    500000,
			annualRate: 12.0,
			expected:   5000.0,
		},
		{
			name:       "Zero rate",
			balance:    100000,
			annualRate: 0.0,
			expected:   0.0,
		},
		{
			name:       "Small balance",
			balance:    100,
			annualRate: 6.0,
			expected:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestPortion(tt.balance, tt.annualRate)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("InterestPortion() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

