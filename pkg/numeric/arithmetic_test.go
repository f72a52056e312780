package numeric

import (
	"errors"
	"math"
	"testing"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name    string
		a       float64
		b       float64
		want    float64
		wantErr error
	}{
		{
			name: "ordinary division",
			a:    10,
			b:    4,
			want: 2.5,
		},
		{
			name:    "zero divisor",
			a:       42,
			b:       0,
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "zero divisor with zero numerator",
			a:       0,
			b:       0,
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "NaN operand",
			a:       math.NaN(),
			b:       2,
			wantErr: ErrNonFinite,
		},
		{
			name:    "infinite operand",
			a:       math.Inf(1),
			b:       2,
			wantErr: ErrNonFinite,
		},
		{
			name:    "overflowing quotient",
			a:       math.MaxFloat64,
			b:       0.5,
			wantErr: ErrNonFinite,
		},
		{
			name: "negative result",
			a:    -9,
			b:    3,
			want: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Divide(%g, %g) error = %v, want %v", tt.a, tt.b, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Divide(%g, %g) unexpected error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Divide(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivideNeverReturnsNonFinite(t *testing.T) {
	// The documented contract: for all finite numerators, a zero divisor yields
	// an error, never NaN or Infinity.
	numerators := []float64{0, 1, -1, 0.001, 1e18, -1e18, math.MaxFloat64}
	for _, a := range numerators {
		got, err := Divide(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(%g, 0) error = %v, want ErrDivisionByZero", a, err)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Divide(%g, 0) leaked non-finite value %g", a, got)
		}
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		want     float64
		wantErr  error
	}{
		{
			name:     "integer power",
			base:     2,
			exponent: 10,
			want:     1024,
		},
		{
			name:     "fractional power of positive base",
			base:     9,
			exponent: 0.5,
			want:     3,
		},
		{
			name:     "negative base integer exponent",
			base:     -2,
			exponent: 3,
			want:     -8,
		},
		{
			name:     "negative base fractional exponent",
			base:     -4,
			exponent: 0.5,
			wantErr:  ErrDomain,
		},
		{
			name:     "overflow",
			base:     10,
			exponent: 400,
			wantErr:  ErrNonFinite,
		},
		{
			name:     "zero exponent",
			base:     123.456,
			exponent: 0,
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.base, tt.exponent)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Power(%g, %g) error = %v, want %v", tt.base, tt.exponent, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Power(%g, %g) unexpected error: %v", tt.base, tt.exponent, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Power(%g, %g) = %g, want %g", tt.base, tt.exponent, got, tt.want)
			}
		})
	}
}

func TestAddSubtractMultiplyGuards(t *testing.T) {
	if _, err := Add(math.MaxFloat64, math.MaxFloat64); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Add overflow error = %v, want ErrNonFinite", err)
	}
	if _, err := Subtract(-math.MaxFloat64, math.MaxFloat64); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Subtract overflow error = %v, want ErrNonFinite", err)
	}
	if _, err := Multiply(1e200, 1e200); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Multiply overflow error = %v, want ErrNonFinite", err)
	}
	if _, err := Add(math.NaN(), 1); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Add NaN error = %v, want ErrNonFinite", err)
	}

	got, err := Multiply(12.5, 8)
	if err != nil {
		t.Fatalf("Multiply(12.5, 8) unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("Multiply(12.5, 8) = %g, want 100", got)
	}
}

func TestOrWrappersFallBack(t *testing.T) {
	if got := DivideOr(1, 0, -1); got != -1 {
		t.Errorf("DivideOr(1, 0, -1) = %g, want -1", got)
	}
	if got := DivideOr(9, 3, -1); got != 3 {
		t.Errorf("DivideOr(9, 3, -1) = %g, want 3", got)
	}
	if got := PowerOr(-4, 0.5, 0); got != 0 {
		t.Errorf("PowerOr(-4, 0.5, 0) = %g, want 0", got)
	}
	if got := AddOr(math.Inf(1), 1, 7); got != 7 {
		t.Errorf("AddOr(+Inf, 1, 7) = %g, want 7", got)
	}
	if got := SubtractOr(5, 2, 0); got != 3 {
		t.Errorf("SubtractOr(5, 2, 0) = %g, want 3", got)
	}
	if got := MultiplyOr(1e200, 1e200, 9); got != 9 {
		t.Errorf("MultiplyOr overflow fallback = %g, want 9", got)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		digits int
		want   float64
	}{
		{"currency round up", 1234.567, 2, 1234.57},
		{"currency round down", 1234.564, 2, 1234.56},
		{"half rounds away from zero", 2.675, 2, 2.68},
		{"negative digits treated as zero", 1234.5, -1, 1235},
		{"four digits", 0.123456, 4, 0.1235},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTo(tt.val, tt.digits)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RoundTo(%g, %d) = %g, want %g", tt.val, tt.digits, got, tt.want)
			}
		})
	}

	if got := Round(10.005); math.Abs(got-10.01) > 1e-9 {
		t.Errorf("Round(10.005) = %g, want 10.01", got)
	}
}

func TestZeroChecks(t *testing.T) {
	if !IsZero(0.004) {
		t.Error("IsZero(0.004) = false, want true (within currency tolerance)")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, want false")
	}
	if !IsEffectivelyZero(1e-12, 0) {
		t.Error("IsEffectivelyZero(1e-12, default) = false, want true")
	}
	if IsEffectivelyZero(1e-6, 0) {
		t.Error("IsEffectivelyZero(1e-6, default) = true, want false")
	}
	if !IsEffectivelyZero(0.5, 1) {
		t.Error("IsEffectivelyZero(0.5, 1) = false, want true")
	}
	if !WithinTolerance(100.004, 100.0, 0.01) {
		t.Error("WithinTolerance(100.004, 100.0, 0.01) = false, want true")
	}
}

func TestClampAndPercentage(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %g, want 10", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %g, want 0", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp(7, 0, 10) = %g, want 7", got)
	}
	if got := Percentage(25, 200); got != 12.5 {
		t.Errorf("Percentage(25, 200) = %g, want 12.5", got)
	}
	if got := Percentage(25, 0); got != 0 {
		t.Errorf("Percentage(25, 0) = %g, want 0", got)
	}
	if got := ApplyPercentage(200, 18); got != 36 {
		t.Errorf("ApplyPercentage(200, 18) = %g, want 36", got)
	}
}
