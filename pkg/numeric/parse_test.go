package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{
			name:  "plain integer",
			input: "500000",
			want:  500000,
		},
		{
			name:  "plain decimal",
			input: "1234.56",
			want:  1234.56,
		},
		{
			name:  "western grouping",
			input: "1,234,567.89",
			want:  1234567.89,
		},
		{
			name:  "indian grouping",
			input: "5,00,000",
			want:  500000,
		},
		{
			name:  "rupee symbol",
			input: "₹12,500.50",
			want:  12500.50,
		},
		{
			name:  "dollar symbol with spaces",
			input: " $ 1,000 ",
			want:  1000,
		},
		{
			name:  "euro symbol",
			input: "€99.99",
			want:  99.99,
		},
		{
			name:  "negative amount",
			input: "-2,500",
			want:  -2500,
		},
		{
			name:  "leading plus",
			input: "+42",
			want:  42,
		},
		{
			name:  "trailing percent",
			input: "12.5%",
			want:  12.5,
		},
		{
			name:  "underscore separators",
			input: "1_000_000",
			want:  1000000,
		},
		{
			name:  "scientific notation",
			input: "1.5e3",
			want:  1500,
		},
		{
			name:  "leading dot",
			input: ".75",
			want:  0.75,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrNotANumber,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrNotANumber,
		},
		{
			name:    "bare minus",
			input:   "-",
			wantErr: ErrNotANumber,
		},
		{
			name:    "bare dot",
			input:   ".",
			wantErr: ErrNotANumber,
		},
		{
			name:    "letters",
			input:   "abc",
			wantErr: ErrNotANumber,
		},
		{
			name:    "digits with trailing garbage",
			input:   "12x",
			wantErr: ErrNotANumber,
		},
		{
			name:    "two decimal points",
			input:   "1..2",
			wantErr: ErrNotANumber,
		},
		{
			name:    "currency symbol only",
			input:   "₹",
			wantErr: ErrNotANumber,
		},
		{
			name:    "infinity literal",
			input:   "Inf",
			wantErr: ErrNonFinite,
		},
		{
			name:    "nan literal",
			input:   "NaN",
			wantErr: ErrNonFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %g, want %g", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Any finite float formatted with strconv must parse back to itself.
	values := []float64{0, 1, -1, 0.1, 123456.789, -98765.4321, 1e-6, 3.1415926535, 1e15}
	for _, v := range values {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		got, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", s, err)
			continue
		}
		if got != v {
			t.Errorf("Parse(%q) = %g, want %g", s, got, v)
		}
	}
}

func TestParseOr(t *testing.T) {
	if got := ParseOr("garbage", 0); got != 0 {
		t.Errorf("ParseOr(garbage, 0) = %g, want 0", got)
	}
	if got := ParseOr("", 99); got != 99 {
		t.Errorf("ParseOr(empty, 99) = %g, want 99", got)
	}
	if got := ParseOr("2,000", -1); got != 2000 {
		t.Errorf("ParseOr(2,000, -1) = %g, want 2000", got)
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{"", "-", "+", ".", "..", "--5", "1-2", "%%", "₹₹₹", "NaN", "1e", "e9", "∞"}
	for _, s := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", s, r)
				}
			}()
			v, err := Parse(s)
			if err == nil {
				// NaN would make downstream formulas poisonous.
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("Parse(%q) returned non-finite %v with nil error", s, v)
				}
				_ = fmt.Sprintf("%g", v)
			}
		}()
	}
}
