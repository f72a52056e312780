package investment

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ErrNoSolution indicates the cash flow series never crosses zero net present
// value in the searchable rate domain, so no internal rate of return exists.
var ErrNoSolution = errors.New("investment: cash flows admit no internal rate of return")

// maxMonthlyIRR bounds the positive search domain. A root beyond 1000% per
// month is treated as nonexistent rather than chased into float overflow.
const maxMonthlyIRR = 10.0

// negativeRateLadder holds the probe points for loss-making series. The walk
// stops early once discounting underflows for long flow series.
var negativeRateLadder = []float64{-0.1, -0.3, -0.5, -0.7, -0.9, -0.99}

// IRRInput holds the parameters of an internal-rate-of-return calculation.
// The cash flow forms follow NPVInput: flat monthly or explicit series.
type IRRInput struct {
	InitialInvestment float64   `json:"initialInvestment"`
	MonthlyCashFlow   float64   `json:"monthlyCashFlow,omitempty"`
	DurationMonths    int       `json:"durationMonths,omitempty"`
	CashFlows         []float64 `json:"cashFlows,omitempty"`
}

// IRRResult reports the discovered rate in percent per month and its
// effective annual equivalent. Converged is false when the solver hit its
// iteration cap; MonthlyRate then holds the best estimate so far.
type IRRResult struct {
	MonthlyRate float64 `json:"monthlyRate"`
	AnnualRate  float64 `json:"annualRate"`
	Iterations  int     `json:"iterations"`
	Converged   bool    `json:"converged"`
}

// IRR finds the monthly rate at which the series {-initial, flows...} has
// zero net present value. The bracket around the root is grown outward from
// zero before handing off to the Brent solver, and non-convergence is
// reported through the result rather than papered over.
func IRR(in IRRInput) (IRRResult, error) {
	if err := validation.PositiveMax("initialInvestment", in.InitialInvestment, constants.MaxPrincipal); err != nil {
		return IRRResult{}, err
	}
	flows, err := monthlyFlows(in.MonthlyCashFlow, in.DurationMonths, in.CashFlows)
	if err != nil {
		return IRRResult{}, err
	}

	anyPositive := false
	for _, flow := range flows {
		if flow > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return IRRResult{}, fmt.Errorf("%w: no positive cash flow", ErrNoSolution)
	}

	npvAt := func(rate float64) float64 {
		return presentValue(flows, rate) - in.InitialInvestment
	}

	lo, hi, err := bracketRoot(npvAt)
	if err != nil {
		return IRRResult{}, err
	}

	root, err := numeric.Brent(npvAt, lo, hi, numeric.SolveOptions{})
	if err != nil {
		return IRRResult{}, fmt.Errorf("irr solve: %w", err)
	}

	annualGrowth, err := numeric.Power(1+root.Value, constants.MonthsPerYear)
	if err != nil {
		return IRRResult{}, fmt.Errorf("irr annualization: %w", err)
	}

	return IRRResult{
		MonthlyRate: numeric.RoundTo(root.Value*constants.PercentageMultiplier, 4),
		AnnualRate:  numeric.RoundTo((annualGrowth-1)*constants.PercentageMultiplier, 4),
		Iterations:  root.Iterations,
		Converged:   root.Converged,
	}, nil
}

// bracketRoot grows an interval around zero until the net present value
// changes sign. Positive roots are searched by doubling the upper bound,
// negative roots by walking the rate ladder toward -1.
func bracketRoot(npvAt func(float64) float64) (float64, float64, error) {
	atZero := npvAt(0)
	if atZero == 0 {
		return 0, 0, nil
	}

	if atZero > 0 {
		for hi := 0.1; hi <= maxMonthlyIRR; hi *= 2 {
			if npvAt(hi) <= 0 {
				return 0, hi, nil
			}
		}
		return 0, 0, fmt.Errorf("%w: net present value stays positive up to %.0f%% per month",
			ErrNoSolution, maxMonthlyIRR*constants.PercentageMultiplier)
	}

	for _, lo := range negativeRateLadder {
		at := npvAt(lo)
		if math.IsNaN(at) || math.IsInf(at, 0) {
			break
		}
		if at >= 0 {
			return lo, 0, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: net present value stays negative down to deeply negative rates", ErrNoSolution)
}
