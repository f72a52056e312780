// Package catalog names every calculator in the suite and runs them from raw
// JSON input. The HTTP server and the command line both dispatch through it,
// so calculators registered here appear in both surfaces automatically.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/calculators/interest"
	"github.com/iwvelando/finance-calculators/pkg/calculators/investment"
	"github.com/iwvelando/finance-calculators/pkg/calculators/loan"
	"github.com/iwvelando/finance-calculators/pkg/calculators/savings"
	"github.com/iwvelando/finance-calculators/pkg/calculators/tax"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"go.uber.org/zap"
)

// Entry describes one calculator: its short name, its route relative to the
// API's calculator prefix, and a one-line description.
type Entry struct {
	Name        string
	Route       string
	Description string
	run         func(*Runner, []byte) (interface{}, interface{}, error)
}

var entries = []Entry{
	{"loan", "loan", "equated monthly installment with payment totals", runLoan},
	{"loan-schedule", "loan/schedule", "amortization schedule with prepayment support", runLoanSchedule},
	{"loan-compare-terms", "loan/compare-terms", "loan term sweep under a payment budget", runLoanCompareTerms},
	{"interest-simple", "interest/simple", "flat interest without compounding", runInterestSimple},
	{"interest-compound", "interest/compound", "compound interest at a configurable frequency", runInterestCompound},
	{"sip", "savings/sip", "systematic investment plan projection", runSIP},
	{"lumpsum", "savings/lumpsum", "one-time investment projection", runLumpsum},
	{"fd", "savings/fd", "fixed deposit maturity", runFixedDeposit},
	{"rd", "savings/rd", "recurring deposit maturity", runRecurringDeposit},
	{"ppf", "savings/ppf", "public provident fund projection with yearly ledger", runPPF},
	{"gold", "savings/gold", "gold holding appreciation", runGold},
	{"roi", "investment/roi", "return on investment with annualized growth", runROI},
	{"npv", "investment/npv", "net present value of monthly cash flows", runNPV},
	{"irr", "investment/irr", "internal rate of return of monthly cash flows", runIRR},
	{"tax-income", "tax/income", "income tax under the configured slab regimes", runTaxIncome},
	{"gst", "tax/gst", "GST amount with CGST/SGST/IGST split", runGST},
	{"hra", "tax/hra", "HRA exemption under the statutory minimum rule", runHRA},
}

// Runner executes calculators by name against a fixed set of tax regimes.
type Runner struct {
	regimes       []tax.Regime
	defaultRegime string
	schedules     *loan.ScheduleGenerator
	byName        map[string]*Entry
}

// NewRunner builds a runner. Empty regimes fall back to the built-in regime
// set, and an empty default regime resolves to "new".
func NewRunner(logger *zap.Logger, regimes []tax.Regime, defaultRegime string) *Runner {
	if len(regimes) == 0 {
		regimes = tax.DefaultRegimes()
	}
	if defaultRegime == "" {
		defaultRegime = "new"
	}

	r := &Runner{
		regimes:       regimes,
		defaultRegime: defaultRegime,
		schedules:     loan.NewScheduleGenerator(logger),
		byName:        make(map[string]*Entry, len(entries)),
	}
	for i := range entries {
		r.byName[entries[i].Name] = &entries[i]
	}
	return r
}

// Entries lists every calculator in registration order.
func (r *Runner) Entries() []Entry {
	return entries
}

// Run executes the named calculator, returning the decoded inputs alongside
// the result. Unknown names return a *RequestError.
func (r *Runner) Run(name string, data []byte) (interface{}, interface{}, error) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, nil, &RequestError{msg: fmt.Sprintf("unknown calculator %q", name)}
	}
	return entry.run(r, data)
}

// RequestError marks malformed input: unparseable JSON, an unknown
// calculator, or a payload that does not fit the calculator's input shape.
type RequestError struct {
	msg string
}

func (e *RequestError) Error() string {
	return e.msg
}

// decodeInput parses a request body into a calculator input struct. String
// values anywhere in the payload that read as numbers (including grouped or
// currency-prefixed forms) are converted before the typed decode.
func decodeInput(data []byte, dst interface{}) error {
	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return &RequestError{msg: fmt.Sprintf("invalid JSON: %v", err)}
	}

	normalized, err := json.Marshal(normalizeNumbers(payload))
	if err != nil {
		return &RequestError{msg: fmt.Sprintf("failed to normalize input: %v", err)}
	}

	if err := json.Unmarshal(normalized, dst); err != nil {
		return &RequestError{msg: fmt.Sprintf("invalid input: %v", err)}
	}
	return nil
}

// normalizeNumbers walks a decoded JSON tree and replaces string leaves that
// parse as numbers with their numeric value. Strings that do not parse (words
// like "quarterly" or month labels like "2026-01") pass through untouched.
func normalizeNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	case string:
		if parsed, err := numeric.Parse(v); err == nil {
			return parsed
		}
		return v
	default:
		return value
	}
}

func runLoan(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in loan.Input
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := loan.Calculate(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runLoanSchedule(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in loan.ScheduleInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := r.schedules.BuildSchedule(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runLoanCompareTerms(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in loan.TermComparisonInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := loan.CompareTerm(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runInterestSimple(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in interest.SimpleInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := interest.Simple(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runInterestCompound(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in interest.CompoundInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := interest.Compound(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runSIP(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.SIPInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.SIP(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runLumpsum(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.LumpsumInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.Lumpsum(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runFixedDeposit(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.FixedDepositInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.FixedDeposit(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runRecurringDeposit(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.RecurringDepositInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.RecurringDeposit(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runPPF(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.PPFInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.PPF(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runGold(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in savings.GoldInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := savings.Gold(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runROI(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in investment.ROIInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := investment.ROI(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runNPV(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in investment.NPVInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := investment.NPV(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runIRR(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in investment.IRRInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := investment.IRR(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

// incomeRequest is the wire form of the income tax calculator: callers name a
// regime rather than sending a full slab table. An empty regime resolves to
// the runner's default.
type incomeRequest struct {
	AnnualIncome float64 `json:"annualIncome"`
	Regime       string  `json:"regime,omitempty"`
}

func runTaxIncome(r *Runner, data []byte) (interface{}, interface{}, error) {
	var req incomeRequest
	if err := decodeInput(data, &req); err != nil {
		return nil, nil, err
	}

	name := req.Regime
	if name == "" {
		name = r.defaultRegime
	}
	regime, ok := tax.RegimeByName(r.regimes, name)
	if !ok {
		return nil, nil, validation.NewFieldError("regime", "unknown tax regime %q", name)
	}
	req.Regime = regime.Name

	result, err := tax.Income(tax.IncomeInput{
		AnnualIncome: req.AnnualIncome,
		Regime:       regime,
	})
	if err != nil {
		return nil, nil, err
	}
	return req, result, nil
}

func runGST(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in tax.GSTInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := tax.GST(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}

func runHRA(r *Runner, data []byte) (interface{}, interface{}, error) {
	var in tax.HRAInput
	if err := decodeInput(data, &in); err != nil {
		return nil, nil, err
	}
	result, err := tax.HRA(in)
	if err != nil {
		return nil, nil, err
	}
	return in, result, nil
}
