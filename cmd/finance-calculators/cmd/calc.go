package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/history"
	"github.com/iwvelando/finance-calculators/pkg/output"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const historySaveTimeout = 5 * time.Second

var (
	calcInputFile    string
	calcOutputFormat string
)

var calcCmd = &cobra.Command{
	Use:   "calc <calculator>",
	Short: "Run one calculator from the command line",
	Long: `Calc reads calculator inputs as JSON from --input (or stdin when the
flag is omitted) and prints the result in the configured output format.
Numeric fields accept formatted strings such as "5,00,000" or "8.5%".

Calculators:
  loan, loan-schedule, loan-compare-terms
  interest-simple, interest-compound
  sip, lumpsum, fd, rd, ppf, gold
  roi, npv, irr
  tax-income, gst, hra

Examples:
  echo '{"principal": 500000, "annualRate": 12, "termMonths": 60}' | finance-calculators calc loan
  finance-calculators calc ppf --input ppf.json --output-format csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcInputFile, "input", "i", "", "path to a JSON input file (default: stdin)")
	calcCmd.Flags().StringVarP(&calcOutputFormat, "output-format", "o", "", "output override: pretty, csv, json")
}

func runCalc(cmd *cobra.Command, args []string) error {
	name := args[0]

	conf, err := loadConfiguration()
	if err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if calcOutputFormat != "" {
		outputFormat = calcOutputFormat
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	data, err := readInput(calcInputFile)
	if err != nil {
		return err
	}

	runner := catalog.NewRunner(logger, conf.TaxRegimes(), conf.Tax.DefaultRegime)
	inputs, result, err := runner.Run(name, data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	saveHistory(conf, logger, name, inputs, result)

	return output.Render(outputFormat, name, result)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// saveHistory records the run when a persistent backend is configured.
// Memory history lives only as long as one process, so it is skipped here.
func saveHistory(conf *config.Configuration, logger *zap.Logger, name string, inputs, result interface{}) {
	backend := conf.History.Backend
	if backend == "" || backend == config.BackendMemory {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), historySaveTimeout)
	defer cancel()

	store, err := history.NewStore(ctx, conf.History)
	if err != nil {
		logger.Warn("failed to open history store",
			zap.String("op", "calc"),
			zap.Error(err),
		)
		return
	}
	defer func() {
		_ = store.Close()
	}()

	entry, err := history.NewEntry(name, inputs, result)
	if err == nil {
		err = store.Save(ctx, entry)
	}
	if err != nil {
		logger.Warn("failed to record history",
			zap.String("op", "calc"),
			zap.String("calculator", name),
			zap.Error(err),
		)
	}
}
