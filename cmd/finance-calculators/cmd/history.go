package cmd

import (
	"context"
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/history"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/output"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyCalculator   string
	historyLimit        int
	historyOutputFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent calculations",
	Long: `History lists recorded calculations from the configured backend, most
recent first. Recording requires a persistent backend (sqlite, redis, or
postgres); the in-memory backend only lives as long as a single serve process.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyCalculator, "calculator", "c", "", "only list entries for this calculator")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", constants.DefaultHistoryLimit, "maximum number of entries to list")
	historyCmd.Flags().StringVarP(&historyOutputFormat, "output-format", "o", "", "output override: pretty, csv, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	outputFormat := conf.Output.Format
	if historyOutputFormat != "" {
		outputFormat = historyOutputFormat
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if historyLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", historyLimit)
	}

	backend := conf.History.Backend
	if backend == "" || backend == config.BackendMemory {
		logger.Warn("history backend is in-memory; entries recorded by other processes are not visible",
			zap.String("op", "history"),
		)
	}

	ctx := context.Background()
	store, err := history.NewStore(ctx, conf.History)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close history store",
				zap.String("op", "history"),
				zap.Error(err),
			)
		}
	}()

	entries, err := store.List(ctx, historyCalculator, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if outputFormat == constants.OutputFormatJSON {
		if entries == nil {
			entries = []history.Entry{}
		}
		text, err := output.JSONString(entries)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	doc := historyDocument(entries)
	if outputFormat == constants.OutputFormatCSV {
		output.CsvFormat(doc)
		return nil
	}
	output.PrettyFormat(doc)
	return nil
}

func historyDocument(entries []history.Entry) output.Document {
	doc := output.Document{
		Title:   "history",
		Headers: []string{"Created", "Calculator", "Inputs", "Result"},
	}
	for _, entry := range entries {
		doc.Rows = append(doc.Rows, []string{
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Calculator,
			string(entry.Inputs),
			string(entry.Result),
		})
	}
	return doc
}
