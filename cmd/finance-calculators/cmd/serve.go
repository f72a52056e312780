package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/finance-calculators/internal/history"
	"github.com/iwvelando/finance-calculators/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator HTTP API",
	Long: `Serve exposes every calculator as a JSON POST endpoint under
/api/calculators/, plus catalog discovery, calculation history, version,
and health endpoints.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "serve"),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := history.NewStore(ctx, conf.History)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close history store",
				zap.String("op", "serve"),
				zap.Error(err),
			)
		}
	}()

	handler := server.NewHandler(logger, conf, store, Version)

	srv := &http.Server{
		Addr:    conf.Server.Address,
		Handler: handler,
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "serve"),
			zap.String("address", conf.Server.Address),
			zap.String("historyBackend", conf.History.Backend),
			zap.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		logger.Info("shutting down", zap.String("op", "serve"))
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
