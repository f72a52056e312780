// Package server exposes the calculator catalog over HTTP. Every calculator
// is a POST endpoint taking a JSON body; numeric fields additionally accept
// formatted strings like "5,00,000" or "8.5%".
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/history"
	"github.com/iwvelando/finance-calculators/pkg/calculators/interest"
	"github.com/iwvelando/finance-calculators/pkg/calculators/investment"
	"github.com/iwvelando/finance-calculators/pkg/calculators/loan"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"go.uber.org/zap"
)

const calculatorPrefix = "/api/calculators/"

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	store       history.Store
	runner      *catalog.Runner
	catalog     []catalogEntry
}

type catalogEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// NewHandler constructs the HTTP handler that serves the calculator API.
// A nil store disables history endpoints; a nil configuration falls back to
// defaults.
func NewHandler(logger *zap.Logger, cfg *config.Configuration, store history.Store, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &config.Configuration{}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.Server.MaxBodySizeBytes(),
		version:     trimmedVersion,
		store:       store,
		runner:      catalog.NewRunner(logger, cfg.TaxRegimes(), cfg.Tax.DefaultRegime),
	}

	mux := http.NewServeMux()

	for _, entry := range h.runner.Entries() {
		path := calculatorPrefix + entry.Route
		mux.HandleFunc(path, h.handleCalculator(entry.Name))
		h.catalog = append(h.catalog, catalogEntry{
			Name:        entry.Name,
			Path:        path,
			Description: entry.Description,
		})
	}

	// Catalog listing for discovery
	mux.HandleFunc("/api/calculators", h.handleCatalog)

	// Recent calculation history
	mux.HandleFunc("/api/history", h.handleHistory)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	mux.HandleFunc("/healthz", h.handleHealth)

	var root http.Handler = mux
	if cfg.Server.RateLimit > 0 {
		limiter := newRateLimiter(cfg.Server.RateLimit, time.Minute)
		root = rateLimitMiddleware(limiter, root)
	}
	return root
}

// handleCalculator wraps one calculator with the shared request plumbing:
// method check, body limit, error mapping, history, and response encoding.
func (h *handler) handleCalculator(name string) http.HandlerFunc {
	op := "server." + name
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()

		body, ok := h.readBody(w, r, op)
		if !ok {
			return
		}

		inputs, result, err := h.runner.Run(name, body)
		if err != nil {
			h.respondCalcError(w, op, err)
			return
		}

		h.recordHistory(r.Context(), name, inputs, result)

		h.logger.Info("calculation completed",
			zap.String("op", op),
			zap.String("calculator", name),
			zap.Duration("duration", time.Since(start)),
		)

		h.writeJSON(w, http.StatusOK, result)
	}
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"calculators": h.catalog,
	})
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.store == nil {
		h.respondErrorWithOp(w, http.StatusServiceUnavailable, "history is disabled", "server.handleHistory")
		return
	}

	limit := constants.DefaultHistoryLimit
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", rawLimit), "server.handleHistory")
			return
		}
		if parsed > constants.DefaultHistoryCapacity {
			parsed = constants.DefaultHistoryCapacity
		}
		limit = parsed
	}

	entries, err := h.store.List(r.Context(), r.URL.Query().Get("calculator"), limit)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to list history: %v", err), "server.handleHistory")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readBody drains the request body under the configured size limit, writing
// the error response itself when the read fails.
func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}
	return body, true
}

func (h *handler) recordHistory(ctx context.Context, name string, inputs, result interface{}) {
	if h.store == nil {
		return
	}

	entry, err := history.NewEntry(name, inputs, result)
	if err == nil {
		err = h.store.Save(ctx, entry)
	}
	if err != nil {
		h.logger.Warn("failed to record history",
			zap.String("op", "server.recordHistory"),
			zap.String("calculator", name),
			zap.Error(err),
		)
	}
}

// statusForError maps calculator failures onto HTTP statuses: decode and
// validation failures are the client's fault, no-solution outcomes on valid
// input are unprocessable, anything else is a server error.
func statusForError(err error) int {
	var reqErr *catalog.RequestError
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &reqErr), errors.As(err, &fieldErr):
		return http.StatusBadRequest
	case errors.Is(err, loan.ErrNeverAmortizes),
		errors.Is(err, loan.ErrNoAffordableTerm),
		errors.Is(err, interest.ErrTooManyPeriods),
		errors.Is(err, investment.ErrNoSolution),
		errors.Is(err, numeric.ErrNoBracket),
		errors.Is(err, numeric.ErrNonFinite),
		errors.Is(err, numeric.ErrDomain),
		errors.Is(err, numeric.ErrDivisionByZero):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondCalcError(w http.ResponseWriter, op string, err error) {
	status := statusForError(err)

	payload := map[string]string{"error": err.Error()}
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		payload["field"] = fieldErr.Field
	}

	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", err.Error()),
	)

	h.writeJSON(w, status, payload)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
