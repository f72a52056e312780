// Package history records completed calculations and lists them back, most
// recent first. Backends range from an in-memory ring buffer to redis, sqlite,
// and postgres, selected through configuration.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-calculators/internal/config"
)

// Entry is one recorded calculation.
type Entry struct {
	ID         string          `json:"id"`
	Calculator string          `json:"calculator"`
	Inputs     json.RawMessage `json:"inputs"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Store persists calculation entries. List returns entries most recent first;
// an empty calculator name lists across all calculators.
type Store interface {
	Save(ctx context.Context, entry Entry) error
	List(ctx context.Context, calculator string, limit int) ([]Entry, error)
	Close() error
}

// NewEntry builds an Entry from calculator inputs and results, stamping an ID
// and creation time.
func NewEntry(calculator string, inputs, result interface{}) (Entry, error) {
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode inputs: %w", err)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode result: %w", err)
	}

	return Entry{
		ID:         uuid.New().String(),
		Calculator: calculator,
		Inputs:     inputsJSON,
		Result:     resultJSON,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// NewStore constructs the history backend selected in the configuration.
func NewStore(ctx context.Context, cfg config.HistoryConfig) (Store, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return NewMemoryStore(cfg.Capacity), nil
	case config.BackendRedis:
		return NewRedisStore(cfg.Redis, cfg.Capacity), nil
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.SQLite.Path)
	case config.BackendPostgres:
		return NewPostgresStore(ctx, cfg.Postgres.URL)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
