package history

import (
	"context"
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists entries in PostgreSQL with JSONB payload columns.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database at url and prepares the schema.
func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres history requires a connection URL")
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		calculator TEXT NOT NULL,
		inputs JSONB NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_calculator ON history(calculator, created_at DESC);
	`

	_, err := s.pool.Exec(ctx, schema)
	return err
}

// Save inserts one entry.
func (s *PostgresStore) Save(ctx context.Context, entry Entry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO history (id, calculator, inputs, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.Calculator, []byte(entry.Inputs), []byte(entry.Result), entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// List returns entries most recent first, optionally filtered by calculator.
func (s *PostgresStore) List(ctx context.Context, calculator string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	var (
		rows pgx.Rows
		err  error
	)
	if calculator != "" {
		rows, err = s.pool.Query(ctx, `
			SELECT id, calculator, inputs, result, created_at
			FROM history
			WHERE calculator = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, calculator, limit)
	} else {
		rows, err = s.pool.Query(ctx, `
			SELECT id, calculator, inputs, result, created_at
			FROM history
			ORDER BY created_at DESC
			LIMIT $1
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var inputs, result []byte
		if err := rows.Scan(&entry.ID, &entry.Calculator, &inputs, &result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Inputs = inputs
		entry.Result = result
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
