package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists entries in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and prepares the
// schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		calculator TEXT NOT NULL,
		inputs TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_calculator ON history(calculator, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save inserts one entry.
func (s *SQLiteStore) Save(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, calculator, inputs, result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Calculator, string(entry.Inputs), string(entry.Result), entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// List returns entries most recent first, optionally filtered by calculator.
func (s *SQLiteStore) List(ctx context.Context, calculator string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	var (
		rows *sql.Rows
		err  error
	)
	if calculator != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, calculator, inputs, result, created_at
			FROM history
			WHERE calculator = ?
			ORDER BY created_at DESC
			LIMIT ?
		`, calculator, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, calculator, inputs, result, created_at
			FROM history
			ORDER BY created_at DESC
			LIMIT ?
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var inputs, result string
		if err := rows.Scan(&entry.ID, &entry.Calculator, &inputs, &result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Inputs = json.RawMessage(inputs)
		entry.Result = json.RawMessage(result)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history entries: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
