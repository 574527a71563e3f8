package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jusunglee/addrconv/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens (creating if needed) the SQLite database at dbPath.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if dbPath != ":memory:" {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			isNew = true
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) GetPreference(ctx context.Context, key string) (db.Preference, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM preferences WHERE key = ?
	`, key)
	return scanPreference(row)
}

func (r *Repository) SetPreference(ctx context.Context, arg db.SetPreferenceParams) (db.Preference, error) {
	if arg.Key == "" {
		return db.Preference{}, db.ErrEmptyKey
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		RETURNING key, value, updated_at
	`, arg.Key, arg.Value)
	return scanPreference(row)
}

func (r *Repository) DeletePreference(ctx context.Context, key string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanPreference(row *sql.Row) (db.Preference, error) {
	var p db.Preference
	var updatedAtStr string
	err := row.Scan(&p.Key, &p.Value, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Preference{}, db.ErrNoRows
	}
	if err != nil {
		return db.Preference{}, err
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return p, nil
}
