package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/addrconv/internal/db"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS preferences (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL repository and makes sure the schema exists
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) GetPreference(ctx context.Context, key string) (db.Preference, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT key, value, updated_at FROM preferences WHERE key = $1
	`, key)
	return scanPreference(row)
}

func (r *Repository) SetPreference(ctx context.Context, arg db.SetPreferenceParams) (db.Preference, error) {
	if arg.Key == "" {
		return db.Preference{}, db.ErrEmptyKey
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO preferences (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING key, value, updated_at
	`, arg.Key, arg.Value)
	return scanPreference(row)
}

func (r *Repository) DeletePreference(ctx context.Context, key string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM preferences WHERE key = $1`, key)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanPreference(row pgx.Row) (db.Preference, error) {
	var p db.Preference
	err := row.Scan(&p.Key, &p.Value, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Preference{}, db.ErrNoRows
	}
	if err != nil {
		return db.Preference{}, err
	}
	return p, nil
}
