package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNoRows is returned when a preference is not stored
	ErrNoRows = errors.New("no rows in result set")
	// ErrEmptyKey is returned when a preference is written without a key
	ErrEmptyKey = errors.New("preference key is empty")
)

// IsNoRows reports whether err means the preference was not found, whichever
// backend produced it.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
