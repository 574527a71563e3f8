package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.False(t, IsNoRows(nil))
	assert.True(t, IsNoRows(ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("getting preference: %w", ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("connection refused")))
	assert.False(t, IsNoRows(ErrEmptyKey))
}

func TestIsPostgresURL(t *testing.T) {
	assert.True(t, IsPostgresURL("postgres://user@localhost/addrconv"))
	assert.True(t, IsPostgresURL("postgresql://localhost:5432/addrconv"))
	assert.False(t, IsPostgresURL("sqlite:///tmp/addrconv.db"))
	assert.False(t, IsPostgresURL(":memory:"))
	assert.False(t, IsPostgresURL("/home/me/.config/addrconv/addrconv.db"))
}
