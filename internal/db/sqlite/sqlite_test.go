package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jusunglee/addrconv/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ db.Repository = (*Repository)(nil)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestGetPreferenceMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetPreference(context.Background(), db.KeyPccc)
	assert.True(t, db.IsNoRows(err))
}

func TestSetPreferenceUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p, err := repo.SetPreference(ctx, db.SetPreferenceParams{Key: db.KeyPccc, Value: "P123456789012"})
	require.NoError(t, err)
	assert.Equal(t, db.KeyPccc, p.Key)
	assert.Equal(t, "P123456789012", p.Value)
	assert.False(t, p.UpdatedAt.IsZero())

	// Last write wins
	_, err = repo.SetPreference(ctx, db.SetPreferenceParams{Key: db.KeyPccc, Value: "P999999999999"})
	require.NoError(t, err)

	got, err := repo.GetPreference(ctx, db.KeyPccc)
	require.NoError(t, err)
	assert.Equal(t, "P999999999999", got.Value)
}

func TestSetPreferenceRejectsEmptyKey(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.SetPreference(context.Background(), db.SetPreferenceParams{Value: "x"})
	assert.ErrorIs(t, err, db.ErrEmptyKey)
}

func TestDeletePreference(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.SetPreference(ctx, db.SetPreferenceParams{Key: db.KeyPcccAutoSave, Value: "true"})
	require.NoError(t, err)

	n, err := repo.DeletePreference(ctx, db.KeyPcccAutoSave)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeletePreference(ctx, db.KeyPcccAutoSave)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.GetPreference(ctx, db.KeyPcccAutoSave)
	assert.True(t, db.IsNoRows(err))
}

func TestNewCreatesFileAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "addrconv.db")

	repo, err := New(ctx, "sqlite://"+path)
	require.NoError(t, err)
	_, err = repo.SetPreference(ctx, db.SetPreferenceParams{Key: db.KeyPccc, Value: "P123456789012"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := New(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.GetPreference(ctx, db.KeyPccc)
	require.NoError(t, err)
	assert.Equal(t, "P123456789012", got.Value)
}
