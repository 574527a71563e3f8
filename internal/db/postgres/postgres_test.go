package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jusunglee/addrconv/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ db.Repository = (*Repository)(nil)

// newTestRepo connects to TEST_DATABASE_URL; the tests are skipped without one.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	repo, err := New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.DeletePreference(context.Background(), "test_pccc")
		repo.Close()
	})
	return repo
}

func TestPreferenceRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetPreference(ctx, "test_pccc")
	assert.True(t, db.IsNoRows(err))

	p, err := repo.SetPreference(ctx, db.SetPreferenceParams{Key: "test_pccc", Value: "P123456789012"})
	require.NoError(t, err)
	assert.Equal(t, "P123456789012", p.Value)
	assert.False(t, p.UpdatedAt.IsZero())

	_, err = repo.SetPreference(ctx, db.SetPreferenceParams{Key: "test_pccc", Value: "P000000000000"})
	require.NoError(t, err)

	got, err := repo.GetPreference(ctx, "test_pccc")
	require.NoError(t, err)
	assert.Equal(t, "P000000000000", got.Value)

	n, err := repo.DeletePreference(ctx, "test_pccc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSetPreferenceRejectsEmptyKey(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.SetPreference(context.Background(), db.SetPreferenceParams{Value: "x"})
	assert.ErrorIs(t, err, db.ErrEmptyKey)
}
