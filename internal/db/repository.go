package db

import (
	"context"
	"time"
)

// Preference keys. These are the only values the application persists.
const (
	KeyPccc         = "pccc"
	KeyPcccAutoSave = "pccc_autosave"
)

// Preference is a single stored key/value setting.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type SetPreferenceParams struct {
	Key   string
	Value string
}

// Repository defines the interface for preference storage
type Repository interface {
	// GetPreference returns an error satisfying IsNoRows when key is unset.
	GetPreference(ctx context.Context, key string) (Preference, error)
	// SetPreference inserts or overwrites key. Last write wins.
	SetPreference(ctx context.Context, arg SetPreferenceParams) (Preference, error)
	DeletePreference(ctx context.Context, key string) (int64, error)

	// Lifecycle
	Close() error
}
