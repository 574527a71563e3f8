// Package preferences remembers the user's customs clearance code between
// runs, but only when the user has opted in to saving it.
package preferences

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jusunglee/addrconv/internal/db"
)

// Pccc is the stored customs code together with the opt-in flag.
type Pccc struct {
	Value    string
	AutoSave bool
}

type Store struct {
	repo db.Repository
}

func NewStore(repo db.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the saved code and opt-in flag. Missing keys are not an error;
// they read as an empty code with auto-save off.
func (s *Store) Load(ctx context.Context) (Pccc, error) {
	var out Pccc

	flag, err := s.repo.GetPreference(ctx, db.KeyPcccAutoSave)
	switch {
	case db.IsNoRows(err):
		return out, nil
	case err != nil:
		return out, fmt.Errorf("reading %s: %w", db.KeyPcccAutoSave, err)
	}
	out.AutoSave, _ = strconv.ParseBool(flag.Value)
	if !out.AutoSave {
		return out, nil
	}

	code, err := s.repo.GetPreference(ctx, db.KeyPccc)
	switch {
	case db.IsNoRows(err):
		return out, nil
	case err != nil:
		return out, fmt.Errorf("reading %s: %w", db.KeyPccc, err)
	}
	out.Value = code.Value
	return out, nil
}

// Save records the opt-in flag and, when it is on, the code itself. Turning
// auto-save off forgets any previously stored code.
func (s *Store) Save(ctx context.Context, value string, autoSave bool) error {
	if _, err := s.repo.SetPreference(ctx, db.SetPreferenceParams{
		Key:   db.KeyPcccAutoSave,
		Value: strconv.FormatBool(autoSave),
	}); err != nil {
		return fmt.Errorf("writing %s: %w", db.KeyPcccAutoSave, err)
	}

	if !autoSave {
		if _, err := s.repo.DeletePreference(ctx, db.KeyPccc); err != nil {
			return fmt.Errorf("clearing %s: %w", db.KeyPccc, err)
		}
		return nil
	}

	if _, err := s.repo.SetPreference(ctx, db.SetPreferenceParams{
		Key:   db.KeyPccc,
		Value: value,
	}); err != nil {
		return fmt.Errorf("writing %s: %w", db.KeyPccc, err)
	}
	return nil
}
