package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// Commission creates the profile singleton. The profile is immutable
// once created; a second attempt fails with PROFILE_EXISTS.
func (s *Store) Commission(ctx context.Context, name, title string, now time.Time) (principle.UserProfile, error) {
	profile := principle.UserProfile{
		Name:     name,
		Title:    title,
		JoinedAt: now.UTC(),
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, exists, err := getValue(ctx, tx, keyProfile)
		if err != nil {
			return err
		}
		if exists {
			return &StoreError{Code: ErrCodeProfileExists, Message: "profile already commissioned"}
		}
		raw, err := json.Marshal(profile)
		if err != nil {
			return unavailable("encode profile", err)
		}
		return setValue(ctx, tx, keyProfile, string(raw))
	})
	if err != nil {
		return principle.UserProfile{}, err
	}
	return profile, nil
}

// Profile reads the commissioned profile. The second return reports
// whether one exists.
func (s *Store) Profile(ctx context.Context) (principle.UserProfile, bool, error) {
	var (
		profile principle.UserProfile
		exists  bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		raw, ok, err := getValue(ctx, tx, keyProfile)
		if err != nil || !ok {
			return err
		}
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return unavailable("decode profile", err)
		}
		exists = true
		return nil
	})
	if err != nil {
		return principle.UserProfile{}, false, err
	}
	return profile, exists, nil
}
