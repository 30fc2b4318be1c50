package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCommission_CreatesProfile(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	profile, err := s.Commission(ctx, "Ada", "Sovereign Architect", now)
	if err != nil {
		t.Fatalf("Commission() failed: %v", err)
	}
	if profile.Name != "Ada" || profile.Title != "Sovereign Architect" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if !profile.JoinedAt.Equal(now) {
		t.Errorf("JoinedAt = %v, want %v", profile.JoinedAt, now)
	}

	got, exists, err := s.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if !exists {
		t.Fatal("profile should exist after commissioning")
	}
	if got != profile {
		t.Errorf("Profile() = %+v, want %+v", got, profile)
	}
}

func TestCommission_RefusesSecondAttempt(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Now()

	if _, err := s.Commission(ctx, "Ada", "Architect", now); err != nil {
		t.Fatalf("first Commission() failed: %v", err)
	}

	_, err := s.Commission(ctx, "Eve", "Intruder", now)
	if !IsProfileExists(err) {
		t.Fatalf("expected PROFILE_EXISTS, got %v", err)
	}

	// Original profile untouched
	got, _, err := s.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("profile name = %q, want %q", got.Name, "Ada")
	}
}

func TestProfile_MissingReportsNotExists(t *testing.T) {
	s := testStore(t)

	_, exists, err := s.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if exists {
		t.Error("profile should not exist on a fresh store")
	}
}
