package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := testStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	if _, err := src.Commission(ctx, "Ada", "Architect", now); err != nil {
		t.Fatalf("Commission() failed: %v", err)
	}
	if _, err := src.AppendVault(ctx, vaultItem("mental-001", "anxiety", now)); err != nil {
		t.Fatalf("AppendVault() failed: %v", err)
	}
	for _, step := range []int{0, 1, 2} {
		if _, _, err := src.ToggleProgress(ctx, "mental-001", step); err != nil {
			t.Fatalf("ToggleProgress() failed: %v", err)
		}
	}
	if err := src.SetNote(ctx, "mental-001", "a note"); err != nil {
		t.Fatalf("SetNote() failed: %v", err)
	}

	snap, err := src.ExportSnapshot(ctx, now)
	if err != nil {
		t.Fatalf("ExportSnapshot() failed: %v", err)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	dst := testStore(t)
	if err := dst.ImportSnapshot(ctx, raw); err != nil {
		t.Fatalf("ImportSnapshot() failed: %v", err)
	}

	profile, exists, err := dst.Profile(ctx)
	if err != nil || !exists {
		t.Fatalf("Profile() = %v, %v", exists, err)
	}
	if profile.Name != "Ada" {
		t.Errorf("profile name = %q, want %q", profile.Name, "Ada")
	}

	vault, err := dst.Vault(ctx)
	if err != nil {
		t.Fatalf("Vault() failed: %v", err)
	}
	if len(vault) != 1 || vault[0].ID != "mental-001" {
		t.Errorf("vault = %+v", vault)
	}

	steps, err := dst.Progress(ctx, "mental-001")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if len(steps) != 3 {
		t.Errorf("steps = %v, want 3 entries", steps)
	}

	note, _, err := dst.Note(ctx, "mental-001")
	if err != nil {
		t.Fatalf("Note() failed: %v", err)
	}
	if note != "a note" {
		t.Errorf("note = %q", note)
	}

	stats, err := dst.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if stats.Actions != 3 || stats.Unlocked != 1 {
		t.Errorf("stats = %+v, want actions 3 unlocked 1", stats)
	}
}

func TestImportSnapshot_StatsOnly(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := s.Commission(ctx, "Ada", "Architect", now); err != nil {
		t.Fatalf("Commission() failed: %v", err)
	}
	if _, err := s.AppendVault(ctx, vaultItem("biz-001", "profit", now)); err != nil {
		t.Fatalf("AppendVault() failed: %v", err)
	}

	if err := s.ImportSnapshot(ctx, []byte(`{"stats":"5"}`)); err != nil {
		t.Fatalf("ImportSnapshot() failed: %v", err)
	}

	stats, err := s.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if stats.Actions != 5 {
		t.Errorf("actions = %d, want 5", stats.Actions)
	}

	// Absent fields leave existing state untouched.
	profile, exists, err := s.Profile(ctx)
	if err != nil || !exists {
		t.Fatalf("Profile() = %v, %v", exists, err)
	}
	if profile.Name != "Ada" {
		t.Errorf("profile name = %q, want %q", profile.Name, "Ada")
	}
	vault, err := s.Vault(ctx)
	if err != nil {
		t.Fatalf("Vault() failed: %v", err)
	}
	if len(vault) != 1 {
		t.Errorf("vault length = %d, want 1", len(vault))
	}
}

func TestImportSnapshot_RejectsInvalidJSON(t *testing.T) {
	s := testStore(t)

	err := s.ImportSnapshot(context.Background(), []byte("{not json"))
	if !IsInvalidFormat(err) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestImportSnapshot_RejectsEmptyDocument(t *testing.T) {
	s := testStore(t)

	err := s.ImportSnapshot(context.Background(), []byte(`{"timestamp":"2025-03-01T00:00:00Z"}`))
	if !IsInvalidFormat(err) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestImportSnapshot_IgnoresForeignDetailKeys(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	doc := `{"stats":"1","details":{"evil_key":"x","tpe_notes_mental-001":"kept"}}`
	if err := s.ImportSnapshot(ctx, []byte(doc)); err != nil {
		t.Fatalf("ImportSnapshot() failed: %v", err)
	}

	note, exists, err := s.Note(ctx, "mental-001")
	if err != nil || !exists {
		t.Fatalf("Note() = %v, %v", exists, err)
	}
	if note != "kept" {
		t.Errorf("note = %q", note)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM kv WHERE key = 'evil_key'").Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 0 {
		t.Error("foreign key should not be imported")
	}
}

func TestExportFilename_Sanitizes(t *testing.T) {
	now := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)

	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "tpe-key-ada-lovelace-2025-03-01.json"},
		{"  J.R. \"Bob\" Dobbs  ", "tpe-key-j-r-bob-dobbs-2025-03-01.json"},
		{"!!!", "tpe-key-sovereign-2025-03-01.json"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.name, now); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
