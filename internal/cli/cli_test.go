package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
)

// stubResolver scripts engine behavior for command tests.
type stubResolver struct {
	record    principle.Record
	blueprint principle.Blueprint
	err       error
}

func (s *stubResolver) Resolve(ctx context.Context, query string) (principle.Record, error) {
	if s.err != nil {
		return principle.Record{}, s.err
	}
	return s.record, nil
}

func (s *stubResolver) SynthesizeBlueprint(ctx context.Context, burden, hand, history string) (principle.Blueprint, error) {
	if s.err != nil {
		return principle.Blueprint{}, s.err
	}
	return s.blueprint, nil
}

func testRootOptions(t *testing.T) *RootOptions {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return &RootOptions{Format: "text", store: s}
}

func builtinRecord(t *testing.T) principle.Record {
	t.Helper()
	record, ok := principle.Builtin("anxiety")
	if !ok {
		t.Fatal("builtin record missing")
	}
	return record
}

func upstreamErr() error {
	return &engine.ResolveError{
		Code:    engine.ErrCodeUpstreamFailure,
		Message: "service unreachable",
		Query:   "anything",
	}
}

func noMatchErr() error {
	return &engine.ResolveError{
		Code:    engine.ErrCodeNoMatch,
		Message: "no content",
		Query:   "anything",
	}
}

func vaultSeedItem(id string) principle.VaultItem {
	return principle.VaultItem{
		ID:            id,
		Category:      "Seed Category",
		CorePrinciple: "Seed principle.",
		Query:         "seed",
		UnlockedAt:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}
