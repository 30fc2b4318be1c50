package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Snapshot is the portable "digital key" document produced by export
// and consumed by import. Profile and Vault carry the stored JSON
// verbatim; Stats is the actions counter as a decimal string, matching
// how the value lives in the kv table. Details holds every other
// namespaced key with its raw stored value, so progress sets, notes,
// artifacts, and the mastery counter survive the round trip opaquely.
type Snapshot struct {
	Profile   json.RawMessage   `json:"profile,omitempty"`
	Vault     json.RawMessage   `json:"vault,omitempty"`
	Stats     string            `json:"stats,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details,omitempty"`
}

// ExportSnapshot captures the entire stored state as one document.
func (s *Store) ExportSnapshot(ctx context.Context, now time.Time) (Snapshot, error) {
	snap := Snapshot{
		Timestamp: now.UTC(),
		Details:   map[string]string{},
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT key, value FROM kv WHERE key LIKE ? || '%'", keyspacePrefix)
		if err != nil {
			return unavailable("scan keys", err)
		}
		defer rows.Close()

		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return unavailable("scan row", err)
			}
			switch key {
			case keyProfile:
				snap.Profile = json.RawMessage(value)
			case keyVault:
				snap.Vault = json.RawMessage(value)
			case keyActions:
				snap.Stats = value
			default:
				snap.Details[key] = value
			}
		}
		if err := rows.Err(); err != nil {
			return unavailable("scan keys", err)
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// ImportSnapshot applies a snapshot document in a single transaction.
// The document must carry a profile or a stats value; anything else is
// rejected as INVALID_FORMAT with no partial apply. Only fields present
// in the document are overwritten; existing state under absent fields
// is left alone. Callers should reload all derived state afterwards.
func (s *Store) ImportSnapshot(ctx context.Context, raw []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return invalidFormat("snapshot is not valid JSON")
	}
	if len(snap.Profile) == 0 && snap.Stats == "" {
		return invalidFormat("snapshot carries neither profile nor stats")
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if len(snap.Profile) > 0 {
			if err := setValue(ctx, tx, keyProfile, string(snap.Profile)); err != nil {
				return err
			}
		}
		if len(snap.Vault) > 0 {
			if err := setValue(ctx, tx, keyVault, string(snap.Vault)); err != nil {
				return err
			}
		}
		if snap.Stats != "" {
			if err := setValue(ctx, tx, keyActions, snap.Stats); err != nil {
				return err
			}
		}
		// Deterministic write order for detail keys.
		keys := make([]string, 0, len(snap.Details))
		for key := range snap.Details {
			if !inKeyspace(key) {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := setValue(ctx, tx, key, snap.Details[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ExportFilename derives a download-style filename from the profile
// name and timestamp: non-alphanumeric runs collapse to hyphens.
func ExportFilename(profileName string, now time.Time) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, strings.TrimSpace(profileName))
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "sovereign"
	}
	return fmt.Sprintf("tpe-key-%s-%s.json", slug, now.UTC().Format("2006-01-02"))
}
