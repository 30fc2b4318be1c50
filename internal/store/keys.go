package store

import "strings"

// Key namespace, unchanged from the original deployment so snapshots
// round-trip across hosts.
const (
	keyProfile   = "tpe_profile"
	keyVault     = "tpe_vault"
	keyActions   = "tpe_stats_actions"
	keyMastery   = "tpe_stats_mastery"
	keyHubSignup = "tpe_hub_signup"

	// Per-record prefixes. Artifact data is written by renderers out
	// of scope here, but the prefix is still carried through snapshots.
	prefixProgress = "tpe_progress_"
	prefixNotes    = "tpe_notes_"
	prefixArtifact = "tpe_artifact_"

	keyspacePrefix = "tpe_"
)

func progressKey(recordID string) string { return prefixProgress + recordID }
func noteKey(recordID string) string     { return prefixNotes + recordID }

// inKeyspace reports whether a key belongs to this application's
// namespace. Import ignores anything outside it.
func inKeyspace(key string) bool {
	return strings.HasPrefix(key, keyspacePrefix)
}
