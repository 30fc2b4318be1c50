// Package store is the local persistence layer: profile singleton,
// vault index, per-record progress sets, aggregate counters, notes,
// and the export/import snapshot.
//
// Storage is a single SQLite key-value table whose keys mirror the
// original deployment's namespaced layout (tpe_profile, tpe_vault,
// tpe_stats_actions, tpe_progress_<id>, ...). Keeping the flat
// key-value shape makes the exported snapshot byte-compatible with the
// original "digital key" document while the database gives every
// operation a real transaction: a progress toggle writes the progress
// set and adjusts the actions counter in one commit, eliminating the
// drift window a non-transactional store would have.
//
// Every operation wraps underlying database failures as a StoreError
// with code STORAGE_UNAVAILABLE so callers can degrade to session-only
// behavior instead of crashing.
package store
