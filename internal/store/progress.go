package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// Progress returns the set of completed step indices for a record,
// sorted ascending. A record with no progress yields an empty slice.
func (s *Store) Progress(ctx context.Context, recordID string) ([]int, error) {
	var steps []int
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		steps, err = readProgress(ctx, tx, recordID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// ToggleProgress flips one step of a record's action plan and adjusts
// the actions counter in the same transaction, so the counter can never
// drift from the sets it summarizes. A toggle-on that completes the
// full plan also increments the mastery counter.
//
// Returns the updated step set and whether the step is now marked done.
func (s *Store) ToggleProgress(ctx context.Context, recordID string, step int) ([]int, bool, error) {
	var (
		steps []int
		done  bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		steps, err = readProgress(ctx, tx, recordID)
		if err != nil {
			return err
		}

		idx := sort.SearchInts(steps, step)
		if idx < len(steps) && steps[idx] == step {
			steps = append(steps[:idx], steps[idx+1:]...)
			done = false
		} else {
			steps = append(steps, step)
			sort.Ints(steps)
			done = true
		}

		if err := writeProgress(ctx, tx, recordID, steps); err != nil {
			return err
		}

		delta := -1
		if done {
			delta = 1
		}
		if err := adjustCounter(ctx, tx, keyActions, delta); err != nil {
			return err
		}
		if done && len(steps) == principle.ActionPlanSteps {
			if err := adjustCounter(ctx, tx, keyMastery, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return steps, done, nil
}

// LoadStats assembles the dashboard counters. Actions and mastery come
// straight from their counters; unlocked is recomputed from the number
// of progress keys so it self-heals after an import.
func (s *Store) LoadStats(ctx context.Context) (principle.Stats, error) {
	var stats principle.Stats
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if stats.Actions, err = readCounter(ctx, tx, keyActions); err != nil {
			return err
		}
		if stats.Mastery, err = readCounter(ctx, tx, keyMastery); err != nil {
			return err
		}
		row := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM kv WHERE key LIKE ? || '%'", prefixProgress)
		if err := row.Scan(&stats.Unlocked); err != nil {
			return unavailable("count progress keys", err)
		}
		return nil
	})
	if err != nil {
		return principle.Stats{}, err
	}
	return stats, nil
}

func readProgress(ctx context.Context, tx *sql.Tx, recordID string) ([]int, error) {
	raw, ok, err := getValue(ctx, tx, progressKey(recordID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []int{}, nil
	}
	var steps []int
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, unavailable("decode progress", err)
	}
	sort.Ints(steps)
	return steps, nil
}

func writeProgress(ctx context.Context, tx *sql.Tx, recordID string, steps []int) error {
	raw, err := json.Marshal(steps)
	if err != nil {
		return unavailable("encode progress", err)
	}
	return setValue(ctx, tx, progressKey(recordID), string(raw))
}

// Counters are stored as decimal strings, like every other value in the
// kv table. Missing or unparseable counters read as zero.
func readCounter(ctx context.Context, tx *sql.Tx, key string) (int, error) {
	raw, ok, err := getValue(ctx, tx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func adjustCounter(ctx context.Context, tx *sql.Tx, key string, delta int) error {
	n, err := readCounter(ctx, tx, key)
	if err != nil {
		return err
	}
	n += delta
	if n < 0 {
		n = 0
	}
	return setValue(ctx, tx, key, strconv.Itoa(n))
}
