package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type hubSignup struct {
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// SaveHubSignup records a mailing-list signup locally. Nothing is
// transmitted anywhere; the record rides along in export snapshots.
func (s *Store) SaveHubSignup(ctx context.Context, email string, now time.Time) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		raw, err := json.Marshal(hubSignup{Email: email, JoinedAt: now.UTC()})
		if err != nil {
			return unavailable("encode signup", err)
		}
		return setValue(ctx, tx, keyHubSignup, string(raw))
	})
}
