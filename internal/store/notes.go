package store

import (
	"context"
	"database/sql"
)

// SetNote stores free-text commentary against a record, replacing any
// previous note.
func (s *Store) SetNote(ctx context.Context, recordID, text string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return setValue(ctx, tx, noteKey(recordID), text)
	})
}

// Note reads the note for a record. The second return reports whether
// one has been written.
func (s *Store) Note(ctx context.Context, recordID string) (string, bool, error) {
	var (
		text   string
		exists bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		text, exists, err = getValue(ctx, tx, noteKey(recordID))
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, exists, nil
}
