package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// AppendVault prepends item to the vault unless an entry with the same
// id is already present. Returns whether the item was added. The vault
// is unbounded and newest-first.
func (s *Store) AppendVault(ctx context.Context, item principle.VaultItem) (bool, error) {
	added := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		vault, err := readVault(ctx, tx)
		if err != nil {
			return err
		}
		for _, existing := range vault {
			if existing.ID == item.ID {
				return nil
			}
		}
		vault = append([]principle.VaultItem{item}, vault...)
		if err := writeVault(ctx, tx, vault); err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

// Vault returns the vault history, newest first. An empty vault yields
// an empty slice.
func (s *Store) Vault(ctx context.Context) ([]principle.VaultItem, error) {
	var vault []principle.VaultItem
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		vault, err = readVault(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return vault, nil
}

func readVault(ctx context.Context, tx *sql.Tx) ([]principle.VaultItem, error) {
	raw, ok, err := getValue(ctx, tx, keyVault)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []principle.VaultItem{}, nil
	}
	var vault []principle.VaultItem
	if err := json.Unmarshal([]byte(raw), &vault); err != nil {
		return nil, unavailable("decode vault", err)
	}
	return vault, nil
}

func writeVault(ctx context.Context, tx *sql.Tx, vault []principle.VaultItem) error {
	raw, err := json.Marshal(vault)
	if err != nil {
		return unavailable("encode vault", err)
	}
	return setValue(ctx, tx, keyVault, string(raw))
}
