// Package repository maps the domain's stores onto key-value slots: one slot
// for the full identity list, one slot per identity for its item collection,
// and an ephemeral token-addressed slot per session.
package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

const usersKey = "users"

// CredentialStore persists the full set of registered identities in a single
// slot. It is pure data access: Append performs no uniqueness check, that is
// the auth service's responsibility.
type CredentialStore struct {
	store storage.Store
}

// NewCredentialStore creates a CredentialStore over the given slot store.
func NewCredentialStore(store storage.Store) *CredentialStore {
	return &CredentialStore{store: store}
}

// List returns every registered identity. An absent slot reads as empty; a
// corrupt slot is logged and also reads as empty, so registration remains
// possible after storage damage.
func (c *CredentialStore) List(ctx context.Context) ([]model.Identity, error) {
	var identities []model.Identity
	err := storage.GetJSON(ctx, c.store, usersKey, &identities)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			slog.Warn("credential slot corrupt, treating as empty", "error", err)
			return nil, nil
		}
		return nil, err
	}
	return identities, nil
}

// Append adds an identity to the stored list and rewrites the slot.
func (c *CredentialStore) Append(ctx context.Context, identity model.Identity) error {
	identities, err := c.List(ctx)
	if err != nil {
		return err
	}
	return storage.PutJSON(ctx, c.store, usersKey, append(identities, identity))
}
