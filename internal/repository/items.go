package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

// ItemRepository persists each identity's ordered wardrobe in its own slot,
// keyed by lowercased email. Every mutation rewrites the identity's slot
// wholesale; there is no incremental update.
type ItemRepository struct {
	store storage.Store
}

// NewItemRepository creates an ItemRepository over the given slot store.
func NewItemRepository(store storage.Store) *ItemRepository {
	return &ItemRepository{store: store}
}

func itemsKey(email string) string {
	return "items:" + strings.ToLower(email)
}

// Load returns the identity's items, newest first. Absent and corrupt slots
// both read as empty; corruption is logged, never surfaced.
func (r *ItemRepository) Load(ctx context.Context, email string) ([]model.WardrobeItem, error) {
	var items []model.WardrobeItem
	err := storage.GetJSON(ctx, r.store, itemsKey(email), &items)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			slog.Warn("item slot corrupt, treating as empty", "email", email, "error", err)
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// Save replaces the identity's full item collection.
func (r *ItemRepository) Save(ctx context.Context, email string, items []model.WardrobeItem) error {
	return storage.PutJSON(ctx, r.store, itemsKey(email), items)
}
