package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/repository"
)

var (
	ErrUnauthenticated  = errors.New("not signed in")
	ErrItemNameRequired = errors.New("item name is required")
)

// WardrobeService manages each identity's ordered item collection. Every
// operation takes the caller's resolved session and is rejected when it is
// anonymous; identities see disjoint collections.
type WardrobeService struct {
	items *repository.ItemRepository
}

// NewWardrobeService creates a new WardrobeService.
func NewWardrobeService(items *repository.ItemRepository) *WardrobeService {
	return &WardrobeService{items: items}
}

// Load returns the session identity's wardrobe, newest first. A never-used
// identity gets an empty collection.
func (s *WardrobeService) Load(ctx context.Context, session model.Session) ([]model.WardrobeItem, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	return s.items.Load(ctx, session.Email)
}

// Add synthesizes the id and creation time for a draft, prepends the item to
// the identity's collection and rewrites the slot. The returned item is the
// stored one.
func (s *WardrobeService) Add(ctx context.Context, session model.Session, draft model.ItemDraft) (model.WardrobeItem, error) {
	if !session.Authenticated() {
		return model.WardrobeItem{}, ErrUnauthenticated
	}
	if draft.Name == "" {
		return model.WardrobeItem{}, ErrItemNameRequired
	}

	item := model.WardrobeItem{
		ID:          newItemID(),
		Name:        draft.Name,
		Category:    model.NormalizeCategory(draft.Category),
		SubCategory: draft.SubCategory,
		ImageURL:    draft.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	existing, err := s.items.Load(ctx, session.Email)
	if err != nil {
		return model.WardrobeItem{}, err
	}

	updated := append([]model.WardrobeItem{item}, existing...)
	if err := s.items.Save(ctx, session.Email, updated); err != nil {
		return model.WardrobeItem{}, err
	}

	return item, nil
}

// Remove deletes an item by id and rewrites the slot. Removing an id that is
// not present leaves the collection unchanged.
func (s *WardrobeService) Remove(ctx context.Context, session model.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}

	items, err := s.items.Load(ctx, session.Email)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return s.items.Save(ctx, session.Email, kept)
}

// newItemID composes a millisecond timestamp with a random base36 token.
// Uniqueness is probabilistic, not cryptographically guaranteed, which is
// sufficient for per-identity item ids.
func newItemID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back to
		// the clock so id generation itself cannot error.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	token := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	if len(token) > 9 {
		token = token[:9]
	}
	return fmt.Sprintf("item-%d-%s", time.Now().UnixMilli(), token)
}
