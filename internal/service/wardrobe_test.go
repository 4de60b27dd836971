package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/repository"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

func newTestWardrobeService() *WardrobeService {
	return NewWardrobeService(repository.NewItemRepository(storage.NewMemory()))
}

var testSession = model.Session{Email: "a@example.com"}

func TestWardrobeRejectsAnonymous(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()
	anonymous := model.Session{}

	if _, err := svc.Load(ctx, anonymous); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Load() error = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Add(ctx, anonymous, model.ItemDraft{Name: "Tee"}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Add() error = %v, want ErrUnauthenticated", err)
	}
	if err := svc.Remove(ctx, anonymous, "item-1"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Remove() error = %v, want ErrUnauthenticated", err)
	}
}

func TestAddRequiresName(t *testing.T) {
	svc := newTestWardrobeService()

	_, err := svc.Add(context.Background(), testSession, model.ItemDraft{Name: ""})
	if !errors.Is(err, ErrItemNameRequired) {
		t.Errorf("Add() error = %v, want ErrItemNameRequired", err)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()

	first, err := svc.Add(ctx, testSession, model.ItemDraft{Name: "Tee", Category: "Tops"})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	second, err := svc.Add(ctx, testSession, model.ItemDraft{Name: "Jeans", Category: "Bottoms"})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	items, err := svc.Load(ctx, testSession)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Load() = %d items, want 2", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Errorf("Load() order = [%s, %s], want newest first", items[0].ID, items[1].ID)
	}
}

func TestAddSynthesizesIDAndCreatedAt(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	item, err := svc.Add(ctx, testSession, model.ItemDraft{Name: "Tee", Category: "Tops"})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	if !strings.HasPrefix(item.ID, "item-") {
		t.Errorf("Add() id = %q, want item- prefix", item.ID)
	}
	if item.CreatedAt.Before(before) {
		t.Errorf("Add() createdAt = %v, earlier than call time", item.CreatedAt)
	}

	other, _ := svc.Add(ctx, testSession, model.ItemDraft{Name: "Tee 2", Category: "Tops"})
	if other.ID == item.ID {
		t.Errorf("Add() reused id %q", item.ID)
	}
}

func TestAddNormalizesUnknownCategory(t *testing.T) {
	svc := newTestWardrobeService()

	item, err := svc.Add(context.Background(), testSession, model.ItemDraft{Name: "Thing", Category: "Spacesuit"})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if item.Category != model.CategoryUnknown {
		t.Errorf("Add() category = %q, want Unknown", item.Category)
	}
}

func TestRemoveDeletesByID(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()

	item, _ := svc.Add(ctx, testSession, model.ItemDraft{Name: "Tee", Category: "Tops"})
	kept, _ := svc.Add(ctx, testSession, model.ItemDraft{Name: "Jeans", Category: "Bottoms"})

	if err := svc.Remove(ctx, testSession, item.ID); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}

	items, _ := svc.Load(ctx, testSession)
	if len(items) != 1 || items[0].ID != kept.ID {
		t.Errorf("Load() after remove = %+v, want only %q", items, kept.ID)
	}
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()

	svc.Add(ctx, testSession, model.ItemDraft{Name: "Tee", Category: "Tops"})

	if err := svc.Remove(ctx, testSession, "item-never-existed"); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}

	items, _ := svc.Load(ctx, testSession)
	if len(items) != 1 {
		t.Errorf("Load() after no-op remove = %d items, want 1", len(items))
	}
}

func TestCollectionsAreIsolatedPerIdentity(t *testing.T) {
	svc := newTestWardrobeService()
	ctx := context.Background()

	sessionA := model.Session{Email: "a@example.com"}
	sessionB := model.Session{Email: "b@example.com"}

	svc.Add(ctx, sessionA, model.ItemDraft{Name: "Tee", Category: "Tops"})

	itemsB, err := svc.Load(ctx, sessionB)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(itemsB) != 0 {
		t.Errorf("identity B sees identity A's items: %+v", itemsB)
	}
}
