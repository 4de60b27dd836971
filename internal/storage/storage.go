// Package storage provides the namespaced key-value slot stores backing the
// wardrobe data layer. Each slot holds one serialized value and every write
// replaces the slot wholesale.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a slot has never been written or was deleted.
	ErrNotFound = errors.New("slot not found")
	// ErrCorrupt is returned when slot content cannot be decoded. Callers
	// decide whether to degrade to an empty value or surface the failure.
	ErrCorrupt = errors.New("slot content corrupt")
)

// Store is a key-value slot store. Keys are namespaced strings such as
// "users" or "items:user@example.com"; values are opaque serialized bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON reads a slot and unmarshals it into out. An undecodable slot is
// reported as ErrCorrupt; an absent slot as ErrNotFound.
func GetJSON(ctx context.Context, s Store, key string, out any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return nil
}

// PutJSON marshals v and writes it to the slot.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}
