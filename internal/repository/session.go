package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

// SessionStore holds the authenticated identity for each live session token.
// It is backed by an ephemeral store, so sessions die with the process,
// the server-side analog of tab-scoped session storage.
type SessionStore struct {
	store storage.Store
}

// NewSessionStore creates a SessionStore over the given (ephemeral) slot store.
func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Get resolves a token to its session. The second return value is false for
// unknown tokens and for corrupt slots, which are logged and read as absent.
func (s *SessionStore) Get(ctx context.Context, token string) (model.Session, bool) {
	var session model.Session
	err := storage.GetJSON(ctx, s.store, sessionKey(token), &session)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("session slot unreadable, treating as absent", "error", err)
		}
		return model.Session{}, false
	}
	return session, true
}

// Set binds a session to a token.
func (s *SessionStore) Set(ctx context.Context, token string, session model.Session) error {
	return storage.PutJSON(ctx, s.store, sessionKey(token), session)
}

// Clear destroys the session for a token. Clearing an unknown token is a no-op.
func (s *SessionStore) Clear(ctx context.Context, token string) {
	if err := s.store.Delete(ctx, sessionKey(token)); err != nil {
		slog.Warn("session clear failed", "error", err)
	}
}
