package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wardrobeai/wardrobe-go/internal/crypto"
	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/repository"
)

var (
	ErrDuplicateIdentity  = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthService composes the credential and session stores to implement
// signup, login and logout. An identity is either Anonymous or
// Authenticated(email); there is no credential change and no account
// deletion.
type AuthService struct {
	credentials *repository.CredentialStore
	sessions    *repository.SessionStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(credentials *repository.CredentialStore, sessions *repository.SessionStore) *AuthService {
	return &AuthService{credentials: credentials, sessions: sessions}
}

// Signup registers a new identity and opens a session for it. Email
// uniqueness is checked case-insensitively; on a duplicate nothing is
// mutated.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	identities, err := s.credentials.List(ctx)
	if err != nil {
		return model.AuthResponse{}, err
	}
	for _, identity := range identities {
		if strings.EqualFold(identity.Email, req.Email) {
			return model.AuthResponse{}, ErrDuplicateIdentity
		}
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	if err := s.credentials.Append(ctx, model.Identity{Email: req.Email, PasswordHash: hash}); err != nil {
		return model.AuthResponse{}, err
	}

	return s.openSession(ctx, req.Email)
}

// Login authenticates an identity and opens a session for it. Unknown
// emails and wrong passwords fail identically, leaving the session state
// untouched.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	identities, err := s.credentials.List(ctx)
	if err != nil {
		return model.AuthResponse{}, err
	}

	for _, identity := range identities {
		if !strings.EqualFold(identity.Email, req.Email) {
			continue
		}
		match, err := crypto.VerifyPassword(req.Password, identity.PasswordHash)
		if err != nil || !match {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return s.openSession(ctx, identity.Email)
	}

	return model.AuthResponse{}, ErrInvalidCredentials
}

// Logout destroys the session for a token. It is idempotent and never fails:
// logging out an unknown or already-cleared token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.sessions.Clear(ctx, token)
}

// Resolve maps a session token to its authenticated identity.
func (s *AuthService) Resolve(ctx context.Context, token string) (model.Session, bool) {
	return s.sessions.Get(ctx, token)
}

// openSession mints a fresh token and stores the password-stripped identity
// under it. Both signup and login converge here.
func (s *AuthService) openSession(ctx context.Context, email string) (model.AuthResponse, error) {
	token := uuid.NewString()
	session := model.Session{Email: email}

	if err := s.sessions.Set(ctx, token, session); err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: session}, nil
}
