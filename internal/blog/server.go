// Package blog is the unrelated demo backend: toy JWT registration/login and
// an in-memory post list. It shares no state with the wardrobe core and
// deliberately keeps the original's shortcuts (plaintext passwords, no
// persistence, no validation beyond the bare minimum).
package blog

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wardrobeai/wardrobe-go/internal/crypto"
)

// Post is one blog post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type postDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Server holds the demo's in-memory state.
type Server struct {
	mu        sync.Mutex
	users     map[string]string
	posts     []Post
	jwtSecret string
	jwtExpiry time.Duration
}

// NewServer creates an empty demo server.
func NewServer(jwtSecret string, jwtExpiry time.Duration) *Server {
	return &Server{
		users:     make(map[string]string),
		posts:     []Post{},
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Routes builds the demo's router: /auth/register, /auth/login and the
// bearer-gated /api/posts endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/api/posts", s.handleListPosts)
		r.Post("/api/posts", s.handleCreatePost)
	})

	return r
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "username and password are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Username]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "username already registered"})
		return
	}
	s.users[req.Username] = req.Password

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	password, exists := s.users[req.Username]
	s.mu.Unlock()

	// Plaintext comparison, as in the original demo.
	if !exists || password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	token, err := crypto.GenerateBlogToken(req.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	username, _ := usernameFromContext(r.Context())

	var draft postDraft
	if !decodeJSON(w, r, &draft) {
		return
	}

	post := Post{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		Author:    username,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, post)
}

type contextKey string

const usernameKey contextKey = "username"

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token required"})
			return
		}

		claims, err := crypto.ValidateBlogToken(token, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func usernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}
