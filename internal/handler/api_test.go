package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/wardrobeai/wardrobe-go/internal/middleware"
	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/repository"
	"github.com/wardrobeai/wardrobe-go/internal/service"
	"github.com/wardrobeai/wardrobe-go/internal/storage"
)

type stubStylistClient struct {
	classification model.Classification
	recommendation model.OutfitRecommendation
	weather        model.Weather
	err            error
}

func (s *stubStylistClient) Classify(_ context.Context, _ []byte, _ string) (model.Classification, error) {
	return s.classification, s.err
}

func (s *stubStylistClient) RecommendOutfit(_ context.Context, _ []model.ItemSummary, _ string, _ *model.Weather) (model.OutfitRecommendation, error) {
	return s.recommendation, s.err
}

func (s *stubStylistClient) FetchWeather(_ context.Context, _, _ float64) (model.Weather, error) {
	return s.weather, s.err
}

// newTestRouter wires the API the way cmd/api does, minus rate limiting and
// metrics, over in-memory storage.
func newTestRouter(stub *stubStylistClient) http.Handler {
	persistent := storage.NewMemory()
	credentials := repository.NewCredentialStore(persistent)
	items := repository.NewItemRepository(persistent)
	sessions := repository.NewSessionStore(storage.NewMemory())

	authService := service.NewAuthService(credentials, sessions)
	authHandler := NewAuthHandler(authService)

	wardrobeService := service.NewWardrobeService(items)
	wardrobeHandler := NewWardrobeHandler(wardrobeService)

	stylistService := service.NewStylistService(stub, wardrobeService)
	stylistHandler := NewStylistHandler(stylistService)

	r := chi.NewRouter()
	r.Post("/api/v1/auth/signup", authHandler.HandleSignup)
	r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	r.Post("/api/v1/auth/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(authService))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Get("/api/v1/wardrobe", wardrobeHandler.HandleList)
		r.Post("/api/v1/wardrobe", wardrobeHandler.HandleAdd)
		r.Delete("/api/v1/wardrobe/{item_id}", wardrobeHandler.HandleRemove)
		r.Post("/api/v1/stylist/classify", stylistHandler.HandleClassify)
		r.Post("/api/v1/stylist/outfit", stylistHandler.HandleOutfit)
		r.Get("/api/v1/stylist/weather", stylistHandler.HandleWeather)
	})

	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func signupToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "",
		model.SignupRequest{Email: email, Password: "pw"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp model.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	return resp.Token
}

func TestSignupLoginFlow(t *testing.T) {
	router := newTestRouter(&stubStylistClient{})

	token := signupToken(t, router, "a@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	var session model.Session
	json.Unmarshal(rec.Body.Bytes(), &session)
	if session.Email != "a@example.com" {
		t.Errorf("me email = %q", session.Email)
	}

	// Duplicate signup conflicts, case-insensitively.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "",
		model.SignupRequest{Email: "A@example.com", Password: "pw"})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", rec.Code)
	}

	// Wrong password is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "",
		model.LoginRequest{Email: "a@example.com", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rec.Code)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router := newTestRouter(&stubStylistClient{})
	token := signupToken(t, router, "a@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wardrobe after logout status = %d, want 401", rec.Code)
	}

	// Logout is idempotent, even for a dead token.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("second logout status = %d, want 204", rec.Code)
	}
}

func TestWardrobeCRUD(t *testing.T) {
	router := newTestRouter(&stubStylistClient{})
	token := signupToken(t, router, "a@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wardrobe", token,
		model.ItemDraft{Name: "Tee", Category: "Tops", SubCategory: "T-Shirt"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}
	var item model.WardrobeItem
	json.Unmarshal(rec.Body.Bytes(), &item)
	if item.ID == "" {
		t.Fatal("add returned empty id")
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var items []model.WardrobeItem
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 || items[0].ID != item.ID {
		t.Fatalf("list = %+v", items)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/wardrobe/"+item.ID, token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", token, nil)
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 0 {
		t.Errorf("list after delete = %+v, want empty", items)
	}
}

func TestWardrobeRequiresSession(t *testing.T) {
	router := newTestRouter(&stubStylistClient{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("list without token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", "forged-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("list with forged token status = %d, want 401", rec.Code)
	}
}

func TestListIsEmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(&stubStylistClient{})
	token := signupToken(t, router, "a@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/wardrobe", token, nil)
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "[]" {
		t.Errorf("empty list body = %s, want []", body)
	}
}
