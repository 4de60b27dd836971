package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wardrobeai/wardrobe-go/internal/middleware"
	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/service"
)

// WardrobeHandler handles HTTP requests for wardrobe item operations.
type WardrobeHandler struct {
	service *service.WardrobeService
}

// NewWardrobeHandler creates a new WardrobeHandler.
func NewWardrobeHandler(svc *service.WardrobeService) *WardrobeHandler {
	return &WardrobeHandler{service: svc}
}

// HandleList handles GET /api/v1/wardrobe requests.
func (h *WardrobeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	items, err := h.service.Load(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []model.WardrobeItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleAdd handles POST /api/v1/wardrobe requests. The 10MB body cap leaves
// room for data-URI images.
func (h *WardrobeHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var draft model.ItemDraft
	if !decodeJSON(w, r, &draft, 10<<20) {
		return
	}

	item, err := h.service.Add(r.Context(), session, draft)
	if err != nil {
		if errors.Is(err, service.ErrItemNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// HandleRemove handles DELETE /api/v1/wardrobe/{item_id} requests. Removing
// an unknown id is a storage no-op and still answers 204.
func (h *WardrobeHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	itemID := chi.URLParam(r, "item_id")
	if itemID == "" || len(itemID) > 64 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid item id"))
		return
	}

	if err := h.service.Remove(r.Context(), session, itemID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
