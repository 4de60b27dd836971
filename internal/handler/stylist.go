package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/wardrobeai/wardrobe-go/internal/gemini"
	"github.com/wardrobeai/wardrobe-go/internal/middleware"
	"github.com/wardrobeai/wardrobe-go/internal/model"
	"github.com/wardrobeai/wardrobe-go/internal/service"
)

// StylistHandler handles HTTP requests for AI classification, outfit
// recommendation and weather lookup.
type StylistHandler struct {
	service *service.StylistService
}

// NewStylistHandler creates a new StylistHandler.
func NewStylistHandler(svc *service.StylistService) *StylistHandler {
	return &StylistHandler{service: svc}
}

// HandleClassify handles POST /api/v1/stylist/classify requests. The image
// arrives base64-encoded in the JSON body, as the browser sends it.
func (h *StylistHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ClassifyRequest
	if !decodeJSON(w, r, &req, 20<<20) {
		return
	}

	if req.ImageData == "" || req.MimeType == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("imageData and mimeType are required"))
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("imageData is not valid base64"))
		return
	}

	result, err := h.service.Classify(r.Context(), session, imageData, req.MimeType)
	if err != nil {
		writeStylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleOutfit handles POST /api/v1/stylist/outfit requests.
func (h *StylistHandler) HandleOutfit(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.OutfitRequest
	if !decodeJSON(w, r, &req, 1<<20) {
		return
	}

	if req.Occasion == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("occasion is required"))
		return
	}

	rec, err := h.service.RecommendOutfit(r.Context(), session, req)
	if err != nil {
		writeStylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// HandleWeather handles GET /api/v1/stylist/weather?lat=..&lon=.. requests.
func (h *StylistHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("lat and lon query parameters are required"))
		return
	}

	weather, err := h.service.FetchWeather(r.Context(), session, lat, lon)
	if err != nil {
		writeStylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, weather)
}

// writeStylistError maps gateway failures to 502 with their user-facing
// message; everything else falls through to the generic service mapping.
func writeStylistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gemini.ErrClassification),
		errors.Is(err, gemini.ErrRecommendation),
		errors.Is(err, gemini.ErrWeather):
		writeJSON(w, http.StatusBadGateway, errorResponse(err.Error()))
	default:
		writeServiceError(w, err)
	}
}
