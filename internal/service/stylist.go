package service

import (
	"context"
	"fmt"

	"github.com/wardrobeai/wardrobe-go/internal/gemini"
	"github.com/wardrobeai/wardrobe-go/internal/model"
)

// StylistClient is the outbound generative-AI contract the stylist depends
// on. Calls are single-shot: any failure is terminal for the user action
// that triggered it, and cancellation rides on the context.
type StylistClient interface {
	Classify(ctx context.Context, imageData []byte, mimeType string) (model.Classification, error)
	RecommendOutfit(ctx context.Context, items []model.ItemSummary, occasion string, weather *model.Weather) (model.OutfitRecommendation, error)
	FetchWeather(ctx context.Context, latitude, longitude float64) (model.Weather, error)
}

// StylistService enriches the wardrobe with AI classification, outfit
// recommendation and weather context.
type StylistService struct {
	client   StylistClient
	wardrobe *WardrobeService
}

// NewStylistService creates a new StylistService.
func NewStylistService(client StylistClient, wardrobe *WardrobeService) *StylistService {
	return &StylistService{client: client, wardrobe: wardrobe}
}

// Classify names and categorizes one clothing image. A category outside the
// known list is normalized to Unknown rather than rejected.
func (s *StylistService) Classify(ctx context.Context, session model.Session, imageData []byte, mimeType string) (model.Classification, error) {
	if !session.Authenticated() {
		return model.Classification{}, ErrUnauthenticated
	}

	result, err := s.client.Classify(ctx, imageData, mimeType)
	if err != nil {
		return model.Classification{}, err
	}

	result.Category = model.NormalizeCategory(string(result.Category))
	return result, nil
}

// RecommendOutfit asks for an outfit from the session identity's wardrobe
// for a free-text occasion. Ids the model invents are dropped from the
// response; an empty wardrobe fails before any remote call.
func (s *StylistService) RecommendOutfit(ctx context.Context, session model.Session, req model.OutfitRequest) (model.OutfitRecommendation, error) {
	items, err := s.wardrobe.Load(ctx, session)
	if err != nil {
		return model.OutfitRecommendation{}, err
	}
	if len(items) == 0 {
		return model.OutfitRecommendation{}, fmt.Errorf("%w: wardrobe is empty", gemini.ErrRecommendation)
	}

	rec, err := s.client.RecommendOutfit(ctx, model.Summarize(items), req.Occasion, req.Weather)
	if err != nil {
		return model.OutfitRecommendation{}, err
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}
	kept := rec.ItemIDs[:0]
	for _, id := range rec.ItemIDs {
		if known[id] {
			kept = append(kept, id)
		}
	}
	rec.ItemIDs = kept

	return rec, nil
}

// FetchWeather looks up the current weather for coordinates.
func (s *StylistService) FetchWeather(ctx context.Context, session model.Session, latitude, longitude float64) (model.Weather, error) {
	if !session.Authenticated() {
		return model.Weather{}, ErrUnauthenticated
	}
	return s.client.FetchWeather(ctx, latitude, longitude)
}
