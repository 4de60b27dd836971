package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wardrobeai/wardrobe-go/internal/model"
)

// Classify asks the model to name and categorize one clothing image.
func (c *Client) Classify(ctx context.Context, imageData []byte, mimeType string) (model.Classification, error) {
	prompt := fmt.Sprintf(
		"Analyze this image of a clothing item. Respond with a single JSON object containing a descriptive name, its primary category, and a specific sub-category. The primary category must be one of the following: %s.",
		strings.Join(model.CategoryNames(), ", "),
	)

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageData),
				}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"name": {
						Type:        "STRING",
						Description: "A creative and descriptive name for the clothing item (e.g., 'Classic Blue Denim Jacket').",
					},
					"category": {
						Type:        "STRING",
						Enum:        model.CategoryNames(),
						Description: "The main category of the clothing item.",
					},
					"subCategory": {
						Type:        "STRING",
						Description: "A specific sub-category for the item (e.g., 'T-Shirt', 'Skinny Jeans', 'Ankle Boots').",
					},
				},
				Required: []string{"name", "category", "subCategory"},
			},
		},
	}

	var result model.Classification
	if err := c.generate(ctx, "classify", req, &result); err != nil {
		return model.Classification{}, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return result, nil
}

// RecommendOutfit asks the model to compose an outfit from the given item
// summaries for a free-text occasion, optionally considering the weather.
func (c *Client) RecommendOutfit(ctx context.Context, items []model.ItemSummary, occasion string, weather *model.Weather) (model.OutfitRecommendation, error) {
	if len(items) == 0 {
		return model.OutfitRecommendation{}, fmt.Errorf("%w: wardrobe is empty", ErrRecommendation)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return model.OutfitRecommendation{}, fmt.Errorf("%w: %v", ErrRecommendation, err)
	}

	weatherSentence := ""
	if weather != nil {
		weatherSentence = fmt.Sprintf(
			"The current weather is %.0f°C and it is %s. Please consider this when selecting items.",
			weather.Temperature, weather.Description,
		)
	}

	prompt := fmt.Sprintf(
		"You are an expert fashion stylist. Based on the following wardrobe items available as a JSON array: %s. Create an outfit that would be perfect for: %q. %s Your response must be a single JSON object. The outfit should be composed of items from the provided list. The JSON object must have three keys: 'title': a creative, catchy name for the outfit; 'itemIds': an array of ids of recommended items from the provided list, forming a logical combination (e.g., one top, one bottom, one pair of shoes); 'reasoning': a short, stylish explanation of why this combination works for the occasion and weather.",
		itemsJSON, occasion, weatherSentence,
	)

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"title": {
						Type:        "STRING",
						Description: "A creative name for the outfit.",
					},
					"itemIds": {
						Type:        "ARRAY",
						Items:       &schema{Type: "STRING"},
						Description: "Ids of the recommended items from the provided wardrobe.",
					},
					"reasoning": {
						Type:        "STRING",
						Description: "An explanation for the outfit choice.",
					},
				},
				Required: []string{"title", "itemIds", "reasoning"},
			},
		},
	}

	var rec model.OutfitRecommendation
	if err := c.generate(ctx, "recommend", req, &rec); err != nil {
		return model.OutfitRecommendation{}, fmt.Errorf("%w: %v", ErrRecommendation, err)
	}
	return rec, nil
}

// FetchWeather asks the model for the current weather at coordinates.
func (c *Client) FetchWeather(ctx context.Context, latitude, longitude float64) (model.Weather, error) {
	prompt := fmt.Sprintf(
		"Based on the coordinates (latitude: %f, longitude: %f), provide the current weather. Your response must be a single JSON object with three keys: 'temperature': the current temperature in Celsius as a number; 'description': a brief one-or-two-word description of the weather; 'emoji': a single emoji that best represents the current conditions.",
		latitude, longitude,
	)

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"temperature": {
						Type:        "NUMBER",
						Description: "Current temperature in Celsius.",
					},
					"description": {
						Type:        "STRING",
						Description: "A brief description of the weather.",
					},
					"emoji": {
						Type:        "STRING",
						Description: "A single emoji for the weather.",
					},
				},
				Required: []string{"temperature", "description", "emoji"},
			},
		},
	}

	var weather model.Weather
	if err := c.generate(ctx, "weather", req, &weather); err != nil {
		return model.Weather{}, fmt.Errorf("%w: %v", ErrWeather, err)
	}
	return weather, nil
}
