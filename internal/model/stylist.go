package model

// Classification is the classifier's verdict on one clothing image.
type Classification struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	SubCategory string   `json:"subCategory"`
}

// OutfitRecommendation is one suggested outfit. ItemIDs reference
// WardrobeItem ids from the caller's own wardrobe. Recommendations are
// ephemeral and never persisted.
type OutfitRecommendation struct {
	Title     string   `json:"title"`
	ItemIDs   []string `json:"itemIds"`
	Reasoning string   `json:"reasoning"`
}

// Weather is a point-in-time weather summary used as recommendation context.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Emoji       string  `json:"emoji"`
}

// ClassifyRequest carries a base64-encoded clothing image for classification.
type ClassifyRequest struct {
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

// OutfitRequest asks for an outfit matching a free-text occasion, with
// optional weather context.
type OutfitRequest struct {
	Occasion string   `json:"occasion"`
	Weather  *Weather `json:"weather,omitempty"`
}
