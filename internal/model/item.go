package model

import "time"

// Category is the primary classification of a wardrobe item.
type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryBottoms     Category = "Bottoms"
	CategoryOuterwear   Category = "Outerwear"
	CategoryFootwear    Category = "Footwear"
	CategoryAccessories Category = "Accessories"
	CategoryDresses     Category = "Dresses"
	CategoryUnknown     Category = "Unknown"
)

// Categories lists every category the classifier is allowed to return.
// Unknown is excluded: it is the normalization fallback, never requested.
func Categories() []Category {
	return []Category{
		CategoryTops,
		CategoryBottoms,
		CategoryOuterwear,
		CategoryFootwear,
		CategoryAccessories,
		CategoryDresses,
	}
}

// CategoryNames returns Categories as plain strings for prompt and schema use.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// NormalizeCategory maps any string onto a known Category, substituting
// Unknown for values outside the list.
func NormalizeCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryUnknown
}

// WardrobeItem is one clothing item record with classification metadata.
type WardrobeItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	SubCategory string    `json:"subCategory"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemDraft carries the caller-supplied fields of a new wardrobe item.
// ID and CreatedAt are synthesized at add time.
type ItemDraft struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	ImageURL    string `json:"imageUrl"`
}

// ItemSummary is the id and classification of an item, without the image
// payload. This is what gets serialized into recommendation prompts.
type ItemSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	SubCategory string   `json:"subCategory"`
}

// Summarize strips image payloads from a list of items.
func Summarize(items []WardrobeItem) []ItemSummary {
	summaries := make([]ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = ItemSummary{
			ID:          it.ID,
			Name:        it.Name,
			Category:    it.Category,
			SubCategory: it.SubCategory,
		}
	}
	return summaries
}
