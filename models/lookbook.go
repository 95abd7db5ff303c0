package models

// LookbookData represents the data structure passed to the lookbook template
type LookbookData struct {
	UserID      int                    `json:"userId"`
	Occasion    string                 `json:"occasion"`
	Temperature string                 `json:"temperature"`
	Outfits     []OutfitRecommendation `json:"outfits"`
	GeneratedAt string                 `json:"generatedAt"`
}
