package models

// Outfit represents a saved outfit in the database
type Outfit struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Name      string `json:"name"`
	Occasion  string `json:"occasion"`
	ItemIDs   []int  `json:"itemIds"`
	CreatedAt string `json:"createdAt"`
}

// CreateOutfitRequest represents the request body for saving an outfit
// Example: {"userId": 1, "name": "Friday dinner", "occasion": "date", "itemIds": [3, 7, 12]}
type CreateOutfitRequest struct {
	UserID   int    `json:"userId" validate:"min=0"`
	Name     string `json:"name" validate:"required,max=200"`
	Occasion string `json:"occasion" validate:"required,max=50"`
	ItemIDs  []int  `json:"itemIds" validate:"required,min=1,dive,gt=0"`
}

// WearOutfitRequest represents the request body for marking items as worn
type WearOutfitRequest struct {
	ItemIDs []int `json:"itemIds" validate:"required,min=1,dive,gt=0"`
}

// GenerateOutfitsRequest represents the request body for outfit recommendations
// Example: {"userId": 1, "maxOutfits": 4, "occasion": "work", "temperature": "cool", "favoriteColors": ["navy"]}
type GenerateOutfitsRequest struct {
	UserID              int      `json:"userId" validate:"min=0"`
	MaxOutfits          int      `json:"maxOutfits" validate:"min=0,max=20"`
	Occasion            string   `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Temperature         string   `json:"temperature,omitempty" validate:"omitempty,max=50"` // must name a configured temperature band
	AllowPartialOutfits *bool    `json:"allowPartialOutfits,omitempty"`
	PrioritizeUnworn    *bool    `json:"prioritizeUnworn,omitempty"`
	FavoriteColors      []string `json:"favoriteColors,omitempty"`
	PreferredStyles     []string `json:"preferredStyles,omitempty"`
	Seed                *int64   `json:"seed,omitempty"`
}

// OutfitItemSummary is the lightweight item view embedded in recommendations
type OutfitItemSummary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Colors   []string `json:"colors"`
	ImageURL string   `json:"imageUrl"`
}

// OutfitRecommendation represents one ranked outfit suggestion
type OutfitRecommendation struct {
	ID              string              `json:"id"` // canonical signature of the item set
	Name            string              `json:"name"`
	Items           []OutfitItemSummary `json:"items"`
	SpotlightItem   OutfitItemSummary   `json:"spotlightItem"`
	Score           float64             `json:"score"`
	ColorHarmony    bool                `json:"colorHarmony"`
	CategoryBalance bool                `json:"categoryBalance"`
	Occasion        string              `json:"occasion"`
	Temperature     string              `json:"temperature"`
	Reasoning       string              `json:"reasoning"`
}

// GenerateOutfitsResponse represents the response of an outfit generation request
type GenerateOutfitsResponse struct {
	RequestID string                 `json:"requestId"`
	Outfits   []OutfitRecommendation `json:"outfits"`
	Message   string                 `json:"message,omitempty"`
}
