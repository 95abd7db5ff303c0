package models

// WardrobeItem represents a catalogued clothing item in the database
type WardrobeItem struct {
	ID             int      `json:"id"`
	UserID         int      `json:"userId"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`              // tops, bottoms, dresses, shoes, socks, accessories (raw text, normalized by the outfit engine)
	Subcategory    string   `json:"subcategory,omitempty"` // e.g. "boots", "t-shirts"
	Colors         []string `json:"colors"`
	PrimaryColor   string   `json:"primaryColor,omitempty"`
	SecondaryColor string   `json:"secondaryColor,omitempty"`
	StyleTags      []string `json:"styleTags"`
	Occasions      []string `json:"occasions"`
	Layerable      bool     `json:"layerable"`
	WearCount      int      `json:"wearCount"`
	Style          string   `json:"style,omitempty"` // free-form style description
	Image          string   `json:"image,omitempty"` // base64 image data
	PhotoHash      string   `json:"photoHash,omitempty"`
	DriveFileID    string   `json:"driveFileId,omitempty"` // set when imported from Google Drive
	CreatedAt      string   `json:"createdAt"`
}

// CreateWardrobeItemRequest represents the request body for creating a wardrobe item
// Example: {"userId": 1, "name": "Silk blouse", "category": "tops", "colors": ["ivory"], "image": "<base64>"}
type CreateWardrobeItemRequest struct {
	UserID         int      `json:"userId" validate:"min=0"`
	Name           string   `json:"name" validate:"required,max=200"`
	Category       string   `json:"category" validate:"required,max=100"`
	Subcategory    string   `json:"subcategory,omitempty" validate:"max=100"`
	Colors         []string `json:"colors" validate:"required,min=1,dive,required"`
	PrimaryColor   string   `json:"primaryColor,omitempty"`
	SecondaryColor string   `json:"secondaryColor,omitempty"`
	StyleTags      []string `json:"styleTags,omitempty"`
	Occasions      []string `json:"occasions,omitempty"`
	Layerable      bool     `json:"layerable"`
	WearCount      int      `json:"wearCount" validate:"min=0"`
	Style          string   `json:"style,omitempty"`
	Image          string   `json:"image" validate:"required"`
	PhotoHash      string   `json:"photoHash,omitempty"`
}

// UpdateWardrobeItemRequest represents a partial update of a wardrobe item
// Only non-nil fields are applied
type UpdateWardrobeItemRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Subcategory *string   `json:"subcategory,omitempty"`
	Colors      *[]string `json:"colors,omitempty" validate:"omitempty,min=1"`
	StyleTags   *[]string `json:"styleTags,omitempty"`
	Occasions   *[]string `json:"occasions,omitempty"`
	Layerable   *bool     `json:"layerable,omitempty"`
	WearCount   *int      `json:"wearCount,omitempty" validate:"omitempty,min=0"`
	Style       *string   `json:"style,omitempty"`
}

// DuplicateCheckRequest represents the request body for a duplicate check
// Either photoHash or image can identify the photo; name and category catch re-entered items
type DuplicateCheckRequest struct {
	UserID    int    `json:"userId" validate:"min=0"`
	Name      string `json:"name" validate:"required_without_all=PhotoHash Image"`
	Category  string `json:"category"`
	PhotoHash string `json:"photoHash,omitempty"`
	Image     string `json:"image,omitempty"`
}

// DuplicateCheckResponse represents the response of a duplicate check
type DuplicateCheckResponse struct {
	Duplicates []WardrobeItem `json:"duplicates"`
}

// ImportRequest represents the request body for a Google Drive import
// FolderID falls back to WARDROBE_DRIVE_FOLDER_ID when empty
type ImportRequest struct {
	UserID   int    `json:"userId" validate:"min=0"`
	FolderID string `json:"folderId,omitempty"`
}

// ImportResult summarizes a garment photo import from Google Drive
type ImportResult struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}
