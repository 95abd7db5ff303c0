package controller

import (
	"log"
	"net/http"
	"strings"

	"armario-outfits/models"
	"armario-outfits/repository"
	"armario-outfits/service"
	"armario-outfits/utils"
)

const wardrobeItemsPath = "/api/wardrobe-items/"

// WardrobeItemController handles HTTP requests for wardrobe items
type WardrobeItemController struct {
	repository repository.WardrobeItemRepositoryInterface
	images     *service.ImageOptimizer
}

// NewWardrobeItemController creates a new WardrobeItemController
func NewWardrobeItemController(repo repository.WardrobeItemRepositoryInterface, images *service.ImageOptimizer) *WardrobeItemController {
	return &WardrobeItemController{
		repository: repo,
		images:     images,
	}
}

// CheckDuplicates handles POST /api/wardrobe-items/check-duplicates
// Returns the user's items with the same photo, or with the same name and category
func (c *WardrobeItemController) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.DuplicateCheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	photoHash := req.PhotoHash
	if photoHash == "" && req.Image != "" {
		photoHash = utils.PhotoHashFromBase64(req.Image)
	}

	duplicates, err := c.repository.FindDuplicates(r.Context(), req.UserID, photoHash, strings.TrimSpace(req.Name), strings.TrimSpace(req.Category))
	if err != nil {
		log.Printf("❌ CheckDuplicates: %v", err)
		writeRepositoryError(w, "check duplicates", err)
		return
	}
	if duplicates == nil {
		duplicates = []models.WardrobeItem{}
	}

	writeJSON(w, http.StatusOK, models.DuplicateCheckResponse{Duplicates: duplicates})
}

// Create handles POST /api/wardrobe-items
func (c *WardrobeItemController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateWardrobeItem: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateWardrobeItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item := &models.WardrobeItem{
		UserID:         req.UserID,
		Name:           strings.TrimSpace(req.Name),
		Category:       strings.TrimSpace(req.Category),
		Subcategory:    strings.TrimSpace(req.Subcategory),
		Colors:         req.Colors,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		StyleTags:      req.StyleTags,
		Occasions:      req.Occasions,
		Layerable:      req.Layerable,
		WearCount:      req.WearCount,
		Style:          req.Style,
		Image:          req.Image,
		PhotoHash:      req.PhotoHash,
	}
	if item.PrimaryColor == "" {
		item.PrimaryColor = req.Colors[0]
	}
	if item.PhotoHash == "" {
		item.PhotoHash = utils.PhotoHashFromBase64(req.Image)
	}

	created, err := c.repository.Create(r.Context(), item)
	if err != nil {
		log.Printf("❌ CreateWardrobeItem: %v", err)
		writeRepositoryError(w, "create wardrobe item", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListByUser handles GET /api/wardrobe-items/{userId}
func (c *WardrobeItemController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, wardrobeItemsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := c.repository.ListByUser(r.Context(), userID)
	if err != nil {
		writeRepositoryError(w, "list wardrobe items", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Update handles PATCH /api/wardrobe-items/{id}
func (c *WardrobeItemController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, wardrobeItemsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateWardrobeItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		log.Printf("❌ UpdateWardrobeItem %d: %v", id, err)
		writeRepositoryError(w, "update wardrobe item", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/wardrobe-items/{id}
func (c *WardrobeItemController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, wardrobeItemsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeRepositoryError(w, "delete wardrobe item", err)
		return
	}
	c.images.Invalidate(id)

	w.WriteHeader(http.StatusNoContent)
}

// GetImage handles GET /api/wardrobe-items/{id}/image?size=thumb|medium
// Returns the optimized JPEG photo of the item
func (c *WardrobeItemController) GetImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r, wardrobeItemsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	if size != "thumb" && size != "medium" {
		http.Error(w, "size must be thumb or medium", http.StatusBadRequest)
		return
	}

	item, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeRepositoryError(w, "get wardrobe item", err)
		return
	}

	raw, err := utils.DecodeBase64Image(item.Image)
	if err != nil {
		log.Printf("❌ GetImage: item %d has an undecodable image: %v", id, err)
		http.Error(w, "Item image is not valid base64", http.StatusUnprocessableEntity)
		return
	}

	data, err := c.images.ItemImage(id, size, raw)
	if err != nil {
		log.Printf("❌ GetImage: failed to optimize image for item %d: %v", id, err)
		http.Error(w, "Failed to process image", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
