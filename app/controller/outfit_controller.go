package controller

import (
	"errors"
	"log"
	"net/http"

	"armario-outfits/models"
	"armario-outfits/outfit"
	"armario-outfits/repository"
	"armario-outfits/service"
)

const outfitsPath = "/api/outfits/"

// OutfitController handles HTTP requests for saved and generated outfits
type OutfitController struct {
	repository repository.OutfitRepositoryInterface
	service    service.OutfitServiceInterface
}

// NewOutfitController creates a new OutfitController
func NewOutfitController(repo repository.OutfitRepositoryInterface, svc service.OutfitServiceInterface) *OutfitController {
	return &OutfitController{
		repository: repo,
		service:    svc,
	}
}

// Create handles POST /api/outfits
func (c *OutfitController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateOutfitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		writeRepositoryError(w, "save outfit", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListByUser handles GET /api/outfits/{userId}
func (c *OutfitController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, outfitsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outfits, err := c.repository.ListByUser(r.Context(), userID)
	if err != nil {
		writeRepositoryError(w, "list outfits", err)
		return
	}

	writeJSON(w, http.StatusOK, outfits)
}

// Delete handles DELETE /api/outfits/{id}
func (c *OutfitController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, outfitsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		writeRepositoryError(w, "delete outfit", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/outfits/generate
// Returns ranked outfit recommendations built from the user's wardrobe
func (c *OutfitController) Generate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateOutfits: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.GenerateOutfitsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.service.Generate(r.Context(), &req)
	if err != nil {
		log.Printf("❌ GenerateOutfits: %v", err)
		if errors.Is(err, outfit.ErrInvalidMaxOutfits) || errors.Is(err, service.ErrUnknownTemperature) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to generate outfits", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Wear handles POST /api/outfits/wear
// Increments the wear count of every listed item
func (c *OutfitController) Wear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.WearOutfitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.service.Wear(r.Context(), req.ItemIDs)
	if err != nil {
		log.Printf("❌ WearOutfit: %v", err)
		http.Error(w, "Failed to record wear", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"updated": updated,
	})
}
