package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"armario-outfits/service"
)

// LookbookController handles HTTP requests for lookbook rendering
type LookbookController struct {
	service service.LookbookServiceInterface
}

// NewLookbookController creates a new LookbookController
func NewLookbookController(svc service.LookbookServiceInterface) *LookbookController {
	return &LookbookController{
		service: svc,
	}
}

// parseLookbookRequest reads userId, occasion, temperature and maxOutfits from the query string
func parseLookbookRequest(r *http.Request) (service.LookbookRequest, error) {
	q := r.URL.Query()
	req := service.LookbookRequest{
		Occasion:    q.Get("occasion"),
		Temperature: q.Get("temperature"),
	}

	userID, err := strconv.Atoi(q.Get("userId"))
	if err != nil || userID < 0 {
		return req, fmt.Errorf("userId query parameter is required")
	}
	req.UserID = userID

	if raw := q.Get("maxOutfits"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 20 {
			return req, fmt.Errorf("maxOutfits must be between 0 and 20")
		}
		req.MaxOutfits = n
	}
	return req, nil
}

// Render handles GET /api/lookbook/render
// Returns the lookbook as an HTML page
func (c *LookbookController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseLookbookRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := c.service.RenderHTML(r.Context(), req)
	if err != nil {
		log.Printf("❌ RenderLookbook: %v", err)
		if errors.Is(err, service.ErrUnknownTemperature) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to render lookbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// PDF handles GET /api/lookbook/pdf
// Returns the lookbook printed to PDF
func (c *LookbookController) PDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseLookbookRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := c.service.GeneratePDF(r.Context(), req)
	if err != nil {
		log.Printf("❌ LookbookPDF: %v", err)
		if errors.Is(err, service.ErrUnknownTemperature) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to generate lookbook PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="lookbook_%d.pdf"`, req.UserID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
