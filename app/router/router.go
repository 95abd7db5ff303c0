package router

import (
	"net/http"
	"strings"

	"armario-outfits/app/controller"
)

type Controllers struct {
	WardrobeItem *controller.WardrobeItemController
	Outfit       *controller.OutfitController
	Import       *controller.ImportController
	Lookbook     *controller.LookbookController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Wardrobe item routes
	mux.HandleFunc("/api/wardrobe-items", controllers.WardrobeItem.Create)
	mux.HandleFunc("/api/wardrobe-items/check-duplicates", controllers.WardrobeItem.CheckDuplicates)
	mux.HandleFunc("/api/wardrobe-items/import", controllers.Import.Import)

	// GET /api/wardrobe-items/:userId, PATCH|DELETE /api/wardrobe-items/:id, GET /api/wardrobe-items/:id/image
	mux.HandleFunc("/api/wardrobe-items/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.WardrobeItem.GetImage(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			controllers.WardrobeItem.ListByUser(w, r)
		case http.MethodPatch, http.MethodPut:
			controllers.WardrobeItem.Update(w, r)
		case http.MethodDelete:
			controllers.WardrobeItem.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Outfit routes
	mux.HandleFunc("/api/outfits", controllers.Outfit.Create)
	mux.HandleFunc("/api/outfits/generate", controllers.Outfit.Generate)
	mux.HandleFunc("/api/outfits/wear", controllers.Outfit.Wear)

	// GET /api/outfits/:userId, DELETE /api/outfits/:id
	mux.HandleFunc("/api/outfits/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Outfit.ListByUser(w, r)
		case http.MethodDelete:
			controllers.Outfit.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Lookbook routes
	mux.HandleFunc("/api/lookbook/render", controllers.Lookbook.Render)
	mux.HandleFunc("/api/lookbook/pdf", controllers.Lookbook.PDF)
}
