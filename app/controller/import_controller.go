package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"armario-outfits/models"
	"armario-outfits/service"
)

// ImportController handles garment photo imports from Google Drive
type ImportController struct {
	importService   service.ImportServiceInterface
	defaultFolderID string
}

// NewImportController creates a new ImportController
func NewImportController(importService service.ImportServiceInterface, defaultFolderID string) *ImportController {
	return &ImportController{
		importService:   importService,
		defaultFolderID: defaultFolderID,
	}
}

// Import handles POST /api/wardrobe-items/import
// Creates wardrobe items from the photos in a Drive folder and returns a summary
func (c *ImportController) Import(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ImportWardrobe: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	folderID := req.FolderID
	if folderID == "" {
		folderID = c.defaultFolderID
	}
	if folderID == "" {
		http.Error(w, "folderId is required (or set WARDROBE_DRIVE_FOLDER_ID)", http.StatusBadRequest)
		return
	}

	result, err := c.importService.ImportFromDrive(r.Context(), req.UserID, folderID)
	if err != nil {
		log.Printf("❌ ImportWardrobe: %v", err)
		if errors.Is(err, service.ErrDriveNotConfigured) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to import wardrobe: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
