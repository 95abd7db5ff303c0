package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"armario-outfits/app/controller"
	"armario-outfits/app/router"
	"armario-outfits/db"
	"armario-outfits/repository"
	"armario-outfits/service"
	"armario-outfits/styling"
)

const defaultStylingConfigPath = "config/styling.json"

// Initialize connects to the database, loads the styling rules and registers the routes on mux
func Initialize(ctx context.Context, mux *http.ServeMux) error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	// Load styling rules; the built-in temperature rules apply if this fails
	stylingPath := os.Getenv("STYLING_CONFIG_PATH")
	if stylingPath == "" {
		stylingPath = defaultStylingConfigPath
	}
	stylingEngine, err := styling.NewEngine(stylingPath)
	if err != nil {
		log.Printf("⚠️  Could not load styling config, using built-in rules: %v", err)
	}

	// Google Drive is optional, only the import endpoint needs it
	var driveService service.DriveServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		ds, err := service.NewDriveService(ctx, credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
		log.Printf("✓ Google Drive import enabled")
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, Drive import is disabled")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port()
	}

	// Initialize repositories
	itemRepo := repository.NewWardrobeItemRepository()
	outfitRepo := repository.NewOutfitRepository()

	// Initialize services
	images := service.NewImageOptimizer(service.DefaultImageCacheDir)
	if err := images.EnsureCacheDir(); err != nil {
		return err
	}
	outfitService := service.NewOutfitService(itemRepo, stylingEngine, service.OutfitServiceConfig{
		BaseURL:            baseURL,
		ShuffleAccessories: strings.EqualFold(os.Getenv("OUTFIT_SHUFFLE_ACCESSORIES"), "true"),
	})
	importService := service.NewImportService(driveService, itemRepo)
	lookbookService := service.NewLookbookService(outfitService, baseURL)

	// Create controllers
	controllers := &router.Controllers{
		WardrobeItem: controller.NewWardrobeItemController(itemRepo, images),
		Outfit:       controller.NewOutfitController(outfitRepo, outfitService),
		Import:       controller.NewImportController(importService, os.Getenv("WARDROBE_DRIVE_FOLDER_ID")),
		Lookbook:     controller.NewLookbookController(lookbookService),
	}

	router.SetupRoutes(mux, controllers)
	return nil
}

// Addr returns the listen address built from PORT
// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
func Addr() string {
	return "0.0.0.0:" + port()
}

func port() string {
	p := os.Getenv("PORT")
	if p == "" {
		p = "8080"
	}
	// Remove leading colon if present (PORT from Render doesn't include it)
	return strings.TrimPrefix(p, ":")
}
