package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"armario-outfits/models"
	"armario-outfits/repository"
	"armario-outfits/utils"
)

// ErrDriveNotConfigured is returned when an import is requested without Drive credentials
var ErrDriveNotConfigured = errors.New("google drive is not configured")

// ImportService creates wardrobe items from garment photos stored in Google Drive
type ImportService struct {
	driveService DriveServiceInterface
	repository   repository.WardrobeItemRepositoryInterface
}

// NewImportService creates a new ImportService. driveService may be nil when Drive is not configured.
func NewImportService(driveService DriveServiceInterface, repo repository.WardrobeItemRepositoryInterface) *ImportService {
	return &ImportService{
		driveService: driveService,
		repository:   repo,
	}
}

// ImportFromDrive imports every parseable photo in the folder as a wardrobe item of the user.
// Files already imported, or whose photo hash matches an existing item, are skipped.
func (s *ImportService) ImportFromDrive(ctx context.Context, userID int, folderID string) (*models.ImportResult, error) {
	if s.driveService == nil {
		return nil, ErrDriveNotConfigured
	}

	log.Printf("📥 Starting garment import for folder: %s, user_id=%d", folderID, userID)

	photos, err := s.driveService.ListGarmentPhotos(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list garment photos from Drive: %w", err)
	}

	result := &models.ImportResult{Total: len(photos), Errors: []string{}}
	log.Printf("📦 Processing %d garment photos from Google Drive", len(photos))

	for _, photo := range photos {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		info, err := utils.ParseGarmentFileName(photo.FileName)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", photo.FileName, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", photo.FileName, err))
			continue
		}

		exists, err := s.repository.ExistsByDriveFileID(ctx, photo.DriveFileID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", photo.FileName, err))
			continue
		}
		if exists {
			log.Printf("⏭️  Skipping drive_file_id: %s (already imported)", photo.DriveFileID)
			result.Skipped++
			continue
		}

		imageData, err := s.driveService.DownloadImage(ctx, photo.DriveFileID)
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to download image %s (%s): %v", photo.FileName, photo.DriveFileID, err)
			log.Printf("❌ %s", errorMsg)
			result.Errors = append(result.Errors, errorMsg)
			continue
		}

		optimized, err := OptimizeImage(imageData, "medium")
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to optimize image %s (%s): %v", photo.FileName, photo.DriveFileID, err)
			log.Printf("❌ %s", errorMsg)
			result.Errors = append(result.Errors, errorMsg)
			continue
		}

		photoHash := utils.PhotoHash(optimized)
		duplicates, err := s.repository.FindDuplicates(ctx, userID, photoHash, info.Name, info.Category)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", photo.FileName, err))
			continue
		}
		if len(duplicates) > 0 {
			log.Printf("⏭️  Skipping %s (matches item %d)", photo.FileName, duplicates[0].ID)
			result.Skipped++
			continue
		}

		item := &models.WardrobeItem{
			UserID:       userID,
			Name:         info.Name,
			Category:     info.Category,
			Colors:       info.Colors,
			PrimaryColor: info.Colors[0],
			Image:        base64.StdEncoding.EncodeToString(optimized),
			PhotoHash:    photoHash,
			DriveFileID:  photo.DriveFileID,
		}
		if len(info.Colors) > 1 {
			item.SecondaryColor = info.Colors[1]
		}

		if _, err := s.repository.Create(ctx, item); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", photo.FileName, err))
			continue
		}

		log.Printf("✅ Imported %s", photo.FileName)
		result.Imported++
	}

	log.Printf("🎉 Import completed: %d imported, %d skipped, %d failed out of %d total photos",
		result.Imported, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}
