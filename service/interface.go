package service

import (
	"context"

	"armario-outfits/models"
)

// GarmentPhoto is an image file found in a Drive folder
type GarmentPhoto struct {
	DriveFileID string
	FileName    string
	MimeType    string
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListGarmentPhotos(ctx context.Context, folderID string) ([]GarmentPhoto, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}

// ImportServiceInterface defines the contract for garment photo imports
type ImportServiceInterface interface {
	ImportFromDrive(ctx context.Context, userID int, folderID string) (*models.ImportResult, error)
}

// OutfitServiceInterface defines the contract for outfit recommendations
type OutfitServiceInterface interface {
	Generate(ctx context.Context, req *models.GenerateOutfitsRequest) (*models.GenerateOutfitsResponse, error)
	Wear(ctx context.Context, itemIDs []int) (int, error)
}

var (
	_ ImportServiceInterface = (*ImportService)(nil)
	_ OutfitServiceInterface = (*OutfitService)(nil)
)
