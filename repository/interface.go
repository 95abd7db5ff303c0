package repository

import (
	"context"
	"errors"

	"armario-outfits/models"
)

// ErrNotFound is returned when a row with the requested id does not exist
var ErrNotFound = errors.New("not found")

// WardrobeItemRepositoryInterface defines the contract for wardrobe item repository operations
type WardrobeItemRepositoryInterface interface {
	Create(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error)
	ListByUser(ctx context.Context, userID int) ([]models.WardrobeItem, error)
	GetByID(ctx context.Context, id int) (*models.WardrobeItem, error)
	Update(ctx context.Context, id int, req *models.UpdateWardrobeItemRequest) (*models.WardrobeItem, error)
	Delete(ctx context.Context, id int) error
	FindDuplicates(ctx context.Context, userID int, photoHash, name, category string) ([]models.WardrobeItem, error)
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	IncrementWearCount(ctx context.Context, ids []int) (int, error)
}

// OutfitRepositoryInterface defines the contract for saved outfit repository operations
type OutfitRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateOutfitRequest) (*models.Outfit, error)
	ListByUser(ctx context.Context, userID int) ([]models.Outfit, error)
	Delete(ctx context.Context, id int) error
}
