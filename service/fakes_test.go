package service

import (
	"context"
	"fmt"
	"strings"

	"armario-outfits/models"
	"armario-outfits/repository"
)

// memoryItemRepository is an in-memory WardrobeItemRepositoryInterface for tests
type memoryItemRepository struct {
	items  []models.WardrobeItem
	nextID int
}

var _ repository.WardrobeItemRepositoryInterface = (*memoryItemRepository)(nil)

func newMemoryItemRepository(items ...models.WardrobeItem) *memoryItemRepository {
	r := &memoryItemRepository{nextID: 1}
	for _, item := range items {
		r.items = append(r.items, item)
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return r
}

func (r *memoryItemRepository) Create(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error) {
	created := *item
	created.ID = r.nextID
	r.nextID++
	r.items = append(r.items, created)
	return &created, nil
}

func (r *memoryItemRepository) ListByUser(ctx context.Context, userID int) ([]models.WardrobeItem, error) {
	items := []models.WardrobeItem{}
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memoryItemRepository) GetByID(ctx context.Context, id int) (*models.WardrobeItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
}

func (r *memoryItemRepository) Update(ctx context.Context, id int, req *models.UpdateWardrobeItemRequest) (*models.WardrobeItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			if req.Name != nil {
				r.items[i].Name = *req.Name
			}
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
}

func (r *memoryItemRepository) Delete(ctx context.Context, id int) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
}

func (r *memoryItemRepository) FindDuplicates(ctx context.Context, userID int, photoHash, name, category string) ([]models.WardrobeItem, error) {
	var dups []models.WardrobeItem
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		if (photoHash != "" && item.PhotoHash == photoHash) ||
			(strings.EqualFold(item.Name, name) && strings.EqualFold(item.Category, category)) {
			dups = append(dups, item)
		}
	}
	return dups, nil
}

func (r *memoryItemRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	for _, item := range r.items {
		if item.DriveFileID != "" && item.DriveFileID == driveFileID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryItemRepository) IncrementWearCount(ctx context.Context, ids []int) (int, error) {
	updated := 0
	for i := range r.items {
		for _, id := range ids {
			if r.items[i].ID == id {
				r.items[i].WearCount++
				updated++
				break
			}
		}
	}
	return updated, nil
}

// fakeDriveService serves photos from memory
type fakeDriveService struct {
	photos []GarmentPhoto
	files  map[string][]byte
}

var _ DriveServiceInterface = (*fakeDriveService)(nil)

func (f *fakeDriveService) ListGarmentPhotos(ctx context.Context, folderID string) ([]GarmentPhoto, error) {
	return f.photos, nil
}

func (f *fakeDriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return data, nil
}

func wardrobeItem(id int, name, category string, colors ...string) models.WardrobeItem {
	return models.WardrobeItem{ID: id, UserID: 1, Name: name, Category: category, Colors: colors}
}
