package router

import (
	"context"
	"fmt"

	"armario-outfits/models"
	"armario-outfits/repository"
	"armario-outfits/service"
)

type fakeItemRepository struct {
	items      map[int]models.WardrobeItem
	nextID     int
	duplicates []models.WardrobeItem
	lastHash   string
}

var _ repository.WardrobeItemRepositoryInterface = (*fakeItemRepository)(nil)

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: map[int]models.WardrobeItem{}, nextID: 1}
}

func (r *fakeItemRepository) Create(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error) {
	created := *item
	created.ID = r.nextID
	r.nextID++
	r.items[created.ID] = created
	return &created, nil
}

func (r *fakeItemRepository) ListByUser(ctx context.Context, userID int) ([]models.WardrobeItem, error) {
	items := []models.WardrobeItem{}
	for id := 1; id < r.nextID; id++ {
		if item, ok := r.items[id]; ok && item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) GetByID(ctx context.Context, id int) (*models.WardrobeItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
	}
	return &item, nil
}

func (r *fakeItemRepository) Update(ctx context.Context, id int, req *models.UpdateWardrobeItemRequest) (*models.WardrobeItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.WearCount != nil {
		item.WearCount = *req.WearCount
	}
	r.items[id] = item
	return &item, nil
}

func (r *fakeItemRepository) Delete(ctx context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("wardrobe item %d: %w", id, repository.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepository) FindDuplicates(ctx context.Context, userID int, photoHash, name, category string) ([]models.WardrobeItem, error) {
	r.lastHash = photoHash
	return r.duplicates, nil
}

func (r *fakeItemRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	return false, nil
}

func (r *fakeItemRepository) IncrementWearCount(ctx context.Context, ids []int) (int, error) {
	return len(ids), nil
}

type fakeOutfitRepository struct {
	outfits []models.Outfit
}

var _ repository.OutfitRepositoryInterface = (*fakeOutfitRepository)(nil)

func (r *fakeOutfitRepository) Create(ctx context.Context, req *models.CreateOutfitRequest) (*models.Outfit, error) {
	outfit := models.Outfit{ID: len(r.outfits) + 1, UserID: req.UserID, Name: req.Name, Occasion: req.Occasion, ItemIDs: req.ItemIDs}
	r.outfits = append(r.outfits, outfit)
	return &outfit, nil
}

func (r *fakeOutfitRepository) ListByUser(ctx context.Context, userID int) ([]models.Outfit, error) {
	outfits := []models.Outfit{}
	for _, o := range r.outfits {
		if o.UserID == userID {
			outfits = append(outfits, o)
		}
	}
	return outfits, nil
}

func (r *fakeOutfitRepository) Delete(ctx context.Context, id int) error {
	for i, o := range r.outfits {
		if o.ID == id {
			r.outfits = append(r.outfits[:i], r.outfits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("outfit %d: %w", id, repository.ErrNotFound)
}

type fakeImportService struct {
	folderID string
	err      error
}

var _ service.ImportServiceInterface = (*fakeImportService)(nil)

func (s *fakeImportService) ImportFromDrive(ctx context.Context, userID int, folderID string) (*models.ImportResult, error) {
	s.folderID = folderID
	if s.err != nil {
		return nil, s.err
	}
	return &models.ImportResult{Total: 3, Imported: 2, Skipped: 1, Errors: []string{}}, nil
}

type fakeLookbookService struct {
	lastRequest service.LookbookRequest
}

var _ service.LookbookServiceInterface = (*fakeLookbookService)(nil)

func (s *fakeLookbookService) RenderHTML(ctx context.Context, req service.LookbookRequest) (string, error) {
	s.lastRequest = req
	if req.Temperature == "tropical" {
		return "", fmt.Errorf("%w %q", service.ErrUnknownTemperature, req.Temperature)
	}
	return "<html>lookbook</html>", nil
}

func (s *fakeLookbookService) GeneratePDF(ctx context.Context, req service.LookbookRequest) ([]byte, error) {
	s.lastRequest = req
	return []byte("%PDF-1.4"), nil
}
