package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"armario-outfits/db"
	"armario-outfits/models"
)

// WardrobeItemRepository handles database operations for wardrobe items
type WardrobeItemRepository struct{}

// NewWardrobeItemRepository creates a new WardrobeItemRepository
func NewWardrobeItemRepository() *WardrobeItemRepository {
	return &WardrobeItemRepository{}
}

// Ensure WardrobeItemRepository implements WardrobeItemRepositoryInterface
var _ WardrobeItemRepositoryInterface = (*WardrobeItemRepository)(nil)

const wardrobeItemColumns = `
	id, user_id, name, category, COALESCE(subcategory, ''), colors,
	COALESCE(primary_color, ''), COALESCE(secondary_color, ''), style_tags, occasions,
	layerable, wear_count, COALESCE(style, ''), image, COALESCE(photo_hash, ''),
	COALESCE(drive_file_id, ''), created_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWardrobeItem reads one row selected with wardrobeItemColumns.
// Array columns go through a pgtype.Map since database/sql cannot scan text[] on its own.
func scanWardrobeItem(row rowScanner) (models.WardrobeItem, error) {
	var item models.WardrobeItem
	var createdAt time.Time
	m := pgtype.NewMap()

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Category,
		&item.Subcategory,
		m.SQLScanner(&item.Colors),
		&item.PrimaryColor,
		&item.SecondaryColor,
		m.SQLScanner(&item.StyleTags),
		m.SQLScanner(&item.Occasions),
		&item.Layerable,
		&item.WearCount,
		&item.Style,
		&item.Image,
		&item.PhotoHash,
		&item.DriveFileID,
		&createdAt,
	)
	if err != nil {
		return item, err
	}
	item.CreatedAt = createdAt.Format(time.RFC3339)
	return item, nil
}

func (r *WardrobeItemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.WardrobeItem, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WardrobeItem{}
	for rows.Next() {
		item, err := scanWardrobeItem(rows)
		if err != nil {
			log.Printf("❌ Error scanning wardrobe item: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Create inserts a wardrobe item and returns the stored row
func (r *WardrobeItemRepository) Create(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error) {
	log.Printf("💾 Creating wardrobe item: name=%s, category=%s, user_id=%d", item.Name, item.Category, item.UserID)

	query := `
		INSERT INTO wardrobe_items (
			user_id, name, category, subcategory, colors, primary_color, secondary_color,
			style_tags, occasions, layerable, wear_count, style, image, photo_hash, drive_file_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING ` + wardrobeItemColumns

	created, err := scanWardrobeItem(db.DB.QueryRowContext(ctx, query,
		item.UserID,
		item.Name,
		item.Category,
		nullIfEmpty(item.Subcategory),
		nonNil(item.Colors),
		nullIfEmpty(item.PrimaryColor),
		nullIfEmpty(item.SecondaryColor),
		nonNil(item.StyleTags),
		nonNil(item.Occasions),
		item.Layerable,
		item.WearCount,
		nullIfEmpty(item.Style),
		item.Image,
		nullIfEmpty(item.PhotoHash),
		nullIfEmpty(item.DriveFileID),
	))
	if err != nil {
		log.Printf("❌ Error inserting wardrobe item: %v", err)
		return nil, fmt.Errorf("failed to create wardrobe item: %w", err)
	}

	log.Printf("✓ Wardrobe item created: id=%d", created.ID)
	return &created, nil
}

// ListByUser returns every wardrobe item of a user, oldest first
func (r *WardrobeItemRepository) ListByUser(ctx context.Context, userID int) ([]models.WardrobeItem, error) {
	log.Printf("🔍 Listing wardrobe items for user_id=%d", userID)

	query := `SELECT ` + wardrobeItemColumns + ` FROM wardrobe_items WHERE user_id = $1 ORDER BY id`
	items, err := r.queryItems(ctx, query, userID)
	if err != nil {
		log.Printf("❌ Error listing wardrobe items: %v", err)
		return nil, fmt.Errorf("failed to list wardrobe items: %w", err)
	}

	log.Printf("✓ Found %d wardrobe items for user_id=%d", len(items), userID)
	return items, nil
}

// GetByID returns a single wardrobe item or ErrNotFound
func (r *WardrobeItemRepository) GetByID(ctx context.Context, id int) (*models.WardrobeItem, error) {
	query := `SELECT ` + wardrobeItemColumns + ` FROM wardrobe_items WHERE id = $1`
	item, err := scanWardrobeItem(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wardrobe item %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ Error fetching wardrobe item %d: %v", id, err)
		return nil, fmt.Errorf("failed to get wardrobe item: %w", err)
	}
	return &item, nil
}

// Update applies the non-nil fields of req to the item and returns the stored row
func (r *WardrobeItemRepository) Update(ctx context.Context, id int, req *models.UpdateWardrobeItemRequest) (*models.WardrobeItem, error) {
	var sets []string
	var args []interface{}
	argIndex := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Subcategory != nil {
		add("subcategory", nullIfEmpty(*req.Subcategory))
	}
	if req.Colors != nil {
		add("colors", nonNil(*req.Colors))
	}
	if req.StyleTags != nil {
		add("style_tags", nonNil(*req.StyleTags))
	}
	if req.Occasions != nil {
		add("occasions", nonNil(*req.Occasions))
	}
	if req.Layerable != nil {
		add("layerable", *req.Layerable)
	}
	if req.WearCount != nil {
		add("wear_count", *req.WearCount)
	}
	if req.Style != nil {
		add("style", nullIfEmpty(*req.Style))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	log.Printf("💾 Updating wardrobe item %d (%d fields)", id, len(sets))
	query := fmt.Sprintf(`UPDATE wardrobe_items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIndex, wardrobeItemColumns)
	args = append(args, id)

	item, err := scanWardrobeItem(db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wardrobe item %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ Error updating wardrobe item %d: %v", id, err)
		return nil, fmt.Errorf("failed to update wardrobe item: %w", err)
	}

	log.Printf("✓ Wardrobe item %d updated", id)
	return &item, nil
}

// Delete removes a wardrobe item
func (r *WardrobeItemRepository) Delete(ctx context.Context, id int) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM wardrobe_items WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting wardrobe item %d: %v", id, err)
		return fmt.Errorf("failed to delete wardrobe item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("wardrobe item %d: %w", id, ErrNotFound)
	}
	log.Printf("🗑️  Wardrobe item %d deleted", id)
	return nil
}

// FindDuplicates returns the user's items sharing the photo hash, or the same name and category
func (r *WardrobeItemRepository) FindDuplicates(ctx context.Context, userID int, photoHash, name, category string) ([]models.WardrobeItem, error) {
	log.Printf("🔍 Checking duplicates: user_id=%d, name=%s, category=%s, has_hash=%v", userID, name, category, photoHash != "")

	query := `
		SELECT ` + wardrobeItemColumns + `
		FROM wardrobe_items
		WHERE user_id = $1
		  AND (
			($2 <> '' AND photo_hash = $2)
			OR (LOWER(name) = LOWER($3) AND LOWER(category) = LOWER($4))
		  )
		ORDER BY id
	`
	items, err := r.queryItems(ctx, query, userID, photoHash, name, category)
	if err != nil {
		log.Printf("❌ Error checking duplicates: %v", err)
		return nil, fmt.Errorf("failed to find duplicates: %w", err)
	}

	log.Printf("🔍 Duplicate check found %d items", len(items))
	return items, nil
}

// ExistsByDriveFileID checks if a wardrobe item was already imported from the Drive file
func (r *WardrobeItemRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM wardrobe_items WHERE drive_file_id = $1)`
	if err := db.DB.QueryRowContext(ctx, query, driveFileID).Scan(&exists); err != nil {
		log.Printf("❌ Error checking existence for drive_file_id %s: %v", driveFileID, err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// IncrementWearCount adds one wear to every listed item and returns how many rows changed
func (r *WardrobeItemRepository) IncrementWearCount(ctx context.Context, ids []int) (int, error) {
	log.Printf("👕 Incrementing wear count for %d items", len(ids))

	result, err := db.DB.ExecContext(ctx, `UPDATE wardrobe_items SET wear_count = wear_count + 1 WHERE id = ANY($1)`, ids)
	if err != nil {
		log.Printf("❌ Error incrementing wear count: %v", err)
		return 0, fmt.Errorf("failed to increment wear count: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Printf("✓ Wear count incremented for %d items", affected)
	return int(affected), nil
}
