package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"armario-outfits/db"
	"armario-outfits/models"
)

// OutfitRepository handles database operations for saved outfits
type OutfitRepository struct{}

// NewOutfitRepository creates a new OutfitRepository
func NewOutfitRepository() *OutfitRepository {
	return &OutfitRepository{}
}

// Ensure OutfitRepository implements OutfitRepositoryInterface
var _ OutfitRepositoryInterface = (*OutfitRepository)(nil)

func scanOutfit(row rowScanner) (models.Outfit, error) {
	var outfit models.Outfit
	var createdAt time.Time
	m := pgtype.NewMap()

	err := row.Scan(
		&outfit.ID,
		&outfit.UserID,
		&outfit.Name,
		&outfit.Occasion,
		m.SQLScanner(&outfit.ItemIDs),
		&createdAt,
	)
	if err != nil {
		return outfit, err
	}
	outfit.CreatedAt = createdAt.Format(time.RFC3339)
	return outfit, nil
}

// Create saves an outfit
func (r *OutfitRepository) Create(ctx context.Context, req *models.CreateOutfitRequest) (*models.Outfit, error) {
	log.Printf("💾 Saving outfit: name=%s, occasion=%s, items=%v", req.Name, req.Occasion, req.ItemIDs)

	query := `
		INSERT INTO outfits (user_id, name, occasion, item_ids, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, name, occasion, item_ids, created_at
	`
	outfit, err := scanOutfit(db.DB.QueryRowContext(ctx, query, req.UserID, req.Name, req.Occasion, req.ItemIDs))
	if err != nil {
		log.Printf("❌ Error saving outfit: %v", err)
		return nil, fmt.Errorf("failed to create outfit: %w", err)
	}

	log.Printf("✓ Outfit saved: id=%d", outfit.ID)
	return &outfit, nil
}

// ListByUser returns the saved outfits of a user, newest first
func (r *OutfitRepository) ListByUser(ctx context.Context, userID int) ([]models.Outfit, error) {
	query := `
		SELECT id, user_id, name, occasion, item_ids, created_at
		FROM outfits
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := db.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.Printf("❌ Error listing outfits: %v", err)
		return nil, fmt.Errorf("failed to list outfits: %w", err)
	}
	defer rows.Close()

	outfits := []models.Outfit{}
	for rows.Next() {
		outfit, err := scanOutfit(rows)
		if err != nil {
			log.Printf("❌ Error scanning outfit: %v", err)
			continue
		}
		outfits = append(outfits, outfit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outfits: %w", err)
	}

	log.Printf("✓ Found %d outfits for user_id=%d", len(outfits), userID)
	return outfits, nil
}

// Delete removes a saved outfit
func (r *OutfitRepository) Delete(ctx context.Context, id int) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM outfits WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting outfit %d: %v", id, err)
		return fmt.Errorf("failed to delete outfit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("outfit %d: %w", id, ErrNotFound)
	}
	log.Printf("🗑️  Outfit %d deleted", id)
	return nil
}
