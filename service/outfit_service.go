package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"armario-outfits/models"
	"armario-outfits/outfit"
	"armario-outfits/repository"
	"armario-outfits/styling"
	"armario-outfits/utils"
)

// minItemsForOutfits is the smallest wardrobe that can produce a recommendation
const minItemsForOutfits = 2

// ErrUnknownTemperature is returned when a request names a temperature band that is not configured
var ErrUnknownTemperature = errors.New("unknown temperature band")

// OutfitServiceConfig holds the environment-driven settings of the outfit service
type OutfitServiceConfig struct {
	// BaseURL prefixes item image links in recommendations
	BaseURL string
	// ShuffleAccessories seeds a clock-based Rand when a request carries no seed
	ShuffleAccessories bool
}

// OutfitService turns a user's wardrobe into ranked outfit recommendations
type OutfitService struct {
	items   repository.WardrobeItemRepositoryInterface
	styling *styling.Engine
	config  OutfitServiceConfig
}

// NewOutfitService creates a new OutfitService.
// When stylingEngine is nil the shared engine is used, and the built-in rules if none was loaded.
func NewOutfitService(items repository.WardrobeItemRepositoryInterface, stylingEngine *styling.Engine, config OutfitServiceConfig) *OutfitService {
	return &OutfitService{
		items:   items,
		styling: stylingEngine,
		config:  config,
	}
}

func (s *OutfitService) stylingEngine() *styling.Engine {
	if s.styling != nil {
		return s.styling
	}
	return styling.GetEngine()
}

// TemperatureBands returns the bands a request may name: the styling config's bands,
// or the built-in rule keys when no config is loaded
func (s *OutfitService) TemperatureBands() []string {
	if engine := s.stylingEngine(); engine != nil {
		return engine.Bands()
	}
	bands := make([]string, 0, len(outfit.DefaultTemperatureRules))
	for band := range outfit.DefaultTemperatureRules {
		bands = append(bands, band)
	}
	sort.Strings(bands)
	return bands
}

// checkRequest rejects unknown temperature bands and logs occasions missing from the styling config
func (s *OutfitService) checkRequest(requestID string, req *models.GenerateOutfitsRequest) error {
	if temperature := strings.ToLower(strings.TrimSpace(req.Temperature)); temperature != "" {
		bands := s.TemperatureBands()
		known := false
		for _, band := range bands {
			if band == temperature {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownTemperature, req.Temperature, strings.Join(bands, ", "))
		}
	}

	if occasion := strings.TrimSpace(req.Occasion); occasion != "" {
		if engine := s.stylingEngine(); engine != nil && !engine.IsKnownOccasion(occasion) {
			// item occasions are free-form, so this only filters
			log.Printf("⚠️  [%s] Occasion %q is not in the styling config", requestID, occasion)
		}
	}
	return nil
}

// BuildOptions maps a generation request to engine options
func (s *OutfitService) BuildOptions(req *models.GenerateOutfitsRequest) outfit.Options {
	opts := outfit.DefaultOptions()
	opts.MaxOutfits = req.MaxOutfits
	opts.Occasion = strings.ToLower(strings.TrimSpace(req.Occasion))
	opts.Temperature = strings.ToLower(strings.TrimSpace(req.Temperature))
	if req.AllowPartialOutfits != nil {
		opts.AllowPartialOutfits = *req.AllowPartialOutfits
	}
	if req.PrioritizeUnworn != nil {
		opts.PrioritizeUnworn = *req.PrioritizeUnworn
	}
	opts.Preferences = outfit.Preferences{
		FavoriteColors:  utils.NormalizeColorNames(req.FavoriteColors),
		PreferredStyles: req.PreferredStyles,
	}

	switch {
	case req.Seed != nil:
		opts.Rand = rand.New(rand.NewSource(*req.Seed))
	case s.config.ShuffleAccessories:
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if engine := s.stylingEngine(); engine != nil {
		opts.TemperatureRules = engine.TemperatureRules()
	}
	return opts
}

// Generate loads the user's wardrobe and returns ranked recommendations
func (s *OutfitService) Generate(ctx context.Context, req *models.GenerateOutfitsRequest) (*models.GenerateOutfitsResponse, error) {
	requestID := uuid.New().String()
	log.Printf("🔍 [%s] Generating outfits for user_id=%d, occasion=%q, temperature=%q, max=%d",
		requestID, req.UserID, req.Occasion, req.Temperature, req.MaxOutfits)

	if err := s.checkRequest(requestID, req); err != nil {
		return nil, err
	}

	items, err := s.items.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	response := &models.GenerateOutfitsResponse{
		RequestID: requestID,
		Outfits:   []models.OutfitRecommendation{},
	}

	if len(items) < minItemsForOutfits {
		log.Printf("⚠️  [%s] Only %d items in wardrobe, nothing to combine", requestID, len(items))
		response.Message = fmt.Sprintf("Add at least %d items to your wardrobe to get outfit recommendations", minItemsForOutfits)
		return response, nil
	}

	opts := s.BuildOptions(req)
	candidates, err := outfit.Recommend(normalizeWardrobe(items), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate outfits: %w", err)
	}

	byID := make(map[int]models.WardrobeItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, c := range candidates {
		response.Outfits = append(response.Outfits, s.toRecommendation(c, byID, opts))
	}

	if len(response.Outfits) == 0 {
		response.Message = "No outfit combinations match the current filters"
	}

	log.Printf("✓ [%s] Generated %d outfit recommendations", requestID, len(response.Outfits))
	return response, nil
}

// Wear records that the listed items were worn once more
func (s *OutfitService) Wear(ctx context.Context, itemIDs []int) (int, error) {
	return s.items.IncrementWearCount(ctx, itemIDs)
}

// normalizeWardrobe returns copies of the items with color names mapped to the engine vocabulary
func normalizeWardrobe(items []models.WardrobeItem) []models.WardrobeItem {
	normalized := make([]models.WardrobeItem, len(items))
	for i, item := range items {
		item.Colors = utils.NormalizeColorNames(item.Colors)
		normalized[i] = item
	}
	return normalized
}

func (s *OutfitService) imageURL(itemID int) string {
	return fmt.Sprintf("%s/api/wardrobe-items/%d/image?size=thumb", strings.TrimRight(s.config.BaseURL, "/"), itemID)
}

func (s *OutfitService) summary(item models.WardrobeItem, byID map[int]models.WardrobeItem) models.OutfitItemSummary {
	if original, ok := byID[item.ID]; ok {
		item = original
	}
	return models.OutfitItemSummary{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Colors:   item.Colors,
		ImageURL: s.imageURL(item.ID),
	}
}

func (s *OutfitService) toRecommendation(c outfit.Candidate, byID map[int]models.WardrobeItem, opts outfit.Options) models.OutfitRecommendation {
	rec := models.OutfitRecommendation{
		ID:              c.Signature,
		Name:            fmt.Sprintf("%s Look", byID[c.Spotlight.ID].Name),
		SpotlightItem:   s.summary(c.Spotlight, byID),
		Score:           c.Score,
		ColorHarmony:    c.ColorHarmony,
		CategoryBalance: c.CategoryBalance,
		Occasion:        opts.Occasion,
		Temperature:     opts.Temperature,
		Reasoning:       s.reasoning(c, byID, opts),
	}
	if rec.Occasion == "" {
		rec.Occasion = "any"
	}
	if rec.Temperature == "" {
		rec.Temperature = "any"
	}
	for _, item := range c.Items {
		rec.Items = append(rec.Items, s.summary(item, byID))
	}
	return rec
}

func (s *OutfitService) reasoning(c outfit.Candidate, byID map[int]models.WardrobeItem, opts outfit.Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This outfit features %d carefully matched pieces with %s as the centerpiece.",
		len(c.Items), byID[c.Spotlight.ID].Name)

	if family := outfit.ColorFamily(outfit.PrimaryColor(c.Spotlight.Colors)); family != "other" && family != "neutrals" {
		fmt.Fprintf(&b, " The spotlight brings color from the %s family.", family)
	}

	if c.ColorHarmony {
		b.WriteString(" Every color works with every other one.")
	}
	if !c.CategoryBalance {
		b.WriteString(balanceNote(c.Items))
	}

	if opts.Temperature != "" {
		if engine := s.stylingEngine(); engine != nil {
			if band, ok := engine.Band(opts.Temperature); ok {
				label := band.Label
				if label == "" {
					label = opts.Temperature
				}
				if len(band.Preferred) > 0 {
					fmt.Fprintf(&b, " %s weather favors %s.", label, strings.Join(band.Preferred, ", "))
				}
				if len(band.Accessories) > 0 {
					fmt.Fprintf(&b, " For %s weather, consider adding: %s.", label, strings.Join(band.Accessories, ", "))
				}
			}
		}
	}
	return b.String()
}

// balanceNote explains an unbalanced outfit: a single category, or more than two accessories
func balanceNote(items []models.WardrobeItem) string {
	accessories := 0
	for _, item := range items {
		if category, ok := outfit.NormalizeCategory(item.Category); ok && category == outfit.CategoryAccessories {
			accessories++
		}
	}

	if accessories > 2 {
		return fmt.Sprintf(" It carries %d accessories, more than the two a balanced look allows.", accessories)
	}
	return " All of its pieces come from a single category."
}
