package outfit

import (
	"strings"

	"armario-outfits/models"
)

// DefaultTemperatureRules lists keywords to avoid per temperature band
var DefaultTemperatureRules = map[string][]string{
	"warm": {"heavy", "thick", "wool", "parka", "coat"},
	"mild": {"heavy coat", "thick sweater", "parka"},
	"cool": {"sleeveless", "sandal", "tank"},
	"cold": {"sleeveless", "sandal", "tank", "shorts", "linen"},
}

// Filter drops items that do not suit the requested occasion or temperature.
// Items without occasions are kept for every occasion.
func Filter(items []models.WardrobeItem, opts Options) []models.WardrobeItem {
	occasion := strings.ToLower(strings.TrimSpace(opts.Occasion))

	rules := opts.TemperatureRules
	if rules == nil {
		rules = DefaultTemperatureRules
	}
	avoid := rules[strings.ToLower(strings.TrimSpace(opts.Temperature))]

	filtered := make([]models.WardrobeItem, 0, len(items))
	for _, item := range items {
		if occasion != "" && !suitsOccasion(item, occasion) {
			continue
		}
		if avoidedForTemperature(item, avoid) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func suitsOccasion(item models.WardrobeItem, occasion string) bool {
	if len(item.Occasions) == 0 {
		return true
	}
	for _, o := range item.Occasions {
		if strings.ToLower(strings.TrimSpace(o)) == occasion {
			return true
		}
	}
	return false
}

func avoidedForTemperature(item models.WardrobeItem, avoid []string) bool {
	if len(avoid) == 0 {
		return false
	}
	text := strings.ToLower(item.Name + " " + item.Subcategory)
	for _, kw := range avoid {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
