package outfit

import (
	"strings"

	"armario-outfits/models"
)

// Category is a normalized clothing category
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryShoes       Category = "shoes"
	CategorySocks       Category = "socks"
	CategoryAccessories Category = "accessories"
)

// Buckets maps each normalized category to its items, in input order
type Buckets map[Category][]models.WardrobeItem

// NormalizeCategory maps free-form category text onto the fixed taxonomy.
// Rules are checked in order; the second return value is false when nothing matches.
func NormalizeCategory(raw string) (Category, bool) {
	c := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(c, "top") || c == "blouse" || c == "shirt" || c == "sweater":
		return CategoryTops, true
	case strings.Contains(c, "bottom") || c == "pant" || c == "skirt" || c == "jean":
		return CategoryBottoms, true
	case strings.Contains(c, "dress"):
		return CategoryDresses, true
	case strings.Contains(c, "shoe") || c == "boot" || c == "sandal":
		return CategoryShoes, true
	case strings.Contains(c, "sock"):
		return CategorySocks, true
	case strings.Contains(c, "accessor") || c == "bag" || c == "jewelry" || c == "scarf" || c == "hat" || c == "belt":
		return CategoryAccessories, true
	}
	return "", false
}

// Categorize buckets items by normalized category.
// Items whose category matches no rule are dropped.
func Categorize(items []models.WardrobeItem) Buckets {
	buckets := make(Buckets)
	for _, item := range items {
		category, ok := NormalizeCategory(item.Category)
		if !ok {
			continue
		}
		buckets[category] = append(buckets[category], item)
	}
	return buckets
}
