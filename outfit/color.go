package outfit

import (
	"strings"

	"armario-outfits/models"
)

// colorFamilies groups color names into coarse families
var colorFamilies = []struct {
	name   string
	colors []string
}{
	{"neutrals", []string{"black", "white", "gray", "grey", "beige", "tan", "brown", "cream", "ivory", "off-white"}},
	{"reds", []string{"red", "burgundy", "crimson", "wine", "cherry", "maroon"}},
	{"blues", []string{"blue", "navy", "royal blue", "sky blue", "turquoise", "teal", "indigo"}},
	{"greens", []string{"green", "olive", "forest green", "emerald", "mint", "sage"}},
	{"yellows", []string{"yellow", "gold", "mustard", "butter", "lemon"}},
	{"oranges", []string{"orange", "coral", "peach", "rust", "terracotta"}},
	{"purples", []string{"purple", "violet", "lavender", "plum", "magenta"}},
	{"pinks", []string{"pink", "rose", "fuchsia", "blush", "salmon"}},
}

var neutrals = map[string]bool{
	"black":     true,
	"white":     true,
	"gray":      true,
	"grey":      true,
	"beige":     true,
	"tan":       true,
	"brown":     true,
	"cream":     true,
	"ivory":     true,
	"off-white": true,
}

// complementaryColors holds color wheel opposites
var complementaryColors = map[string][]string{
	"red":    {"green", "teal"},
	"green":  {"red", "pink"},
	"blue":   {"orange", "coral"},
	"orange": {"blue", "navy"},
	"yellow": {"purple", "violet"},
	"purple": {"yellow", "gold"},
	"pink":   {"green", "mint"},
	"navy":   {"orange", "coral", "yellow"},
}

// analogousColors holds near neighbours on the color wheel
var analogousColors = map[string][]string{
	"blue":   {"green", "purple", "teal"},
	"green":  {"blue", "yellow", "teal"},
	"red":    {"orange", "pink", "purple"},
	"orange": {"red", "yellow", "coral"},
	"yellow": {"orange", "green", "gold"},
	"purple": {"blue", "red", "pink"},
	"pink":   {"red", "purple", "coral"},
}

func normalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}

// IsNeutral reports whether a color goes with everything
func IsNeutral(color string) bool {
	return neutrals[normalizeColor(color)]
}

func tableContains(table map[string][]string, key, value string) bool {
	for _, c := range table[key] {
		if c == value {
			return true
		}
	}
	return false
}

// ColorsCompatible determines if two colors are compatible based on color harmony rules.
// Identical colors and neutrals always match; otherwise the pair must appear in the
// complementary or analogous tables, looked up in either direction.
func ColorsCompatible(a, b string) bool {
	c1 := normalizeColor(a)
	c2 := normalizeColor(b)

	if c1 == c2 {
		return true
	}
	if neutrals[c1] || neutrals[c2] {
		return true
	}
	if tableContains(complementaryColors, c1, c2) || tableContains(complementaryColors, c2, c1) {
		return true
	}
	if tableContains(analogousColors, c1, c2) || tableContains(analogousColors, c2, c1) {
		return true
	}
	return false
}

// ItemsCompatible reports whether any color of a matches any color of b.
// An item without colors is treated as neutral.
func ItemsCompatible(a, b models.WardrobeItem) bool {
	if len(a.Colors) == 0 || len(b.Colors) == 0 {
		return true
	}
	for _, ca := range a.Colors {
		for _, cb := range b.Colors {
			if ColorsCompatible(ca, cb) {
				return true
			}
		}
	}
	return false
}

// FullHarmony reports whether every pair of items is compatible
func FullHarmony(items []models.WardrobeItem) bool {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if !ItemsCompatible(items[i], items[j]) {
				return false
			}
		}
	}
	return true
}

// compatibleWithAll reports whether candidate matches every item already in the outfit
func compatibleWithAll(candidate models.WardrobeItem, items []models.WardrobeItem) bool {
	for _, item := range items {
		if !ItemsCompatible(candidate, item) {
			return false
		}
	}
	return true
}

// ColorFamily returns the family name for a color, or "other"
func ColorFamily(color string) string {
	c := normalizeColor(color)
	for _, family := range colorFamilies {
		for _, member := range family.colors {
			if member == c {
				return family.name
			}
		}
	}
	return "other"
}

// PrimaryColor returns the first non-neutral color, falling back to the first color
func PrimaryColor(colors []string) string {
	if len(colors) == 0 {
		return "neutral"
	}
	for _, c := range colors {
		if !IsNeutral(c) {
			return c
		}
	}
	return colors[0]
}
