package utils

import (
	"strings"
)

// NormalizeColorName maps color names to the English names used by the outfit engine
// Input is normalized to lowercase before mapping
// Returns the lowercase English name, or the trimmed lowercase input if unknown
func NormalizeColorName(color string) string {
	colorLower := strings.ToLower(strings.TrimSpace(color))

	colorMap := map[string]string{
		"negro":         "black",
		"blanco":        "white",
		"gris":          "gray",
		"gris jaspeado": "gray",
		"beis":          "beige",
		"beige":         "beige",
		"café":          "brown",
		"cafe":          "brown",
		"marrón":        "brown",
		"tabaco":        "tan",
		"crema":         "cream",
		"marfil":        "ivory",
		"hueso":         "off-white",
		"off white":     "off-white",
		"rojo":          "red",
		"vinotinto":     "burgundy",
		"vino":          "wine",
		"azul":          "blue",
		"azul oscuro":   "navy",
		"azul marino":   "navy",
		"azul cielo":    "sky blue",
		"azul rey":      "royal blue",
		"azul petróleo": "teal",
		"turquesa":      "turquoise",
		"verde":         "green",
		"verde militar": "olive",
		"verde oliva":   "olive",
		"verde menta":   "mint",
		"verde limón":   "green",
		"amarillo":      "yellow",
		"dorado":        "gold",
		"mostaza":       "mustard",
		"naranja":       "orange",
		"coral":         "coral",
		"durazno":       "peach",
		"terracota":     "terracotta",
		"morado":        "purple",
		"lila":          "lavender",
		"violeta":       "violet",
		"rosado":        "pink",
		"rosa":          "pink",
		"palo de rosa":  "rose",
		"fucsia":        "fuchsia",
		"salmón":        "salmon",
	}

	if name, exists := colorMap[colorLower]; exists {
		return name
	}

	return colorLower
}

// NormalizeColorNames maps every entry with NormalizeColorName and drops empty values
func NormalizeColorNames(colors []string) []string {
	normalized := make([]string, 0, len(colors))
	for _, c := range colors {
		if name := NormalizeColorName(c); name != "" {
			normalized = append(normalized, name)
		}
	}
	return normalized
}
