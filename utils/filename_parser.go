package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var extRegex = regexp.MustCompile(`\.(png|jpg|jpeg|webp)$`)

// GarmentFileInfo holds the metadata encoded in a garment photo file name
type GarmentFileInfo struct {
	Category string
	Colors   []string
	Name     string
}

// ParseGarmentFileName parses a filename following the pattern:
// CATEGORY_COLOR1-COLOR2_NAME.JPG
// Example: tops_negro-blanco_camisa rayas.jpg
// Colors are passed through NormalizeColorName, underscores in the name become spaces
func ParseGarmentFileName(filename string) (*GarmentFileInfo, error) {
	nameWithoutExt := extRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(filename)), "")

	parts := strings.SplitN(nameWithoutExt, "_", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid filename format: expected CATEGORY_COLORS_NAME, got %s", filename)
	}

	category := strings.TrimSpace(parts[0])
	if category == "" {
		return nil, fmt.Errorf("invalid filename format: empty category in %s", filename)
	}

	colors := NormalizeColorNames(strings.Split(parts[1], "-"))
	if len(colors) == 0 {
		return nil, fmt.Errorf("invalid color format: expected COLOR1-COLOR2, got %s", parts[1])
	}

	name := strings.TrimSpace(strings.ReplaceAll(parts[2], "_", " "))
	if name == "" {
		return nil, fmt.Errorf("invalid filename format: empty name in %s", filename)
	}

	return &GarmentFileInfo{
		Category: category,
		Colors:   colors,
		Name:     name,
	}, nil
}
