package outfit

import (
	"sort"
	"strconv"
	"strings"

	"armario-outfits/models"
)

// signatureDelimiter joins sorted item IDs
const signatureDelimiter = "-"

// Signature returns the canonical key of an item set: IDs sorted ascending and joined
func Signature(items []models.WardrobeItem) string {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, signatureDelimiter)
}

// Dedup keeps the first candidate for each signature
func Dedup(candidates []Candidate) []Candidate {
	seen := make(map[string]bool, len(candidates))
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		sig := c.Signature
		if sig == "" {
			sig = Signature(c.Items)
			c.Signature = sig
		}
		if seen[sig] {
			continue
		}
		seen[sig] = true
		result = append(result, c)
	}
	return result
}
