package outfit

import (
	"sort"
	"strings"

	"armario-outfits/models"
)

const (
	favoriteColorBoost  = 5.0
	preferredStyleBoost = 3.0
)

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			set[v] = true
		}
	}
	return set
}

func anyItemHas(items []models.WardrobeItem, set map[string]bool, values func(models.WardrobeItem) []string) bool {
	if len(set) == 0 {
		return false
	}
	for _, item := range items {
		for _, v := range values(item) {
			if set[strings.ToLower(strings.TrimSpace(v))] {
				return true
			}
		}
	}
	return false
}

func itemColors(item models.WardrobeItem) []string { return item.Colors }
func itemStyles(item models.WardrobeItem) []string { return item.StyleTags }

// Rank applies preference boosts, sorts by score descending and truncates to max.
// The sort is stable, so equal scores keep generation order. Rank works on a copy.
func Rank(candidates []Candidate, prefs Preferences, max int) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	colors := lowerSet(prefs.FavoriteColors)
	styles := lowerSet(prefs.PreferredStyles)
	for i := range ranked {
		if anyItemHas(ranked[i].Items, colors, itemColors) {
			ranked[i].Score += favoriteColorBoost
		}
		if anyItemHas(ranked[i].Items, styles, itemStyles) {
			ranked[i].Score += preferredStyleBoost
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if max >= 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
