package outfit

import (
	"armario-outfits/models"
)

// Recommend runs the full pipeline: filter, categorize, generate, dedup, score and rank.
// It never mutates items and keeps no state between calls. An empty or too small
// wardrobe yields an empty result, not an error.
func Recommend(items []models.WardrobeItem, opts Options) ([]Candidate, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	buckets := Categorize(Filter(items, opts))
	candidates := Dedup(Generate(buckets, opts))
	for i := range candidates {
		Score(&candidates[i], opts)
	}

	return Rank(candidates, opts.Preferences, opts.maxOutfits()), nil
}
