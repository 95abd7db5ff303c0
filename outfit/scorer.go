package outfit

import (
	"strings"

	"armario-outfits/models"
)

const (
	harmonyBonus       = 10.0
	balanceBonus       = 5.0
	categoryWeight     = 2.0
	unwornCeiling      = 10.0
	maxBalancedExtras  = 2
	minBalancedGroups  = 2
	formalStyleBonus   = 5
	statementBonus     = 3
	interestColorScale = 2
)

// statementKeywords mark names of statement pieces
var statementKeywords = []string{"statement", "sequin", "embellished", "bold", "print"}

// Interest scores how eye-catching a single item is; it only picks the spotlight
func Interest(item models.WardrobeItem) int {
	score := 10 - item.WearCount
	if score < 0 {
		score = 0
	}
	score += len(item.Colors) * interestColorScale

	for _, tag := range item.StyleTags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "formal" || t == "elegant" {
			score += formalStyleBonus
			break
		}
	}

	if isStatementPiece(item) {
		score += statementBonus
	}
	return score
}

func isStatementPiece(item models.WardrobeItem) bool {
	if category, ok := NormalizeCategory(item.Category); ok && category == CategoryDresses {
		return true
	}
	name := strings.ToLower(item.Name)
	for _, kw := range statementKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// SelectSpotlight returns the most interesting item; ties go to the first one
func SelectSpotlight(items []models.WardrobeItem) models.WardrobeItem {
	var best models.WardrobeItem
	bestScore := -1
	for _, item := range items {
		if s := Interest(item); s > bestScore {
			best = item
			bestScore = s
		}
	}
	return best
}

// categoryCounts counts items per normalized category
func categoryCounts(items []models.WardrobeItem) map[Category]int {
	counts := make(map[Category]int)
	for _, item := range items {
		if category, ok := NormalizeCategory(item.Category); ok {
			counts[category]++
		}
	}
	return counts
}

// CategoryBalance requires at least two categories and at most two accessories
func CategoryBalance(items []models.WardrobeItem) bool {
	counts := categoryCounts(items)
	return len(counts) >= minBalancedGroups && counts[CategoryAccessories] <= maxBalancedExtras
}

// Score computes the base desirability of a candidate and sets its diagnostic flags
func Score(c *Candidate, opts Options) float64 {
	c.ColorHarmony = FullHarmony(c.Items)
	c.CategoryBalance = CategoryBalance(c.Items)

	score := 0.0
	if c.ColorHarmony {
		score += harmonyBonus
	}
	if c.CategoryBalance {
		score += balanceBonus
	}
	score += float64(len(categoryCounts(c.Items))) * categoryWeight

	if opts.PrioritizeUnworn && len(c.Items) > 0 {
		total := 0
		for _, item := range c.Items {
			total += item.WearCount
		}
		avg := float64(total) / float64(len(c.Items))
		if bonus := unwornCeiling - avg; bonus > 0 {
			score += bonus
		}
	}

	c.Score = score
	return score
}
