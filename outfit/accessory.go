package outfit

import (
	"math/rand"
	"sort"
	"strings"

	"armario-outfits/models"
)

// accessoryTypeKeywords is checked in order; "earring" must come before "ring"
var accessoryTypeKeywords = []struct {
	kind     string
	keywords []string
}{
	{"earrings", []string{"earring"}},
	{"necklace", []string{"necklace", "pendant", "chain"}},
	{"bracelet", []string{"bracelet", "bangle"}},
	{"ring", []string{"ring"}},
	{"bag", []string{"bag", "purse", "clutch", "tote"}},
	{"scarf", []string{"scarf"}},
	{"headwear", []string{"hat", "cap", "beanie"}},
	{"belt", []string{"belt"}},
	{"eyewear", []string{"glasses", "sunglasses"}},
}

// closedShoeKeywords mark shoes that are worn with socks
var closedShoeKeywords = []string{"boot", "sneaker", "trainer", "closed", "oxford", "loafer"}

// AccessoryType classifies an accessory by its name, falling back to its category
func AccessoryType(item models.WardrobeItem) string {
	name := strings.ToLower(item.Name)
	for _, entry := range accessoryTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.kind
			}
		}
	}
	return strings.ToLower(strings.TrimSpace(item.Category))
}

// needsSocks reports whether the shoe is a closed style
func needsSocks(shoe models.WardrobeItem) bool {
	text := strings.ToLower(shoe.Name + " " + shoe.Subcategory)
	for _, kw := range closedShoeKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// accessoryOrder returns a copy of the pool in the order accessories are tried
func accessoryOrder(pool []models.WardrobeItem, rng *rand.Rand) []models.WardrobeItem {
	ordered := make([]models.WardrobeItem, len(pool))
	copy(ordered, pool)

	if rng != nil {
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return Interest(ordered[i]) > Interest(ordered[j])
	})
	return ordered
}

func containsID(items []models.WardrobeItem, id int) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// addAccessories greedily appends accessories of distinct types until the
// pool is exhausted or the outfit reaches maxOutfitItems
func addAccessories(items []models.WardrobeItem, ordered []models.WardrobeItem) []models.WardrobeItem {
	used := make(map[string]bool)
	for _, acc := range ordered {
		if len(items) >= maxOutfitItems {
			break
		}
		kind := AccessoryType(acc)
		if used[kind] || containsID(items, acc.ID) || !compatibleWithAll(acc, items) {
			continue
		}
		items = append(items, acc)
		used[kind] = true
	}
	return items
}

// addSocks appends the first compatible sock when the shoe calls for one
func addSocks(items []models.WardrobeItem, shoe models.WardrobeItem, socks []models.WardrobeItem) []models.WardrobeItem {
	if !needsSocks(shoe) {
		return items
	}
	for _, sock := range socks {
		if containsID(items, sock.ID) || !compatibleWithAll(sock, items) {
			continue
		}
		return append(items, sock)
	}
	return items
}

// addLayer appends the first layerable top that differs from the base top
func addLayer(items []models.WardrobeItem, base models.WardrobeItem, tops []models.WardrobeItem) []models.WardrobeItem {
	for _, top := range tops {
		if !top.Layerable || top.ID == base.ID || containsID(items, top.ID) {
			continue
		}
		if compatibleWithAll(top, items) {
			return append(items, top)
		}
	}
	return items
}
