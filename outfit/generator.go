package outfit

import (
	"armario-outfits/models"
)

// Candidate is one generated outfit
type Candidate struct {
	Items           []models.WardrobeItem
	Signature       string
	Spotlight       models.WardrobeItem
	Score           float64
	ColorHarmony    bool
	CategoryBalance bool
}

func firstN(items []models.WardrobeItem, n int) []models.WardrobeItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// generator holds the state of one Generate call
type generator struct {
	buckets    Buckets
	opts       Options
	seen       map[string]bool
	candidates []Candidate
	// accessories in deterministic order, nil when opts.Rand is set
	accessories []models.WardrobeItem
}

// Generate enumerates dress-based and separates-based outfits from the buckets.
// Every returned candidate is in full color harmony and has a unique signature.
func Generate(buckets Buckets, opts Options) []Candidate {
	g := &generator{
		buckets: buckets,
		opts:    opts,
		seen:    make(map[string]bool),
	}
	if opts.Rand == nil {
		g.accessories = accessoryOrder(buckets[CategoryAccessories], nil)
	}

	g.dressOutfits()
	g.separatesOutfits()

	return g.candidates
}

func (g *generator) dressOutfits() {
	dresses := firstN(g.buckets[CategoryDresses], maxDresses)
	shoes := firstN(g.buckets[CategoryShoes], maxShoes)

	for _, dress := range dresses {
		for _, shoe := range shoes {
			if dress.ID == shoe.ID {
				continue
			}
			base := []models.WardrobeItem{dress, shoe}
			if !FullHarmony(base) {
				continue
			}
			items := g.complete(base, shoe)
			g.accept(items, dress)
		}
	}
}

func (g *generator) separatesOutfits() {
	tops := firstN(g.buckets[CategoryTops], maxTops)
	bottoms := firstN(g.buckets[CategoryBottoms], maxBottoms)
	shoes := firstN(g.buckets[CategoryShoes], maxShoes)

	for _, top := range tops {
		for _, bottom := range bottoms {
			if top.ID == bottom.ID || !ItemsCompatible(top, bottom) {
				continue
			}
			for _, shoe := range shoes {
				if shoe.ID == top.ID || shoe.ID == bottom.ID {
					continue
				}
				base := []models.WardrobeItem{top, bottom, shoe}
				if !FullHarmony(base) {
					continue
				}
				spotlight := SelectSpotlight(base)
				items := base
				if g.opts.AllowPartialOutfits {
					items = addLayer(append([]models.WardrobeItem(nil), base...), top, g.buckets[CategoryTops])
				}
				items = g.complete(items, shoe)
				g.accept(items, spotlight)
			}
		}
	}
}

// complete runs the optional sock and accessory passes on a copy of base
func (g *generator) complete(base []models.WardrobeItem, shoe models.WardrobeItem) []models.WardrobeItem {
	items := append([]models.WardrobeItem(nil), base...)
	if !g.opts.AllowPartialOutfits {
		return items
	}

	items = addSocks(items, shoe, g.buckets[CategorySocks])

	ordered := g.accessories
	if g.opts.Rand != nil {
		ordered = accessoryOrder(g.buckets[CategoryAccessories], g.opts.Rand)
	}
	return addAccessories(items, ordered)
}

func (g *generator) accept(items []models.WardrobeItem, spotlight models.WardrobeItem) {
	signature := Signature(items)
	if g.seen[signature] {
		return
	}
	g.seen[signature] = true
	g.candidates = append(g.candidates, Candidate{
		Items:     items,
		Signature: signature,
		Spotlight: spotlight,
	})
}
