package outfit

import (
	"errors"
	"math/rand"
)

const (
	// DefaultMaxOutfits is used when Options.MaxOutfits is zero
	DefaultMaxOutfits = 6
	// maxOutfitItems is the item-count ceiling for a single outfit
	maxOutfitItems = 8

	maxDresses = 4
	maxTops    = 4
	maxBottoms = 3
	maxShoes   = 3
)

// ErrInvalidMaxOutfits is returned for a negative MaxOutfits
var ErrInvalidMaxOutfits = errors.New("maxOutfits must not be negative")

// Preferences carries user taste used for ranking boosts
type Preferences struct {
	FavoriteColors  []string
	PreferredStyles []string
}

// Options configures one generation call
type Options struct {
	MaxOutfits  int
	Occasion    string
	Temperature string
	// AllowPartialOutfits enables the layering, sock and accessory passes
	AllowPartialOutfits bool
	// PrioritizeUnworn enables the wear-count scoring term
	PrioritizeUnworn bool
	Preferences      Preferences

	// Rand shuffles the accessory pool. When nil accessories are taken in
	// descending interest order, which keeps output deterministic.
	// A *rand.Rand is not safe for concurrent use.
	Rand *rand.Rand

	// TemperatureRules maps a temperature band to avoid keywords.
	// DefaultTemperatureRules is used when nil.
	TemperatureRules map[string][]string
}

// DefaultOptions returns the options used by the original generator
func DefaultOptions() Options {
	return Options{
		MaxOutfits:          DefaultMaxOutfits,
		AllowPartialOutfits: true,
		PrioritizeUnworn:    true,
	}
}

func (o Options) validate() error {
	if o.MaxOutfits < 0 {
		return ErrInvalidMaxOutfits
	}
	return nil
}

func (o Options) maxOutfits() int {
	if o.MaxOutfits == 0 {
		return DefaultMaxOutfits
	}
	return o.MaxOutfits
}
