// Package outfit builds ranked outfit combinations from wardrobe items.
//
// The pipeline is pure and synchronous:
//
//	Filter -> Categorize -> Generate -> Dedup -> Score -> Rank
//
// Color matching uses fixed neutral, complementary and analogous tables.
// Every returned outfit is in full pairwise color harmony and has a unique
// signature (its sorted item IDs).
package outfit
