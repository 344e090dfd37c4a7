package curation

import (
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/keywords"
)

// Weights are the component multipliers of the alignment score. They sum to 1.
type Weights struct {
	Accessibility float64
	Nature        float64
	Family        float64
	Local         float64
}

// Thresholds are the minimum scores for each non-reject status.
type Thresholds struct {
	Recommended int
	Consider    int
	Review      int
}

// Criteria is the full brand rule set used by the scorer.
type Criteria struct {
	Weights       Weights
	Thresholds    Thresholds
	Accessibility map[domain.PriceTier]int
	// UnknownTierScore applies to tiers missing from Accessibility.
	UnknownTierScore int

	NatureKeywords *keywords.Set
	FamilyKeywords *keywords.Set
	Chains         *keywords.Set
	AdultVenues    *keywords.Set
	NatureTypes    *keywords.Set
	PublicTypes    *keywords.Set
}

// DefaultCriteria returns the Wilder Seasons brand rules.
func DefaultCriteria() Criteria {
	return Criteria{
		Weights: Weights{
			Accessibility: 0.30,
			Nature:        0.25,
			Family:        0.25,
			Local:         0.20,
		},
		Thresholds: Thresholds{
			Recommended: 80,
			Consider:    60,
			Review:      40,
		},
		Accessibility: map[domain.PriceTier]int{
			domain.PriceFree:   100,
			domain.Price5To10:  80,
			domain.Price10To15: 60,
			domain.Price15Plus: 20,
		},
		UnknownTierScore: 50,
		NatureKeywords: keywords.NewSet(
			"park", "trail", "nature", "garden", "farm", "outdoor", "wildlife",
			"botanical", "arboretum", "preserve", "lake", "creek", "forest",
			"prairie", "wetland",
		),
		FamilyKeywords: keywords.NewSet(
			"family", "children", "kids", "toddler", "baby", "playground",
			"storytime", "play", "education", "learning",
		),
		Chains: keywords.NewSet(
			"mcdonald", "walmart", "target", "starbucks", "chuck e cheese",
			"dave and buster", "sky zone", "main event", "urban air", "cinemark",
			"amc", "regal",
		),
		AdultVenues: keywords.NewSet(
			"bar", "brewery", "winery", "nightclub", "casino", "tattoo", "hookah",
			"vape", "liquor", "pub", "taproom",
		),
		NatureTypes: keywords.NewSet("park", "natural_feature", "campground", "zoo", "aquarium"),
		PublicTypes: keywords.NewSet("library", "park", "local_government_office", "city_hall"),
	}
}

var defaultCriteria = DefaultCriteria()

// LooksLikeChain reports whether a name carries a known chain indicator as
// whole words.
func LooksLikeChain(name string) bool {
	return defaultCriteria.Chains.AnyWord(name)
}

// LooksAdult reports whether any of texts names an adult venue.
func LooksAdult(texts ...string) bool {
	return defaultCriteria.AdultVenues.AnyWord(texts...)
}
