package curation

import (
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/keywords"
)

type seasonality struct {
	warm   bool
	winter bool
}

// categorySeasons is the default season fit of each category before any
// keyword evidence is considered.
var categorySeasons = map[domain.Category]seasonality{
	domain.CategoryNature:     {warm: true},
	domain.CategoryFarm:       {warm: true},
	domain.CategoryGarden:     {warm: true},
	domain.CategoryLibrary:    {winter: true},
	domain.CategoryMuseum:     {winter: true},
	domain.CategoryIndoorPlay: {winter: true},
	domain.CategorySeasonal:   {},
}

var (
	outdoorIndicators = keywords.NewSet(
		"park", "trail", "garden", "farm", "outdoor", "nature", "lake", "pool",
		"splash", "playground", "orchard", "pumpkin", "field", "campground", "zoo",
	)
	indoorIndicators = keywords.NewSet(
		"museum", "library", "indoor", "center", "art", "studio", "cafe",
		"theatre", "theater", "aquarium", "planetarium", "gallery",
	)
	indoorTypes = keywords.NewSet("museum", "library", "art_gallery", "shopping_mall", "movie_theater")
)

// InferAttributes derives the age and season flags for p from its category,
// name, description and place types. Age flags are permissive: every listed
// place is assumed reachable with a baby, a toddler and a preschooler.
func InferAttributes(p *domain.ScoredPlace) domain.Attributes {
	texts := append([]string{p.Name, p.Description}, p.Enrichment.PlaceTypes...)
	defaults := categorySeasons[p.Category]

	attrs := domain.Attributes{
		BabyFriendly:  true,
		ToddlerSafe:   true,
		PreschoolPlus: true,
		WarmWeather:   defaults.warm || outdoorIndicators.Any(texts...),
		WinterSpot:    defaults.winter || indoorIndicators.Any(texts...),
	}
	if !attrs.WinterSpot {
		for _, t := range p.Enrichment.PlaceTypes {
			if indoorTypes.Contains(t) {
				attrs.WinterSpot = true
				break
			}
		}
	}
	return attrs
}
