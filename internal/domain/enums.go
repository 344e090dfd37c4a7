package domain

import "strings"

type Category string

const (
	CategoryNature     Category = "nature"
	CategoryFarm       Category = "farm"
	CategoryLibrary    Category = "library"
	CategoryMuseum     Category = "museum"
	CategoryIndoorPlay Category = "indoor_play"
	CategoryGarden     Category = "garden"
	CategorySeasonal   Category = "seasonal"
)

// Categories lists every category in discovery order.
var Categories = []Category{
	CategoryNature,
	CategoryFarm,
	CategoryLibrary,
	CategoryMuseum,
	CategoryIndoorPlay,
	CategoryGarden,
	CategorySeasonal,
}

// ParseCategory maps free text to a Category. Unknown values become nature.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CategoryNature
}

var categoryLabels = map[Category]string{
	CategoryNature:     "Parks & Nature",
	CategoryFarm:       "Farms & Petting Zoos",
	CategoryLibrary:    "Libraries",
	CategoryMuseum:     "Museums",
	CategoryIndoorPlay: "Indoor Play",
	CategoryGarden:     "Gardens & Markets",
	CategorySeasonal:   "Seasonal Events",
}

// Label is the display name used in reports.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PriceTier is ordinal: cheaper tiers rank first.
type PriceTier string

const (
	PriceFree   PriceTier = "FREE"
	Price5To10  PriceTier = "$5_$10"
	Price10To15 PriceTier = "$10_$15"
	Price15Plus PriceTier = "$15_plus"
)

var PriceTiers = []PriceTier{PriceFree, Price5To10, Price10To15, Price15Plus}

// ParsePriceTier accepts the canonical tier strings. Anything else, including
// an empty string, is reported as not ok.
func ParsePriceTier(s string) (PriceTier, bool) {
	t := PriceTier(strings.TrimSpace(s))
	for _, known := range PriceTiers {
		if strings.EqualFold(string(t), string(known)) {
			return known, true
		}
	}
	return "", false
}

// Rank returns 0 for FREE up to 3 for $15_plus, and -1 for unknown tiers.
func (p PriceTier) Rank() int {
	for i, known := range PriceTiers {
		if p == known {
			return i
		}
	}
	return -1
}

type Status string

const (
	StatusRecommended Status = "RECOMMENDED"
	StatusConsider    Status = "CONSIDER"
	StatusReview      Status = "REVIEW"
	StatusReject      Status = "REJECT"
)

type SourceTag string

const (
	SourceGemini       SourceTag = "gemini"
	SourceBrave        SourceTag = "brave"
	SourceGrokX        SourceTag = "grok_x"
	SourceGrokWeb      SourceTag = "grok_web"
	SourceGrokBlog     SourceTag = "grok_blog"
	SourceGrokSeasonal SourceTag = "grok_seasonal"
	SourceSample       SourceTag = "sample"
	SourceManual       SourceTag = "manual"
)

type EditionStatus string

const (
	EditionDraft   EditionStatus = "draft"
	EditionCurated EditionStatus = "curated"
	EditionPlanned EditionStatus = "planned"
)

type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)
