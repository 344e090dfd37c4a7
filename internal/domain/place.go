package domain

import "time"

// CandidateRecord is a raw place sighting from one discovery source.
type CandidateRecord struct {
	Name      string
	Source    SourceTag
	Snippet   string
	Category  Category
	SourceURL string
	Outdoor   *bool      // hint from sources that report it
	PriceHint *PriceTier // hint from sources that report it
}

// Enrichment holds externally sourced facts about a place. Every field is
// optional; a nil pointer means the lookup was skipped or returned nothing.
type Enrichment struct {
	ExternalID  string
	Rating      *float64
	ReviewCount *int
	PlaceTypes  []string
	PriceTier   *PriceTier
	Address     string
	Website     string
	Phone       string
	Latitude    *float64
	Longitude   *float64
}

// Attributes are the age and season suitability flags shown as display tags.
type Attributes struct {
	BabyFriendly  bool
	ToddlerSafe   bool
	PreschoolPlus bool
	WarmWeather   bool
	WinterSpot    bool
}

// ScoredPlace is a curated library entry.
type ScoredPlace struct {
	ID              string
	EditionID       string
	Name            string
	City            string
	State           string
	Category        Category
	PriceTier       PriceTier
	Description     string
	Source          SourceTag
	SourceURL       string
	IsChain         bool
	Attributes      Attributes
	Tags            string
	Score           int
	Status          Status
	Notes           string
	Enrichment      Enrichment
	WeekSuggestions []int
	CreatedAt       time.Time
}

// Key returns the normalized identity used for dedup and usage counting.
func (p *ScoredPlace) Key() string {
	return NormalizeKey(p.Name)
}

// Eligible reports whether the place may be assigned to a week.
func (p *ScoredPlace) Eligible() bool {
	return p.Status != StatusReject && NormalizeKey(p.Name) != ""
}

// SuggestedFor reports whether week is one of the place's preferred weeks.
func (p *ScoredPlace) SuggestedFor(week int) bool {
	for _, w := range p.WeekSuggestions {
		if w == week {
			return true
		}
	}
	return false
}
