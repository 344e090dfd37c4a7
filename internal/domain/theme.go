package domain

// WeeksPerYear is the fixed length of an edition calendar.
const WeeksPerYear = 52

// WeekTheme is one slot of a calendar template.
type WeekTheme struct {
	Week          int    `yaml:"week" json:"week"`
	Title         string `yaml:"title" json:"title"`
	ReferenceNote string `yaml:"reference_note" json:"ref"`
}

// WeekAssignment binds a week to a primary and an alternate place.
type WeekAssignment struct {
	Week            int
	PlaceName       string
	Reason          string
	AlternateName   string
	AlternateReason string
}

// SeasonForWeek buckets a calendar week: winter 1-9 and 49-52, spring 10-22,
// summer 23-35, fall 36-48.
func SeasonForWeek(week int) Season {
	switch {
	case week >= 10 && week <= 22:
		return SeasonSpring
	case week >= 23 && week <= 35:
		return SeasonSummer
	case week >= 36 && week <= 48:
		return SeasonFall
	default:
		return SeasonWinter
	}
}
