package scheduler

import "github.com/alexanderramin/wildercal/internal/domain"

// KeywordFloor is the minimum fit a keyword suggestion must exceed.
const KeywordFloor = 5

const (
	keywordReason          = "Keyword match"
	keywordAlternateReason = "Keyword match alternate"
)

// SuggestByKeywords proposes a primary and an alternate for every theme from
// fit scores alone. Places at or below KeywordFloor are never suggested.
// Usage caps are not applied here; Enforce repairs them.
func SuggestByKeywords(places []domain.ScoredPlace, themes []domain.WeekTheme) []domain.WeekAssignment {
	out := make([]domain.WeekAssignment, 0, len(themes))
	for _, theme := range themes {
		ranked := Rank(theme, places, func(c FitCandidate) bool {
			return c.Fit > KeywordFloor
		})
		row := domain.WeekAssignment{
			Week:            theme.Week,
			Reason:          keywordReason,
			AlternateReason: keywordAlternateReason,
		}
		if len(ranked) > 0 {
			row.PlaceName = ranked[0].Place.Name
		}
		if len(ranked) > 1 {
			row.AlternateName = ranked[1].Place.Name
		}
		out = append(out, row)
	}
	return out
}
