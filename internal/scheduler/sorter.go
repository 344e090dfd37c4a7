package scheduler

import (
	"sort"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// FitCandidate is a place rated against one week theme.
type FitCandidate struct {
	Place *domain.ScoredPlace
	Key   string
	Fit   float64
	index int
}

// CanonicalSort orders candidates by the deterministic ranking rules:
// 1. Fit: higher first
// 2. Alignment score: higher first
// 3. Normalized key: lexical ascending
// 4. Library position: earlier first
func CanonicalSort(candidates []FitCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Fit != b.Fit {
			return a.Fit > b.Fit
		}
		if a.Place.Score != b.Place.Score {
			return a.Place.Score > b.Place.Score
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.index < b.index
	})
}

// Rank rates every place accepted by keep against theme and returns them in
// canonical order. keep may be nil to accept every eligible place.
func Rank(theme domain.WeekTheme, places []domain.ScoredPlace, keep func(c FitCandidate) bool) []FitCandidate {
	out := make([]FitCandidate, 0, len(places))
	for i := range places {
		p := &places[i]
		if !p.Eligible() {
			continue
		}
		c := FitCandidate{Place: p, Key: p.Key(), Fit: FitScore(theme, p), index: i}
		if keep != nil && !keep(c) {
			continue
		}
		out = append(out, c)
	}
	CanonicalSort(out)
	return out
}
