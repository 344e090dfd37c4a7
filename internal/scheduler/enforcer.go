package scheduler

import (
	"sort"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// MaxReasonLen bounds every reason string in a plan row.
const MaxReasonLen = 80

const alternateReason = "Alternate option"

// Enforce turns suggested week rows into a final plan that respects the
// usage cap. Weeks are processed in ascending order with a fresh ledger.
// For each week the suggested primary is kept only if it names an eligible
// library place with remaining capacity; otherwise the best-fitting place
// other than the suggested alternate replaces it. The alternate is then kept
// only if it is eligible, has capacity and differs from the primary;
// otherwise the best-fitting place other than the primary replaces it.
// When nothing qualifies the slot is left empty. One row is emitted per
// theme, so a valid 52-week theme list always yields 52 rows.
func Enforce(suggestions []domain.WeekAssignment, places []domain.ScoredPlace, themes []domain.WeekTheme) []domain.WeekAssignment {
	ordered := make([]domain.WeekTheme, len(themes))
	copy(ordered, themes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Week < ordered[j].Week })

	byWeek := make(map[int]domain.WeekAssignment, len(suggestions))
	for _, s := range suggestions {
		if _, ok := byWeek[s.Week]; !ok {
			byWeek[s.Week] = s
		}
	}

	library := make(map[string]*domain.ScoredPlace, len(places))
	for i := range places {
		p := &places[i]
		if !p.Eligible() {
			continue
		}
		if _, ok := library[p.Key()]; !ok {
			library[p.Key()] = p
		}
	}
	resolve := func(name string) string {
		if p, ok := library[domain.NormalizeKey(name)]; ok {
			return p.Name
		}
		return ""
	}

	ledger := NewUsageLedger(MaxUsesPerPlace)
	rows := make([]domain.WeekAssignment, 0, len(ordered))

	for _, theme := range ordered {
		s := byWeek[theme.Week]
		primary, primaryReason := resolve(s.PlaceName), s.Reason
		alt, altReason := resolve(s.AlternateName), s.AlternateReason

		if primary == "" || !ledger.CanUse(primary) {
			primary, primaryReason = "", ""
			if best := bestAvailable(theme, places, ledger, alt); best != nil {
				primary = best.Name
				primaryReason = `Best available fit for "` + theme.Title + `"`
			}
		}

		if alt == "" || !ledger.CanUse(alt) || domain.NormalizeKey(alt) == domain.NormalizeKey(primary) {
			alt, altReason = "", ""
			if best := bestAvailable(theme, places, ledger, primary); best != nil {
				alt = best.Name
				altReason = alternateReason
			}
		}

		ledger.Record(primary)
		ledger.Record(alt)

		rows = append(rows, domain.WeekAssignment{
			Week:            theme.Week,
			PlaceName:       primary,
			Reason:          domain.Truncate(primaryReason, MaxReasonLen),
			AlternateName:   alt,
			AlternateReason: domain.Truncate(altReason, MaxReasonLen),
		})
	}
	return rows
}

// bestAvailable returns the top-ranked eligible place with capacity whose
// key differs from exclude's, or nil.
func bestAvailable(theme domain.WeekTheme, places []domain.ScoredPlace, ledger *UsageLedger, exclude string) *domain.ScoredPlace {
	excludeKey := domain.NormalizeKey(exclude)
	ranked := Rank(theme, places, func(c FitCandidate) bool {
		if excludeKey != "" && c.Key == excludeKey {
			return false
		}
		return ledger.CanUse(c.Place.Name)
	})
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0].Place
}
