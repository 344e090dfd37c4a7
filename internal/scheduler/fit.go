package scheduler

import (
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/keywords"
)

// fitRule awards points when the theme title mentions one of its words and
// the place satisfies the rule's condition.
type fitRule struct {
	title   *keywords.Set
	points  float64
	applies func(p *domain.ScoredPlace, name string) bool
}

func inCategory(cats ...domain.Category) func(*domain.ScoredPlace, string) bool {
	return func(p *domain.ScoredPlace, _ string) bool {
		for _, c := range cats {
			if p.Category == c {
				return true
			}
		}
		return false
	}
}

var fitRules = []fitRule{
	{keywords.NewSet("farm"), 30, inCategory(domain.CategoryFarm)},
	{keywords.NewSet("garden"), 30, inCategory(domain.CategoryGarden, domain.CategoryNature)},
	{keywords.NewSet("zoo"), 30, func(p *domain.ScoredPlace, name string) bool {
		return p.Category == domain.CategoryFarm || strings.Contains(name, "zoo")
	}},
	{keywords.NewSet("library"), 30, inCategory(domain.CategoryLibrary)},
	{keywords.NewSet("museum"), 30, inCategory(domain.CategoryMuseum)},
	{keywords.NewSet("craft", "art", "play"), 30, inCategory(domain.CategoryIndoorPlay)},
	{keywords.NewSet("nature", "trail", "prairie"), 25, inCategory(domain.CategoryNature)},
	{keywords.NewSet("bird", "animal", "creature"), 20, inCategory(domain.CategoryNature, domain.CategoryFarm)},
	{keywords.NewSet("pumpkin", "harvest", "halloween", "christmas", "holiday"), 30, inCategory(domain.CategorySeasonal)},
	{keywords.NewSet("spring", "bloom", "flower", "seed"), 20, inCategory(domain.CategoryGarden, domain.CategoryNature)},
	{keywords.NewSet("water", "splash", "river", "lake"), 20, inCategory(domain.CategoryNature)},
	{keywords.NewSet("bug", "butterfly", "insect"), 20, inCategory(domain.CategoryNature, domain.CategoryGarden)},
	{keywords.NewSet("cozy", "warm", "winter", "snow", "frost"), 15, func(p *domain.ScoredPlace, _ string) bool {
		return p.Attributes.WinterSpot
	}},
}

// FitScore rates how well p suits a week theme. A place that lists the week
// among its suggestions gets +100; each matching title rule adds its points;
// every name word longer than three letters found in the reference note adds
// 10; the alignment score adds a tenth of itself.
func FitScore(theme domain.WeekTheme, p *domain.ScoredPlace) float64 {
	title := strings.ToLower(theme.Title)
	ref := strings.ToLower(theme.ReferenceNote)
	name := strings.ToLower(p.Name)

	var score float64
	if p.SuggestedFor(theme.Week) {
		score += 100
	}
	for _, r := range fitRules {
		if r.title.Any(title) && r.applies(p, name) {
			score += r.points
		}
	}
	for _, word := range strings.Fields(name) {
		if len([]rune(word)) > 3 && strings.Contains(ref, word) {
			score += 10
		}
	}
	return score + float64(p.Score)/10
}
