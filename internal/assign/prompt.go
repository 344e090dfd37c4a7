package assign

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/scheduler"
)

const maxRefLen = 120

const systemPrompt = `You are a week-matching specialist for Wilder Seasons, a family nature brand that creates 52-week adventure guides for families with young children (ages 0-9).

Your job is to match real local places to weekly themes, understanding the intent and spirit of each theme, not just its keywords.

Matching principles:
- Consider seasonality: outdoor places for spring and summer, indoor places for winter
- Match the mood and activity type of the theme to the character of the place
- Flagship places (zoos, museums, major parks) can anchor more than one week
- Prefer higher-scored places when several options fit equally
- Reference notes show the intent of a theme; find the closest local equivalent
- Every week must have a match, even if the fit is not perfect`

type libraryEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
	Warm     bool   `json:"warm"`
	Winter   bool   `json:"winter"`
	Score    int    `json:"score"`
}

type themeSummary struct {
	Week  int    `json:"week"`
	Title string `json:"title"`
	Ref   string `json:"ref"`
}

// buildUserPrompt renders the compact library and theme summary the model
// matches against. REJECT places never reach the prompt.
func buildUserPrompt(in Input) (string, error) {
	library := make([]libraryEntry, 0, len(in.Places))
	for i := range in.Places {
		p := &in.Places[i]
		if !p.Eligible() {
			continue
		}
		library = append(library, libraryEntry{
			Name:     p.Name,
			Category: string(p.Category),
			Desc:     p.Description,
			Warm:     p.Attributes.WarmWeather,
			Winter:   p.Attributes.WinterSpot,
			Score:    p.Score,
		})
	}
	summary := make([]themeSummary, 0, len(in.Themes))
	for _, t := range in.Themes {
		summary = append(summary, themeSummary{
			Week:  t.Week,
			Title: t.Title,
			Ref:   domain.Truncate(t.ReferenceNote, maxRefLen),
		})
	}

	libJSON, err := json.Marshal(library)
	if err != nil {
		return "", fmt.Errorf("encoding place library: %w", err)
	}
	themeJSON, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("encoding themes: %w", err)
	}

	return fmt.Sprintf(`You have a library of %d family-friendly places in %s. Match each of the %d weekly themes to the best local place from the library.

RULES:
1. Use each place at most %d times across all weeks (the system enforces this, but try your best)
2. Match by the intent and spirit of each theme
3. Consider seasonality: outdoor places (warm=true) for spring/summer, indoor places (winter=true) for winter
4. Provide an alternate place for each week; it must differ from the primary
5. Keep reasons brief (max %d characters)
6. Winter = weeks 1-9 and 49-52, Spring = weeks 10-22, Summer = weeks 23-35, Fall = weeks 36-48
7. Prefer higher-scored places when several options fit equally

PLACE LIBRARY:
%s

WEEKLY THEMES:
%s

Return ONLY a valid JSON array. Every week must have an entry:
[{"week":1,"placeName":"...","reason":"...","alternateName":"...","alternateReason":"..."}, ...]`,
		len(library), in.City, len(summary), scheduler.MaxUsesPerPlace, scheduler.MaxReasonLen,
		libJSON, themeJSON), nil
}
