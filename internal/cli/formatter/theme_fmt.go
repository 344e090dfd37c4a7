package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// FormatPresetList renders the installed theme templates.
func FormatPresetList(presets []*themes.Preset) string {
	if len(presets) == 0 {
		return Dim("No theme templates installed.") + "\n"
	}
	headers := []string{"VERSION", "NAME", "WEEKS", "DESCRIPTION"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{Bold(p.Version), p.Name, fmt.Sprint(len(p.Themes)), Dim(Truncate(p.Description, 60))})
	}
	return RenderTable(headers, rows)
}

// FormatPreset renders every week of one template grouped by season.
func FormatPreset(p *themes.Preset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(p.Name), Dim(p.Version))
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n", Dim(p.Description))
	}

	var current domain.Season
	var rows [][]string
	flush := func() {
		if len(rows) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(Header(string(current)))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"WEEK", "THEME", "REFERENCE"}, rows))
		rows = nil
	}
	for _, t := range p.Themes {
		season := domain.SeasonForWeek(t.Week)
		if season != current {
			flush()
			current = season
		}
		rows = append(rows, []string{fmt.Sprintf("%2d", t.Week), t.Title, Dim(Truncate(t.ReferenceNote, 50))})
	}
	flush()
	return b.String()
}
