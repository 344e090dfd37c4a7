package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// Markdown renders the report as a shareable document: the plan grouped by
// season, then the library summary and the icon key.
func Markdown(r Report) string {
	var b strings.Builder
	label := "Untitled edition"
	if r.Edition != nil {
		label = r.Edition.Label()
	}
	fmt.Fprintf(&b, "# Wilder Seasons: %s\n\n", label)

	if r.Edition != nil {
		fmt.Fprintf(&b, "- Template: %s\n", r.Edition.TemplateVersion)
		fmt.Fprintf(&b, "- Status: %s\n", r.Edition.Status)
		if r.Edition.PlanSource != "" {
			fmt.Fprintf(&b, "- Planned by: %s", r.Edition.PlanSource)
			if r.Edition.Degraded {
				b.WriteString(" (fallback)")
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- Places: %d\n\n", len(r.Places))
	}

	if len(r.Assignments) > 0 {
		writePlan(&b, r)
	} else {
		b.WriteString("_No weekly plan yet._\n\n")
	}

	b.WriteString("## Library\n\n")
	b.WriteString("| Category | Places | Recommended | Consider | Review | Reject | Avg Score |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
	for _, s := range Summarize(r.Places) {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d | %d |\n",
			cell(s.Category.Label()), s.Total,
			s.ByStatus[domain.StatusRecommended], s.ByStatus[domain.StatusConsider],
			s.ByStatus[domain.StatusReview], s.ByStatus[domain.StatusReject],
			s.AvgScore)
	}

	b.WriteString("\n## Icon Key\n\n")
	for _, t := range curation.Legend() {
		fmt.Fprintf(&b, "- %s %s\n", t.Icon, t.Label)
	}
	return b.String()
}

func writePlan(b *strings.Builder, r Report) {
	byWeek := make(map[int]domain.WeekAssignment, len(r.Assignments))
	for _, a := range r.Assignments {
		byWeek[a.Week] = a
	}
	tags := make(map[string]string, len(r.Places))
	for i := range r.Places {
		tags[r.Places[i].Key()] = r.Places[i].Tags
	}

	var current domain.Season
	for _, t := range r.Themes {
		season := domain.SeasonForWeek(t.Week)
		if season != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = season
			fmt.Fprintf(b, "## %s\n\n", seasonTitle(season))
			b.WriteString("| Week | Theme | Place | Icons | Alternate |\n")
			b.WriteString("|---:|---|---|---|---|\n")
		}
		a := byWeek[t.Week]
		place := a.PlaceName
		if place == "" {
			place = "_open_"
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n",
			t.Week, cell(t.Title), cell(place), tags[domain.NormalizeKey(a.PlaceName)], cell(a.AlternateName))
	}
	b.WriteString("\n")
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// HTML renders Markdown(r) as a standalone page.
func HTML(r Report) (string, error) {
	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(r)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	title := "Wilder Seasons"
	if r.Edition != nil {
		title += ": " + r.Edition.Label()
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) +
		"</title><style>" + reportCSS + "</style></head><body>" + content.String() + "</body></html>", nil
}

const reportCSS = `body{font-family:system-ui,sans-serif;max-width:960px;margin:2rem auto;padding:0 1rem;color:#243b2f}` +
	`table{border-collapse:collapse;width:100%;margin-bottom:1.5rem}` +
	`th,td{border:1px solid #cfdcc6;padding:.35rem .5rem;text-align:left}` +
	`th{background:#e2efda}h2{margin-top:2rem}`
