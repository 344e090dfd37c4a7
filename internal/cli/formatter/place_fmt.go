package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// FormatPlaces renders a library as a table, best scores first.
func FormatPlaces(places []domain.ScoredPlace) string {
	if len(places) == 0 {
		return Dim("No places.") + "\n"
	}
	sorted := make([]domain.ScoredPlace, len(places))
	copy(sorted, places)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Name < sorted[j].Name
	})

	headers := []string{"PLACE", "CATEGORY", "PRICE", "RATING", "SCORE", "STATUS", "ICONS"}
	rows := make([][]string, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, []string{
			Bold(Truncate(p.Name, 36)),
			p.Category.Label(),
			PriceLabel(p.PriceTier),
			RatingLabel(p.Enrichment),
			ScoreText(p.Score),
			StatusPill(p.Status),
			p.Tags,
		})
	}
	return RenderTable(headers, rows)
}

// FormatStatusCounts renders "12 RECOMMENDED · 4 CONSIDER ..." in status
// order, skipping empty buckets.
func FormatStatusCounts(counts map[domain.Status]int) string {
	order := []domain.Status{domain.StatusRecommended, domain.StatusConsider, domain.StatusReview, domain.StatusReject}
	var parts []string
	for _, s := range order {
		if n := counts[s]; n > 0 {
			parts = append(parts, StatusStyle(s).Render(fmt.Sprintf("%d %s", n, s)))
		}
	}
	if len(parts) == 0 {
		return Dim("none")
	}
	return strings.Join(parts, Dim(" · "))
}

// FormatScore explains one place's brand score component by component.
func FormatScore(p *domain.ScoredPlace, r curation.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(p.Name), Dim(p.Category.Label()))
	fmt.Fprintf(&b, "Score   %s  %s\n\n", ScoreText(r.Score), StatusPill(r.Status))

	rows := [][]string{
		{"Accessibility", fmt.Sprint(r.Breakdown.Accessibility)},
		{"Nature", fmt.Sprint(r.Breakdown.Nature)},
		{"Family", fmt.Sprint(r.Breakdown.Family)},
		{"Local", fmt.Sprint(r.Breakdown.Local)},
	}
	b.WriteString(RenderTable([]string{"COMPONENT", "SCORE"}, rows))

	if r.HardFilter != "" {
		fmt.Fprintf(&b, "\n%s %s\n", StyleRed.Render("Hard filter:"), r.HardFilter)
	}
	if len(r.Notes) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Dim("Notes"))
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "  - %s\n", n)
		}
	}
	if p.Tags != "" {
		fmt.Fprintf(&b, "\nIcons   %s\n", p.Tags)
	}
	return RenderBox("Brand score", strings.TrimRight(b.String(), "\n"))
}

// FormatLegend renders the icon key.
func FormatLegend() string {
	var b strings.Builder
	b.WriteString(Header("Icon key"))
	b.WriteString("\n")
	for _, t := range curation.Legend() {
		fmt.Fprintf(&b, "  %s  %s\n", t.Icon, t.Label)
	}
	return b.String()
}
