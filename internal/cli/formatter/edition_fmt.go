package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/service"
)

// FormatEditionList renders every stored edition, newest first as listed.
func FormatEditionList(editions []*domain.Edition) string {
	if len(editions) == 0 {
		return Dim("No editions yet. Run 'wildercal curate --city <city>' to start one.") + "\n"
	}
	headers := []string{"ID", "CITY", "TEMPLATE", "STATUS", "PLANNED BY", "CREATED"}
	rows := make([][]string, 0, len(editions))
	for _, e := range editions {
		rows = append(rows, []string{
			TruncID(e.ID),
			Bold(e.Label()),
			e.TemplateVersion,
			EditionPill(e.Status),
			FormatPlanSource(e.PlanSource, e.Degraded),
			HumanDate(e.CreatedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatEditionDetail renders the summary box, the library and, when the
// edition has one, its plan.
func FormatEditionDetail(d *service.EditionDetail) string {
	var b strings.Builder
	e := d.Edition

	counts := make(map[domain.Status]int)
	for _, p := range d.Places {
		counts[p.Status]++
	}
	summary := fmt.Sprintf(
		"ID          %s\nTemplate    %s\nStatus      %s\nPlaces      %s\nPlanned by  %s\nCreated     %s",
		e.ID, e.TemplateVersion, EditionPill(e.Status),
		FormatStatusCounts(counts),
		FormatPlanSource(e.PlanSource, e.Degraded),
		HumanDate(e.CreatedAt),
	)
	b.WriteString(RenderBox(e.Label(), summary))
	b.WriteString("\n\n")

	b.WriteString(Header("Library"))
	b.WriteString("\n")
	b.WriteString(FormatPlaces(d.Places))

	if len(d.Assignments) > 0 && len(d.Themes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Weekly plan"))
		b.WriteString("\n")
		b.WriteString(FormatAssignments(d.Themes, d.Assignments))
	}
	if attempts := FormatStoredAttempts(d.Attempts); attempts != "" {
		b.WriteString("\n")
		b.WriteString(attempts)
	}
	return b.String()
}

// FormatCurateResult summarizes a curation run.
func FormatCurateResult(r *service.CurateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Curated %s for %s\n\n",
		StyleGreen.Render("✔"), Plural(len(r.Places), "place"), Bold(r.Edition.Label()))

	if len(r.Reports) > 0 {
		b.WriteString(FormatSourceReports(r.Reports))
		b.WriteString("\n")
	}
	if r.Enrichment.Total > 0 {
		fmt.Fprintf(&b, "Enriched    %s", RenderCoverage(r.Enrichment.Enriched, r.Enrichment.Total, 20))
		if r.Enrichment.Failed > 0 {
			fmt.Fprintf(&b, "  %s", StyleRed.Render(fmt.Sprintf("%d failed", r.Enrichment.Failed)))
		}
		b.WriteString("\n")
	}
	if r.Reviewed {
		fmt.Fprintf(&b, "Reviewed    %s\n", Plural(len(r.Rejections), "rejection"))
		for _, rej := range r.Rejections {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleRed.Render("✖"), rej.Name, Dim(rej.Reason))
		}
	}
	fmt.Fprintf(&b, "Status      %s\n\n", FormatStatusCounts(r.ByStatus))

	b.WriteString(FormatPlaces(r.Places))
	fmt.Fprintf(&b, "\n%s\n", Dim("Next: wildercal plan "+shortID(r.Edition.ID)))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
