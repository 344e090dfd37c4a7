package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/assign"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// FormatAssignments renders the calendar one row per theme week. Empty
// slots show as "open".
func FormatAssignments(weekThemes []domain.WeekTheme, assignments []domain.WeekAssignment) string {
	byWeek := make(map[int]domain.WeekAssignment, len(assignments))
	for _, a := range assignments {
		byWeek[a.Week] = a
	}

	headers := []string{"WEEK", "SEASON", "THEME", "PLACE", "ALTERNATE"}
	rows := make([][]string, 0, len(weekThemes))
	for _, t := range weekThemes {
		a := byWeek[t.Week]
		rows = append(rows, []string{
			fmt.Sprintf("%2d", t.Week),
			Dim(string(domain.SeasonForWeek(t.Week))),
			Truncate(t.Title, 32),
			placeCell(a.PlaceName),
			placeCell(a.AlternateName),
		})
	}
	return RenderTable(headers, rows)
}

func placeCell(name string) string {
	if name == "" {
		return StyleYellow.Render("open")
	}
	return Truncate(name, 32)
}

// FormatPlanSource renders "keyword (fallback)" style provenance.
func FormatPlanSource(source string, degraded bool) string {
	if source == "" {
		return Dim("not planned")
	}
	if degraded {
		return StyleYellow.Render(source + " (fallback)")
	}
	return StyleGreen.Render(source)
}

// FormatAttempts lists each strategy the planner tried, in order.
func FormatAttempts(attempts []assign.Attempt) string {
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, attemptRow(a.Strategy, string(a.Outcome), a.LatencyMs, a.Error))
	}
	return attemptTable(rows)
}

// FormatStoredAttempts is FormatAttempts for the trace kept with an edition.
func FormatStoredAttempts(attempts []domain.PlanAttempt) string {
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, attemptRow(a.Strategy, a.Outcome, a.LatencyMs, a.Error))
	}
	return attemptTable(rows)
}

func attemptRow(strategy, outcome string, latencyMs int64, errText string) []string {
	style := StyleGreen
	if outcome != string(assign.OutcomeSuccess) {
		style = StyleRed
	}
	return []string{strategy, style.Render(outcome), fmt.Sprintf("%dms", latencyMs), Dim(Truncate(errText, 60))}
}

func attemptTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	return RenderTable([]string{"STRATEGY", "OUTCOME", "LATENCY", "ERROR"}, rows)
}

// FormatPlan renders a fresh plan: calendar, provenance and the fill rate.
func FormatPlan(edition *domain.Edition, weekThemes []domain.WeekTheme, plan assign.Plan) string {
	var b strings.Builder
	b.WriteString(Header("Weekly plan · " + edition.Label()))
	b.WriteString("\n")
	b.WriteString(FormatAssignments(weekThemes, plan.Assignments))
	b.WriteString("\n")

	filled := 0
	for _, a := range plan.Assignments {
		if a.PlaceName != "" {
			filled++
		}
	}
	fmt.Fprintf(&b, "Planned by  %s\n", FormatPlanSource(plan.Source, plan.Degraded))
	fmt.Fprintf(&b, "Filled      %s\n", RenderCoverage(filled, len(weekThemes), 20))
	if empty := plan.EmptySlots(); len(empty) > 0 {
		fmt.Fprintf(&b, "Open weeks  %s\n", StyleYellow.Render(joinInts(empty)))
	}
	if attempts := FormatAttempts(plan.Attempts); attempts != "" {
		b.WriteString("\n")
		b.WriteString(attempts)
	}
	return b.String()
}

func joinInts(list []int) string {
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
