package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// FormatSourceReports renders how each discovery source fared.
func FormatSourceReports(reports []discovery.SourceReport) string {
	headers := []string{"SOURCE", "FOUND", "TIME", "RESULT"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		result := StyleGreen.Render("ok")
		if r.Err != nil {
			result = StyleRed.Render(Truncate(r.Err.Error(), 60))
		}
		rows = append(rows, []string{
			string(r.Tag),
			fmt.Sprint(r.Count),
			Dim(r.Duration.Round(time.Millisecond).String()),
			result,
		})
	}
	return RenderTable(headers, rows)
}

// FormatCandidates renders merged discovery candidates.
func FormatCandidates(cands []domain.CandidateRecord) string {
	if len(cands) == 0 {
		return Dim("No candidates found.") + "\n"
	}
	headers := []string{"PLACE", "CATEGORY", "SOURCE", "SNIPPET"}
	rows := make([][]string, 0, len(cands))
	for _, c := range cands {
		rows = append(rows, []string{
			Bold(Truncate(c.Name, 36)),
			c.Category.Label(),
			Dim(string(c.Source)),
			Truncate(c.Snippet, 60),
		})
	}
	return RenderTable(headers, rows)
}
