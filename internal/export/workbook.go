package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

const (
	SheetPlaces   = "Places Master List"
	SheetSummary  = "Category Summary"
	SheetReview   = "Human Review Queue"
	SheetRejected = "Rejection Log"
	SheetPlan     = "Weekly Plan"
	SheetIcons    = "Icon Key"
)

const check = "✓"

// Report is everything stored for one edition. Assignments is empty until
// the edition has been planned.
type Report struct {
	Edition     *domain.Edition
	Places      []domain.ScoredPlace
	Assignments []domain.WeekAssignment
	Themes      []domain.WeekTheme
}

type sheet struct {
	name   string
	header []string
	widths []float64
	rows   [][]any
}

// Workbook lays the report out as a spreadsheet for the editorial team. The
// weekly plan sheet is only present once the edition has a plan.
func Workbook(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2EFDA"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	sheets := []sheet{
		placesSheet(r),
		summarySheet(r.Places),
		reviewSheet(r.Places),
		rejectedSheet(r.Places),
	}
	if len(r.Assignments) > 0 {
		sheets = append(sheets, planSheet(r))
	}
	sheets = append(sheets, iconSheet())

	for i, s := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), s.name)
		} else {
			_, err = f.NewSheet(s.name)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("adding sheet %q: %w", s.name, err)
		}
		if err := s.write(f, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing sheet %q: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook streams the workbook for r to w as xlsx.
func WriteWorkbook(w io.Writer, r Report) error {
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (s sheet) write(f *excelize.File, headerStyle int) error {
	next := 1
	if len(s.header) > 0 {
		header := make([]any, len(s.header))
		for i, h := range s.header {
			header[i] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
			return err
		}
		if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
			return err
		}
		err := f.SetPanes(s.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return err
		}
		next = 2
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	for i, w := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func placesSheet(r Report) sheet {
	places := make([]domain.ScoredPlace, len(r.Places))
	copy(places, r.Places)
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Category != places[j].Category {
			return places[i].Category < places[j].Category
		}
		return places[i].Score > places[j].Score
	})

	s := sheet{
		name: SheetPlaces,
		header: []string{
			"Place Name", "Category", "Address", "City, State", "Website", "Phone",
			"Google Rating", "Price Tier", "Baby", "Toddler", "Preschool",
			"Warm Weather", "Winter Spot", "Icon String", "Short Description",
			"Brand Score", "Status", "Editorial Notes", "Week Suggestions",
		},
		widths: []float64{30, 24, 30, 22, 35, 15, 18, 10, 6, 8, 10, 10, 10, 15, 40, 10, 14, 40, 20},
	}
	for _, p := range places {
		s.rows = append(s.rows, []any{
			p.Name,
			p.Category.Label(),
			p.Enrichment.Address,
			strings.TrimSuffix(p.City+", "+p.State, ", "),
			p.Enrichment.Website,
			p.Enrichment.Phone,
			ratingText(p.Enrichment),
			priceSymbol(p.PriceTier),
			mark(p.Attributes.BabyFriendly),
			mark(p.Attributes.ToddlerSafe),
			mark(p.Attributes.PreschoolPlus),
			mark(p.Attributes.WarmWeather),
			mark(p.Attributes.WinterSpot),
			p.Tags,
			p.Description,
			p.Score,
			string(p.Status),
			p.Notes,
			weeksText(p.WeekSuggestions),
		})
	}
	return s
}

func summarySheet(places []domain.ScoredPlace) sheet {
	s := sheet{
		name: SheetSummary,
		header: []string{
			"Category", "Total Count", "Recommended", "Consider", "Review", "Reject",
			"Avg Score", "Free", "$5-$10", "$10-$15", "$15+",
		},
		widths: []float64{26, 12, 14, 10, 10, 10, 10, 8, 8, 8, 8},
	}
	for _, row := range Summarize(places) {
		s.rows = append(s.rows, []any{
			row.Category.Label(),
			row.Total,
			row.ByStatus[domain.StatusRecommended],
			row.ByStatus[domain.StatusConsider],
			row.ByStatus[domain.StatusReview],
			row.ByStatus[domain.StatusReject],
			row.AvgScore,
			row.ByPrice[domain.PriceFree],
			row.ByPrice[domain.Price5To10],
			row.ByPrice[domain.Price10To15],
			row.ByPrice[domain.Price15Plus],
		})
	}
	return s
}

func reviewSheet(places []domain.ScoredPlace) sheet {
	s := sheet{
		name:   SheetReview,
		header: []string{"Place Name", "Category", "Status", "Brand Score", "Reason for Review", "Website", "Price Tier"},
		widths: []float64{30, 24, 14, 10, 40, 35, 10},
	}
	for _, p := range places {
		if p.Status != domain.StatusConsider && p.Status != domain.StatusReview {
			continue
		}
		s.rows = append(s.rows, []any{
			p.Name, p.Category.Label(), string(p.Status), p.Score, p.Notes,
			p.Enrichment.Website, priceSymbol(p.PriceTier),
		})
	}
	return s
}

func rejectedSheet(places []domain.ScoredPlace) sheet {
	s := sheet{
		name:   SheetRejected,
		header: []string{"Place Name", "Category", "Reason", "Source", "Source URL"},
		widths: []float64{30, 24, 40, 14, 40},
	}
	for _, p := range places {
		if p.Status != domain.StatusReject {
			continue
		}
		s.rows = append(s.rows, []any{p.Name, p.Category.Label(), p.Notes, string(p.Source), p.SourceURL})
	}
	return s
}

func planSheet(r Report) sheet {
	byWeek := make(map[int]domain.WeekAssignment, len(r.Assignments))
	for _, a := range r.Assignments {
		byWeek[a.Week] = a
	}
	byName := make(map[string]*domain.ScoredPlace, len(r.Places))
	for i := range r.Places {
		byName[r.Places[i].Key()] = &r.Places[i]
	}

	s := sheet{
		name: SheetPlan,
		header: []string{
			"Week", "Season", "Theme", "Reference Place (from template)",
			"Matched Local Place", "Match Reason", "Alternate Place", "Alternate Reason",
			"Icons", "Brand Score", "Status",
		},
		widths: []float64{6, 8, 28, 50, 30, 40, 30, 40, 15, 10, 14},
	}
	for _, t := range r.Themes {
		a := byWeek[t.Week]
		row := []any{
			t.Week, seasonTitle(domain.SeasonForWeek(t.Week)), t.Title, t.ReferenceNote,
			a.PlaceName, a.Reason, a.AlternateName, a.AlternateReason,
			"", "", "",
		}
		if p, ok := byName[domain.NormalizeKey(a.PlaceName)]; ok && a.PlaceName != "" {
			row[8], row[9], row[10] = p.Tags, p.Score, string(p.Status)
		}
		s.rows = append(s.rows, row)
	}
	return s
}

func iconSheet() sheet {
	s := sheet{name: SheetIcons, widths: []float64{16, 28}}
	s.rows = append(s.rows, []any{"Icon Key Reference"}, []any{})
	for _, t := range curation.Legend() {
		s.rows = append(s.rows, []any{t.Icon, t.Label})
	}
	return s
}

func ratingText(e domain.Enrichment) string {
	if e.Rating == nil {
		return ""
	}
	reviews := 0
	if e.ReviewCount != nil {
		reviews = *e.ReviewCount
	}
	return fmt.Sprintf("%.1f (%d reviews)", *e.Rating, reviews)
}

func priceSymbol(tier domain.PriceTier) string {
	switch tier {
	case domain.Price5To10:
		return "$"
	case domain.Price10To15:
		return "$$"
	case domain.Price15Plus:
		return "$$$"
	default:
		return "FREE"
	}
}

func mark(b bool) string {
	if b {
		return check
	}
	return ""
}

func weeksText(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, ", ")
}

func seasonTitle(s domain.Season) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
