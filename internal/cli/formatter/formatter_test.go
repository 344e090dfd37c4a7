package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wildercal/internal/assign"
	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/service"
	"github.com/alexanderramin/wildercal/internal/testutil"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func usaPreset(t *testing.T) *themes.Preset {
	t.Helper()
	catalog, err := themes.NewCatalog("")
	require.NoError(t, err)
	p, err := catalog.Get("usa")
	require.NoError(t, err)
	return p
}

func TestRenderTable_AlignsVisibleWidth(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{StyleGreen.Render("xxx"), "y"}}))
	assert.Equal(t, "A    BB\n───  ──\nxxx  y\n", got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Heritage…", Truncate("Heritage Orchard", 9))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestPriceLabel(t *testing.T) {
	tests := map[domain.PriceTier]string{
		domain.PriceFree:   "FREE",
		domain.Price5To10:  "$",
		domain.Price10To15: "$$",
		domain.Price15Plus: "$$$",
		"":                 "FREE",
	}
	for tier, want := range tests {
		assert.Equal(t, want, PriceLabel(tier), "tier %q", tier)
	}
}

func TestRatingLabel(t *testing.T) {
	rating, reviews := 4.7, 298
	assert.Equal(t, "4.7 (298)", RatingLabel(domain.Enrichment{Rating: &rating, ReviewCount: &reviews}))
	assert.Equal(t, "4.7", RatingLabel(domain.Enrichment{Rating: &rating}))
	assert.Equal(t, "--", stripANSI(RatingLabel(domain.Enrichment{})))
}

func TestRenderCoverage(t *testing.T) {
	assert.Equal(t, "[█████░░░░░░░░░░░░░░░] 13/52", stripANSI(RenderCoverage(13, 52, 20)))
	assert.Equal(t, "[░░░░] 0/0", stripANSI(RenderCoverage(0, 0, 4)))
	assert.Equal(t, "[██] 9/4", stripANSI(RenderCoverage(9, 4, 1)))
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDateFrom(now.Add(-time.Hour), now))
	assert.Equal(t, "Mar 13, 2026", HumanDateFrom(now.AddDate(0, 0, -1), now))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 place", Plural(1, "place"))
	assert.Equal(t, "0 places", Plural(0, "place"))
}

func TestFormatStatusCounts(t *testing.T) {
	got := stripANSI(FormatStatusCounts(map[domain.Status]int{
		domain.StatusReject:      1,
		domain.StatusRecommended: 3,
	}))
	assert.Equal(t, "3 RECOMMENDED · 1 REJECT", got)
	assert.Equal(t, "none", stripANSI(FormatStatusCounts(nil)))
}

func TestFormatPlaces_SortsByScore(t *testing.T) {
	places := []domain.ScoredPlace{
		testutil.NewTestPlace("Central Library", domain.CategoryLibrary, testutil.WithScore(58, domain.StatusConsider)),
		testutil.NewTestPlace("Heritage Orchard", domain.CategoryFarm, testutil.WithScore(82, domain.StatusRecommended)),
	}
	got := stripANSI(FormatPlaces(places))
	assert.Less(t, strings.Index(got, "Heritage Orchard"), strings.Index(got, "Central Library"))
	assert.Contains(t, got, "Farms & Petting Zoos")
	assert.Contains(t, got, "● RECOMMENDED")
	assert.Equal(t, "No places.\n", stripANSI(FormatPlaces(nil)))
}

func TestFormatScore(t *testing.T) {
	p := testutil.NewTestPlace("Smoky Cigar Lounge", domain.CategoryIndoorPlay)
	r := curation.Result{
		Score:      0,
		Status:     domain.StatusReject,
		Notes:      []string{"Adult venue"},
		Breakdown:  curation.Breakdown{Accessibility: 100, Nature: 10, Family: 5, Local: 80},
		HardFilter: "adult venue",
	}
	got := stripANSI(FormatScore(&p, r))
	assert.Contains(t, got, "BRAND SCORE")
	assert.Contains(t, got, "Smoky Cigar Lounge")
	assert.Contains(t, got, "Accessibility")
	assert.Contains(t, got, "Hard filter: adult venue")
	assert.Contains(t, got, "- Adult venue")
}

func TestFormatLegend(t *testing.T) {
	got := FormatLegend()
	for _, tag := range curation.Legend() {
		assert.Contains(t, got, tag.Label)
	}
}

func TestFormatAssignments_OpenSlots(t *testing.T) {
	preset := usaPreset(t)
	assignments := []domain.WeekAssignment{{Week: 1, PlaceName: "Heritage Orchard", AlternateName: ""}}
	got := stripANSI(FormatAssignments(preset.Themes[:2], assignments))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "Heritage Orchard")
	assert.Contains(t, lines[2], "winter")
	assert.Equal(t, 2, strings.Count(lines[3], "open"))
}

func TestFormatPlan(t *testing.T) {
	preset := usaPreset(t)
	plan := assign.Plan{
		Source:   assign.KeywordName,
		Degraded: true,
		Attempts: []assign.Attempt{
			{Strategy: "claude", Outcome: assign.OutcomeRetryable, Error: "rate limited", LatencyMs: 120},
			{Strategy: assign.KeywordName, Outcome: assign.OutcomeSuccess},
		},
	}
	for _, th := range preset.Themes {
		a := domain.WeekAssignment{Week: th.Week, PlaceName: "P", AlternateName: "Q"}
		if th.Week == 52 {
			a.AlternateName = ""
		}
		plan.Assignments = append(plan.Assignments, a)
	}
	edition := testutil.NewTestEdition("Lincoln")

	got := stripANSI(FormatPlan(edition, preset.Themes, plan))
	assert.Contains(t, got, "WEEKLY PLAN · LINCOLN, NE")
	assert.Contains(t, got, "keyword (fallback)")
	assert.Contains(t, got, "52/52")
	assert.Contains(t, got, "Open weeks  52")
	assert.Contains(t, got, "rate limited")
}

func TestFormatPlanSource(t *testing.T) {
	assert.Equal(t, "not planned", stripANSI(FormatPlanSource("", false)))
	assert.Equal(t, "claude", stripANSI(FormatPlanSource("claude", false)))
	assert.Equal(t, "keyword (fallback)", stripANSI(FormatPlanSource("keyword", true)))
}

func TestFormatStoredAttempts_Empty(t *testing.T) {
	assert.Equal(t, "", FormatStoredAttempts(nil))
}

func TestFormatEditionList(t *testing.T) {
	assert.Contains(t, stripANSI(FormatEditionList(nil)), "No editions yet")

	e := testutil.NewTestEdition("Lincoln", testutil.WithEditionStatus(domain.EditionPlanned))
	e.PlanSource = "claude"
	got := stripANSI(FormatEditionList([]*domain.Edition{e}))
	assert.Contains(t, got, e.ID[:8])
	assert.NotContains(t, got, e.ID)
	assert.Contains(t, got, "Lincoln, NE")
	assert.Contains(t, got, "● Planned")
	assert.Contains(t, got, "Today")
}

func TestFormatEditionDetail(t *testing.T) {
	preset := usaPreset(t)
	e := testutil.NewTestEdition("Lincoln", testutil.WithEditionStatus(domain.EditionPlanned))
	d := &service.EditionDetail{
		Edition:     e,
		Places:      testutil.NewTestLibrary(3),
		Assignments: []domain.WeekAssignment{{Week: 1, PlaceName: "Test Place 00"}},
		Attempts:    []domain.PlanAttempt{{Strategy: "keyword", Outcome: "success"}},
		Themes:      preset.Themes,
	}
	got := stripANSI(FormatEditionDetail(d))
	assert.Contains(t, got, "LINCOLN, NE")
	assert.Contains(t, got, "3 CONSIDER")
	assert.Contains(t, got, "WEEKLY PLAN")
	assert.Contains(t, got, "STRATEGY")
}

func TestFormatCurateResult(t *testing.T) {
	e := testutil.NewTestEdition("Lincoln", testutil.WithEditionStatus(domain.EditionCurated))
	r := &service.CurateResult{
		Edition: e,
		Places:  testutil.NewTestLibrary(2),
		Reports: []discovery.SourceReport{
			{Tag: domain.SourceGemini, Count: 12},
			{Tag: domain.SourceBrave, Err: errors.New("401 unauthorized")},
		},
		Reviewed:   true,
		ByStatus:   map[domain.Status]int{domain.StatusConsider: 2},
		Rejections: nil,
	}
	r.Enrichment.Total, r.Enrichment.Enriched = 2, 1

	got := stripANSI(FormatCurateResult(r))
	assert.Contains(t, got, "Curated 2 places for Lincoln, NE")
	assert.Contains(t, got, "401 unauthorized")
	assert.Contains(t, got, "1/2")
	assert.Contains(t, got, "0 rejections")
	assert.Contains(t, got, "wildercal plan "+e.ID[:8])
}

func TestFormatPresetList(t *testing.T) {
	got := stripANSI(FormatPresetList([]*themes.Preset{usaPreset(t)}))
	assert.Contains(t, got, "usa")
	assert.Contains(t, got, "52")
}

func TestFormatPreset_GroupsBySeason(t *testing.T) {
	got := stripANSI(FormatPreset(usaPreset(t)))
	assert.Equal(t, 2, strings.Count(got, "WINTER\n"))
	assert.Equal(t, 1, strings.Count(got, "FALL\n"))
	assert.Contains(t, got, "Pumpkin Patch Perfection")
}

func TestFormatCandidates(t *testing.T) {
	got := stripANSI(FormatCandidates([]domain.CandidateRecord{
		{Name: "Pioneers Park", Category: domain.CategoryNature, Source: domain.SourceGemini, Snippet: "Bison and trails"},
	}))
	assert.Contains(t, got, "Pioneers Park")
	assert.Contains(t, got, "Parks & Nature")
	assert.Contains(t, got, "gemini")
	assert.Equal(t, "No candidates found.\n", stripANSI(FormatCandidates(nil)))
}
