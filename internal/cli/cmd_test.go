package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/wildercal/internal/app"
	"github.com/alexanderramin/wildercal/internal/config"
	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/enrichment"
	"github.com/alexanderramin/wildercal/internal/export"
	"github.com/alexanderramin/wildercal/internal/llm"
	"github.com/alexanderramin/wildercal/internal/service"
	"github.com/alexanderramin/wildercal/internal/themes"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		DBPath:        db.MemoryPath,
		SourceTimeout: discovery.DefaultSourceTimeout,
		Enrichment:    enrichment.DefaultOptions(),
		LLM:           llm.DefaultConfig(),
	}
	c, err := app.Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return &App{
		Curation:   c.Curation,
		Plans:      c.Plans,
		Editions:   c.Editions,
		Discoverer: c.Discoverer,
		Catalog:    c.Catalog,
	}
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(a)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}

func curateLincoln(t *testing.T, a *App) string {
	t.Helper()
	out, err := execute(t, a, "curate", "--city", "Lincoln", "--state", "NE")
	require.NoError(t, err)
	require.Contains(t, out, "for Lincoln, NE")

	editions, err := a.Editions.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, editions)
	return editions[0].ID
}

func TestThemesCommands(t *testing.T) {
	a := testApp(t)

	out, err := execute(t, a, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "usa")
	assert.Contains(t, out, "lincoln")

	out, err = execute(t, a, "themes", "show", "usa")
	require.NoError(t, err)
	assert.Contains(t, out, "Pumpkin Patch Perfection")

	_, err = execute(t, a, "themes", "show", "atlantis")
	assert.ErrorIs(t, err, themes.ErrUnknownVersion)
}

func TestDiscoverCommand(t *testing.T) {
	a := testApp(t)

	out, err := execute(t, a, "discover", "--city", "Lincoln", "--category", "library")
	require.NoError(t, err)
	assert.Contains(t, out, "CANDIDATES · LINCOLN")
	assert.Contains(t, out, "Libraries")
	assert.NotContains(t, out, "Parks & Nature")
	assert.Contains(t, out, string(domain.SourceSample))

	_, err = execute(t, a, "discover", "--city", "Lincoln", "--category", "casino")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")

	_, err = execute(t, a, "discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city")
}

func TestCurateCommand_RequiresCity(t *testing.T) {
	_, err := execute(t, testApp(t), "curate")
	assert.ErrorIs(t, err, service.ErrCityRequired)
}

func TestCurateCommand_FromFile(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "places.yaml")
	body := `city: Omaha
state: NE
places:
  - name: Fontenelle Forest
    category: nature
    description: Boardwalk trail through the forest canopy
  - name: Omaha Children's Museum
    category: museum
    price_tier: $10_$15
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, a, "curate", "--from", path, "--skip-review")
	require.NoError(t, err)
	assert.Contains(t, out, "Curated 2 places for Omaha, NE")
	assert.Contains(t, out, "Fontenelle Forest")
	assert.NotContains(t, out, "SOURCE")
}

func TestCurateCommand_InvalidImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places:\n  - name: A\n    category: spaceport\n"), 0o644))

	_, err := execute(t, testApp(t), "curate", "--city", "Lincoln", "--from", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestEditionLifecycle(t *testing.T) {
	a := testApp(t)
	id := curateLincoln(t, a)
	prefix := id[:8]

	out, err := execute(t, a, "editions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, prefix)
	assert.Contains(t, out, "Curated")

	out, err = execute(t, a, "plan", prefix)
	require.NoError(t, err)
	assert.Contains(t, out, "WEEKLY PLAN · LINCOLN, NE")
	assert.Contains(t, out, "Planned by  keyword")

	out, err = execute(t, a, "editions", "show", prefix)
	require.NoError(t, err)
	assert.Contains(t, out, "LIBRARY")
	assert.Contains(t, out, "WEEKLY PLAN")

	out, err = execute(t, a, "export", prefix, "--format", "md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Wilder Seasons: Lincoln, NE"))

	out, err = execute(t, a, "editions", "delete", prefix)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted edition "+prefix)

	out, err = execute(t, a, "editions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No editions yet")

	_, err = execute(t, a, "plan", prefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edition not found")
}

func TestExportCommand_Workbook(t *testing.T) {
	a := testApp(t)
	id := curateLincoln(t, a)
	_, err := execute(t, a, "plan", id)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lincoln.xlsx")
	out, err := execute(t, a, "export", id, "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), export.SheetPlan)
}

func TestExportCommand_HTMLToFile(t *testing.T) {
	a := testApp(t)
	id := curateLincoln(t, a)

	path := filepath.Join(t.TempDir(), "lincoln.html")
	_, err := execute(t, a, "export", id, "--format", "html", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Wilder Seasons: Lincoln, NE</h1>")
}

func TestExportCommand_RejectsUnknownFormat(t *testing.T) {
	a := testApp(t)
	id := curateLincoln(t, a)
	_, err := execute(t, a, "export", id, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of xlsx, md, html")
}

func TestScoreCommand(t *testing.T) {
	a := testApp(t)

	out, err := execute(t, a, "score", "--name", "Salt Creek Taproom", "--category", "indoor_play")
	require.NoError(t, err)
	assert.Contains(t, out, "BRAND SCORE")
	assert.Contains(t, out, "REJECT")
	assert.Contains(t, out, "Hard filter:")

	out, err = execute(t, a, "score", "--name", "Pioneers Park", "--description", "Free nature trails and bison",
		"--price", "FREE", "--rating", "4.8", "--reviews", "900")
	require.NoError(t, err)
	assert.Contains(t, out, "Pioneers Park")
	assert.Contains(t, out, "Accessibility")
	assert.NotContains(t, out, "Hard filter:")

	_, err = execute(t, a, "score", "--name", "X", "--price", "cheap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --price")
}

type fixedEditions struct {
	service.EditionService
	ids []string
}

func (f fixedEditions) List(context.Context) ([]*domain.Edition, error) {
	out := make([]*domain.Edition, len(f.ids))
	for i, id := range f.ids {
		out[i] = &domain.Edition{ID: id}
	}
	return out, nil
}

func TestResolveEditionID(t *testing.T) {
	a := &App{Editions: fixedEditions{ids: []string{"abc12345-0000", "abc99999-0000", "def00000-0000"}}}
	ctx := context.Background()

	id, err := resolveEditionID(ctx, a, "def")
	require.NoError(t, err)
	assert.Equal(t, "def00000-0000", id)

	id, err = resolveEditionID(ctx, a, "abc12345-0000")
	require.NoError(t, err)
	assert.Equal(t, "abc12345-0000", id)

	id, err = resolveEditionID(ctx, a, "ABC1")
	require.NoError(t, err)
	assert.Equal(t, "abc12345-0000", id)

	_, err = resolveEditionID(ctx, a, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous (2 matches)")

	_, err = resolveEditionID(ctx, a, "zzz")
	assert.Contains(t, err.Error(), "not found")

	_, err = resolveEditionID(ctx, a, " ")
	assert.Contains(t, err.Error(), "required")
}

func TestCategoriesValue(t *testing.T) {
	var got []domain.Category
	v := newCategoriesValue(&got)
	require.NoError(t, v.Set("library, Museum"))
	require.NoError(t, v.Set("farm"))
	assert.Equal(t, []domain.Category{domain.CategoryLibrary, domain.CategoryMuseum, domain.CategoryFarm}, got)
	assert.Equal(t, "library,museum,farm", v.String())
	assert.Error(t, v.Set("zoo"))
}

func TestDefaultExportName(t *testing.T) {
	assert.Equal(t, "lincoln_wilder_seasons.xlsx", defaultExportName("Lincoln", "xlsx"))
	assert.Equal(t, "council_bluffs_wilder_seasons.xlsx", defaultExportName(" Council  Bluffs ", "xlsx"))
	assert.Equal(t, "edition_wilder_seasons.md", defaultExportName("", "md"))
}
