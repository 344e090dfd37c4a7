package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wildercal/internal/domain"
)

func ptrBool(b bool) *bool { return &b }

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadImportSchema_YAML(t *testing.T) {
	path := writeFile(t, "lincoln.yaml", `
city: Lincoln
state: NE
template: lincoln
places:
  - name: Sunken Gardens
    category: garden
    description: Terraced gardens with a koi pond.
    price_tier: FREE
    outdoor: true
  - name: Lincoln Children's Museum
    category: Museum
    price_tier: $10_$15
`)
	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "Lincoln", schema.City)
	assert.Equal(t, "lincoln", schema.Template)
	require.Len(t, schema.Places, 2)
	assert.Empty(t, ValidateImportSchema(schema))

	recs := Convert(schema)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.SourceManual, recs[0].Source)
	assert.Equal(t, domain.CategoryGarden, recs[0].Category)
	require.NotNil(t, recs[0].Outdoor)
	assert.True(t, *recs[0].Outdoor)
	require.NotNil(t, recs[0].PriceHint)
	assert.Equal(t, domain.PriceFree, *recs[0].PriceHint)
	assert.Equal(t, domain.CategoryMuseum, recs[1].Category)
	assert.Equal(t, domain.Price10To15, *recs[1].PriceHint)
}

func TestLoadImportSchema_JSON(t *testing.T) {
	path := writeFile(t, "places.JSON", `{"places":[{"name":"Pioneers Park","outdoor":false}]}`)
	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	recs := Convert(schema)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.CategoryNature, recs[0].Category)
	assert.Nil(t, recs[0].PriceHint)
	assert.Equal(t, ptrBool(false), recs[0].Outdoor)
}

func TestLoadImportSchema_Errors(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadImportSchema(writeFile(t, "bad.json", `{"places":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

func TestValidateImportSchema(t *testing.T) {
	schema := &ImportSchema{Places: []PlaceImport{
		{Name: "The Zoo"},
		{Name: "zoo!"},
		{Name: "  "},
		{Name: "Bowling Alley", Category: "bowling"},
		{Name: "Aquarium", PriceTier: "$$"},
	}}
	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), `places[1].name "zoo!" duplicates places[0]`)
	assert.Contains(t, errs[1].Error(), "places[2].name is required")
	assert.Contains(t, errs[2].Error(), `places[3].category: invalid value "bowling"`)
	assert.Contains(t, errs[3].Error(), `places[4].price_tier: invalid value "$$"`)
}

func TestValidateImportSchema_Empty(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one place")
}
