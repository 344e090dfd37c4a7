package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wildercal/internal/config"
	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/enrichment"
	"github.com/alexanderramin/wildercal/internal/llm"
	"github.com/alexanderramin/wildercal/internal/service"
)

func offlineConfig() config.Config {
	cfg := config.Config{
		DBPath:        db.MemoryPath,
		SourceTimeout: discovery.DefaultSourceTimeout,
		Enrichment:    enrichment.DefaultOptions(),
		LLM:           llm.DefaultConfig(),
	}
	return cfg
}

func TestBuild_OfflineCurateAndPlan(t *testing.T) {
	ctx := context.Background()
	c, err := Build(ctx, offlineConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	curated, err := c.Curation.Curate(ctx, service.CurateRequest{City: "Lincoln", State: "NE"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSample, curated.Reports[0].Tag)
	assert.Equal(t, curated.Enrichment.Total, curated.Enrichment.Enriched)

	planned, err := c.Plans.Plan(ctx, service.PlanRequest{EditionID: curated.Edition.ID})
	require.NoError(t, err)
	assert.Len(t, planned.Plan.Assignments, domain.WeeksPerYear)
	assert.False(t, planned.Plan.Degraded)

	list, err := c.Editions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.EditionPlanned, list[0].Status)
}

func TestBuild_MetricsFileWrittenOnClose(t *testing.T) {
	ctx := context.Background()
	cfg := offlineConfig()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "wildercal.prom")

	c, err := Build(ctx, cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, c.Metrics)

	curated, err := c.Curation.Curate(ctx, service.CurateRequest{City: "Lincoln", State: "NE"})
	require.NoError(t, err)
	_, err = c.Plans.Plan(ctx, service.PlanRequest{EditionID: curated.Edition.ID})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	raw, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `wildercal_use_cases_total{result="success",use_case="curate"} 1`)
	assert.Contains(t, string(raw), `wildercal_use_cases_total{result="success",use_case="plan"} 1`)
}

func TestBuild_NoMetricsByDefault(t *testing.T) {
	c, err := Build(context.Background(), offlineConfig(), nil)
	require.NoError(t, err)
	assert.Nil(t, c.Metrics)
	assert.NoError(t, c.Close())
}

func TestSources(t *testing.T) {
	ctx := context.Background()

	offline, err := Sources(ctx, offlineConfig(), llm.NoopObserver{}, nil)
	require.NoError(t, err)
	require.Len(t, offline, 1)
	assert.Equal(t, domain.SourceSample, offline[0].Tag())

	cfg := offlineConfig()
	cfg.BraveAPIKey = "brave"
	cfg.LLM.XAI.APIKey = "xai"
	live, err := Sources(ctx, cfg, llm.NoopObserver{}, nil)
	require.NoError(t, err)
	tags := make([]domain.SourceTag, len(live))
	for i, s := range live {
		tags[i] = s.Tag()
	}
	assert.Contains(t, tags, domain.SourceBrave)
	assert.Contains(t, tags, domain.SourceGrokX)
	assert.NotContains(t, tags, domain.SourceSample)
}

func TestEnricher(t *testing.T) {
	assert.NotNil(t, Enricher(offlineConfig(), nil))

	cfg := offlineConfig()
	cfg.BraveAPIKey = "brave"
	assert.Nil(t, Enricher(cfg, nil))

	cfg.PlacesAPIKey = "places"
	assert.NotNil(t, Enricher(cfg, nil))
}

func TestReviewer(t *testing.T) {
	assert.Nil(t, Reviewer(offlineConfig(), llm.NoopObserver{}, nil))

	cfg := offlineConfig()
	cfg.LLM.OpenAI.APIKey = "sk-test"
	assert.NotNil(t, Reviewer(cfg, llm.NoopObserver{}, nil))

	cfg.LLM.Enabled = false
	assert.Nil(t, Reviewer(cfg, llm.NoopObserver{}, nil))
}
