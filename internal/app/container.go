// Package app wires configuration into the services the CLI drives.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/assign"
	"github.com/alexanderramin/wildercal/internal/config"
	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/editorial"
	"github.com/alexanderramin/wildercal/internal/enrichment"
	"github.com/alexanderramin/wildercal/internal/llm"
	"github.com/alexanderramin/wildercal/internal/metrics"
	"github.com/alexanderramin/wildercal/internal/service"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// Container holds the wired services. Close releases the database and
// flushes metrics when a metrics file is configured.
type Container struct {
	Config  config.Config
	Log     *zap.Logger
	DB      *sql.DB
	Catalog *themes.Catalog
	Metrics *metrics.Metrics

	Discoverer *discovery.Runner
	Curation   service.CurationService
	Plans      service.PlanService
	Editions   service.EditionService
}

// Build opens the database and wires every service from cfg.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = orNop(log)
	catalog, err := themes.NewCatalog(cfg.ThemesDir)
	if err != nil {
		return nil, fmt.Errorf("loading theme presets: %w", err)
	}

	observer := llmObserver(cfg.LLM, log)
	sources, err := Sources(ctx, cfg, observer, log)
	if err != nil {
		return nil, err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	uow := db.NewSQLiteUnitOfWork(database)
	var m *metrics.Metrics
	useCases := service.NewZapUseCaseObserver(log)
	if cfg.MetricsFile != "" {
		m = metrics.New()
		useCases = service.MultiUseCaseObserver(useCases, m)
	}
	runner := discovery.NewRunner(log, cfg.SourceTimeout, sources...)

	deps := service.CurationDeps{
		Catalog:    catalog,
		UoW:        uow,
		Discoverer: runner,
		Log:        log,
	}
	if e := Enricher(cfg, log); e != nil {
		deps.Enricher = e
	}
	if r := Reviewer(cfg, observer, log); r != nil {
		deps.Reviewer = r
	}

	strategies := func(deep bool) []assign.Strategy {
		return assign.StrategiesFromConfig(cfg.LLM, observer, deep)
	}

	return &Container{
		Config:     cfg,
		Log:        log,
		DB:         database,
		Catalog:    catalog,
		Metrics:    m,
		Discoverer: runner,
		Curation:   service.NewCurationService(deps, useCases),
		Plans:      service.NewPlanService(catalog, database, uow, strategies, log, useCases),
		Editions:   service.NewEditionService(catalog, database),
	}, nil
}

func (c *Container) Close() error {
	var errs []error
	if c.Metrics != nil {
		errs = append(errs, c.Metrics.WriteTextfile(c.Config.MetricsFile))
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func llmObserver(cfg llm.LLMConfig, log *zap.Logger) llm.Observer {
	if cfg.LogCalls {
		return llm.NewZapObserver(log)
	}
	return llm.NoopObserver{}
}

// Sources lists the discovery sources with credentials, in merge priority
// order. With none configured the built-in sample library is used.
func Sources(ctx context.Context, cfg config.Config, observer llm.Observer, log *zap.Logger) ([]discovery.Source, error) {
	log = orNop(log)
	var out []discovery.Source
	if cfg.GeminiAPIKey != "" {
		g, err := discovery.NewGeminiSource(ctx, cfg.GeminiAPIKey, discovery.DefaultGeminiModel, log)
		if err != nil {
			return nil, fmt.Errorf("creating gemini source: %w", err)
		}
		out = append(out, g)
	}
	if cfg.LLM.XAI.Configured() {
		out = append(out, discovery.GrokSources(llm.NewGrokClient(cfg.LLM, observer), log)...)
	}
	if cfg.BraveAPIKey != "" {
		out = append(out, discovery.NewBraveSource(cfg.BraveAPIKey, discovery.DefaultBraveEndpoint, log))
	}
	if len(out) == 0 {
		log.Info("no discovery credentials, using the sample library")
		out = append(out, discovery.SampleSource{})
	}
	return out, nil
}

// Enricher returns a Places-backed enricher when a key is set, the sample
// table when discovery is running offline, and nil otherwise.
func Enricher(cfg config.Config, log *zap.Logger) *enrichment.Enricher {
	log = orNop(log)
	if cfg.PlacesAPIKey != "" {
		client := enrichment.NewPlacesClient(cfg.PlacesAPIKey, enrichment.DefaultPlacesBaseURL)
		return enrichment.NewEnricher(client, cfg.Enrichment, log)
	}
	if cfg.DiscoveryConfigured() {
		return nil
	}
	table, err := discovery.SampleEnrichments()
	if err != nil {
		log.Warn("sample enrichment unavailable", zap.Error(err))
		return nil
	}
	opts := cfg.Enrichment
	opts.Delay = 0
	return enrichment.NewEnricher(enrichment.StaticLookup(table), opts, log)
}

// Reviewer returns an editorial reviewer over the configured hosted models,
// or nil when there are none.
func Reviewer(cfg config.Config, observer llm.Observer, log *zap.Logger) *editorial.Reviewer {
	if !cfg.LLM.Enabled {
		return nil
	}
	var clients []llm.LLMClient
	if cfg.LLM.Anthropic.Configured() {
		clients = append(clients, llm.NewAnthropicClient(cfg.LLM, cfg.LLM.Anthropic.Model, observer))
	}
	if cfg.LLM.OpenAI.Configured() {
		clients = append(clients, llm.NewOpenAIClient(cfg.LLM, observer))
	}
	if len(clients) == 0 {
		return nil
	}
	return editorial.NewReviewer(log, clients...)
}
