package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/repository"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// DefaultTemplate is the preset used when a request names none.
const DefaultTemplate = "usa"

// CurationDeps wires the curation pipeline. Discoverer is required unless
// every request supplies candidates; Enricher and Reviewer may be nil.
type CurationDeps struct {
	Catalog    *themes.Catalog
	UoW        db.UnitOfWork
	Discoverer Discoverer
	Enricher   Enricher
	Reviewer   Reviewer
	Log        *zap.Logger
}

type curationService struct {
	deps     CurationDeps
	log      *zap.Logger
	observer UseCaseObserver
}

func NewCurationService(deps CurationDeps, observers ...UseCaseObserver) CurationService {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &curationService{deps: deps, log: log.Named("curation"), observer: useCaseObserverOrNoop(observers)}
}

// Curate builds a new edition's place library: discover (or take the
// supplied candidates), merge, review, enrich, score and persist.
func (s *curationService) Curate(ctx context.Context, req CurateRequest) (result *CurateResult, err error) {
	fields := map[string]any{"city": req.City}
	defer observe(ctx, s.observer, "curate", fields, time.Now(), &err)

	city, state := strings.TrimSpace(req.City), strings.TrimSpace(req.State)
	if city == "" {
		return nil, ErrCityRequired
	}
	version := domain.CoalesceStr(req.TemplateVersion, DefaultTemplate)
	if _, err = s.deps.Catalog.Get(version); err != nil {
		return nil, err
	}

	result = &CurateResult{}
	cands := req.Candidates
	if len(cands) == 0 {
		if s.deps.Discoverer == nil {
			return nil, fmt.Errorf("%w: no discovery sources configured", ErrNoCandidates)
		}
		var found discovery.Result
		found, err = s.deps.Discoverer.Run(ctx, discovery.Request{City: city, State: state, Categories: req.Categories})
		if err != nil {
			return nil, fmt.Errorf("discovering places: %w", err)
		}
		result.Reports = found.Reports
		cands = found.Candidates
	}
	cands = curation.Merge(cands)
	fields["candidates"] = len(cands)
	if len(cands) == 0 {
		return nil, ErrNoCandidates
	}

	if s.deps.Reviewer != nil && !req.SkipReview {
		out := s.deps.Reviewer.Review(ctx, city, state, cands)
		cands, result.Reviewed, result.Rejections = out.Accepted, out.Reviewed, out.Rejected
		if len(cands) == 0 {
			return nil, fmt.Errorf("%w: every candidate was rejected in review", ErrNoCandidates)
		}
	}

	enr := make([]*domain.Enrichment, len(cands))
	if s.deps.Enricher != nil && !req.SkipEnrichment {
		enr, result.Enrichment, err = s.deps.Enricher.Enrich(ctx, city, state, cands)
		if err != nil {
			return nil, fmt.Errorf("enriching places: %w", err)
		}
	}

	places := make([]domain.ScoredPlace, len(cands))
	for i, c := range cands {
		places[i] = curation.Assemble(c, city, state, enr[i])
	}

	now := time.Now().UTC().Truncate(time.Second)
	edition := &domain.Edition{
		ID:              uuid.New().String(),
		City:            city,
		State:           state,
		TemplateVersion: version,
		Status:          domain.EditionCurated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.deps.UoW.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEditionRepo(tx).Create(ctx, edition); err != nil {
			return fmt.Errorf("creating edition: %w", err)
		}
		if err := repository.NewSQLitePlaceRepo(tx).ReplaceAll(ctx, edition.ID, places); err != nil {
			return fmt.Errorf("storing places: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Edition = edition
	result.Places = places
	result.ByStatus = make(map[domain.Status]int)
	result.ByCategory = make(map[domain.Category]int)
	for _, p := range places {
		result.ByStatus[p.Status]++
		result.ByCategory[p.Category]++
	}
	fields["edition"] = edition.ID
	fields["places"] = len(places)
	fields["rejected"] = result.ByStatus[domain.StatusReject]
	return result, nil
}
