package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/wildercal/internal/assign"
	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/editorial"
	"github.com/alexanderramin/wildercal/internal/enrichment"
)

var (
	ErrCityRequired = errors.New("city is required")
	ErrNoCandidates = errors.New("no candidate places found")
)

// Discoverer finds raw candidates; *discovery.Runner satisfies it.
type Discoverer interface {
	Run(ctx context.Context, req discovery.Request) (discovery.Result, error)
}

// Enricher attaches external facts; *enrichment.Enricher satisfies it.
type Enricher interface {
	Enrich(ctx context.Context, city, state string, cands []domain.CandidateRecord) ([]*domain.Enrichment, enrichment.Stats, error)
}

// Reviewer screens candidates; *editorial.Reviewer satisfies it.
type Reviewer interface {
	Review(ctx context.Context, city, state string, cands []domain.CandidateRecord) editorial.Outcome
}

type CurateRequest struct {
	City            string
	State           string
	TemplateVersion string // defaults to "usa"
	Categories      []domain.Category
	// Candidates skips discovery when non-empty.
	Candidates     []domain.CandidateRecord
	SkipEnrichment bool
	SkipReview     bool
}

type CurateResult struct {
	Edition    *domain.Edition
	Places     []domain.ScoredPlace
	Reports    []discovery.SourceReport
	Enrichment enrichment.Stats
	Reviewed   bool
	Rejections []editorial.Rejection
	ByStatus   map[domain.Status]int
	ByCategory map[domain.Category]int
}

type PlanRequest struct {
	EditionID string
	Deep      bool
}

type PlanResult struct {
	Edition *domain.Edition
	Plan    assign.Plan
	Themes  []domain.WeekTheme
}

// EditionDetail is an edition with everything stored for it.
type EditionDetail struct {
	Edition     *domain.Edition
	Places      []domain.ScoredPlace
	Assignments []domain.WeekAssignment
	Attempts    []domain.PlanAttempt
	Themes      []domain.WeekTheme
}

type CurationService interface {
	Curate(ctx context.Context, req CurateRequest) (*CurateResult, error)
}

type PlanService interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResult, error)
}

type EditionService interface {
	List(ctx context.Context) ([]*domain.Edition, error)
	Get(ctx context.Context, id string) (*EditionDetail, error)
	Delete(ctx context.Context, id string) error
}
