package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/assign"
	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/repository"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// StrategyFactory returns the AI strategies to try, in order. deep asks for
// the slow high-quality tier first.
type StrategyFactory func(deep bool) []assign.Strategy

type planService struct {
	catalog    *themes.Catalog
	uow        db.UnitOfWork
	editions   repository.EditionRepo
	places     repository.PlaceRepo
	strategies StrategyFactory
	log        *zap.Logger
	observer   UseCaseObserver
}

func NewPlanService(
	catalog *themes.Catalog,
	conn db.DBTX,
	uow db.UnitOfWork,
	strategies StrategyFactory,
	log *zap.Logger,
	observers ...UseCaseObserver,
) PlanService {
	if log == nil {
		log = zap.NewNop()
	}
	if strategies == nil {
		strategies = func(bool) []assign.Strategy { return nil }
	}
	return &planService{
		catalog:    catalog,
		uow:        uow,
		editions:   repository.NewSQLiteEditionRepo(conn),
		places:     repository.NewSQLitePlaceRepo(conn),
		strategies: strategies,
		log:        log,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Plan assigns every week of the edition's template and stores the result,
// replacing any earlier plan.
func (s *planService) Plan(ctx context.Context, req PlanRequest) (result *PlanResult, err error) {
	fields := map[string]any{"edition": req.EditionID, "deep": req.Deep}
	defer observe(ctx, s.observer, "plan", fields, time.Now(), &err)

	edition, err := s.editions.GetByID(ctx, req.EditionID)
	if err != nil {
		return nil, err
	}
	preset, err := s.catalog.Get(edition.TemplateVersion)
	if err != nil {
		return nil, err
	}
	places, err := s.places.ListByEdition(ctx, edition.ID)
	if err != nil {
		return nil, err
	}

	orch := assign.NewOrchestrator(s.log, s.strategies(req.Deep)...)
	plan, err := orch.Run(ctx, edition.Label(), places, preset.Themes)
	if err != nil {
		return nil, fmt.Errorf("assigning weeks: %w", err)
	}
	fields["source"] = plan.Source
	fields["degraded"] = plan.Degraded
	fields["empty_slots"] = len(plan.EmptySlots())

	edition.Status = domain.EditionPlanned
	edition.PlanSource = plan.Source
	edition.Degraded = plan.Degraded

	attempts := make([]domain.PlanAttempt, len(plan.Attempts))
	for i, a := range plan.Attempts {
		attempts[i] = domain.PlanAttempt{
			EditionID: edition.ID,
			Strategy:  a.Strategy,
			Outcome:   string(a.Outcome),
			Error:     a.Error,
			LatencyMs: a.LatencyMs,
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)
		if err := txAssignments.ReplaceAll(ctx, edition.ID, plan.Assignments); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}
		if err := txAssignments.AddAttempts(ctx, attempts); err != nil {
			return fmt.Errorf("storing plan attempts: %w", err)
		}
		return repository.NewSQLiteEditionRepo(tx).Update(ctx, edition)
	})
	if err != nil {
		return nil, err
	}

	return &PlanResult{Edition: edition, Plan: plan, Themes: preset.Themes}, nil
}
