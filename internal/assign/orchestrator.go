package assign

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/scheduler"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// Attempt records one strategy invocation for plan metadata.
type Attempt struct {
	Strategy  string
	Outcome   Outcome
	Error     string
	LatencyMs int64
}

// Plan is the enforced 52-row schedule plus how it was produced.
type Plan struct {
	Assignments []domain.WeekAssignment
	Source      string
	Degraded    bool
	Attempts    []Attempt
}

// EmptySlots lists weeks where the pool ran out for the primary or the
// alternate.
func (p Plan) EmptySlots() []int {
	var weeks []int
	for _, a := range p.Assignments {
		if a.PlaceName == "" || a.AlternateName == "" {
			weeks = append(weeks, a.Week)
		}
	}
	return weeks
}

// Orchestrator runs the strategy chain and hands the winning draft to the
// enforcer.
type Orchestrator struct {
	strategies []Strategy
	fallback   Strategy
	log        *zap.Logger
}

// NewOrchestrator creates an orchestrator trying strategies in order. The
// keyword strategy is always appended as the last resort.
func NewOrchestrator(log *zap.Logger, strategies ...Strategy) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		strategies: strategies,
		fallback:   KeywordStrategy{},
		log:        log.Named("assign"),
	}
}

// Run produces a plan for city. The only error is an invalid theme list;
// strategy failures degrade to the keyword fallback.
func (o *Orchestrator) Run(ctx context.Context, city string, places []domain.ScoredPlace, weekThemes []domain.WeekTheme) (Plan, error) {
	if err := themes.Validate(weekThemes); err != nil {
		return Plan{}, err
	}

	eligible := make([]domain.ScoredPlace, 0, len(places))
	for _, p := range places {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	in := Input{City: city, Places: eligible, Themes: weekThemes}

	var plan Plan
	var draft []domain.WeekAssignment
	for _, s := range o.strategies {
		res, attempt := o.attempt(ctx, s, in)
		plan.Attempts = append(plan.Attempts, attempt)
		if res.Outcome == OutcomeSuccess {
			draft = res.Suggestions
			plan.Source = s.Name()
			break
		}
		if res.Outcome == OutcomeTerminal {
			break
		}
	}

	if plan.Source == "" {
		res, attempt := o.attempt(ctx, o.fallback, in)
		plan.Attempts = append(plan.Attempts, attempt)
		draft = res.Suggestions
		plan.Source = o.fallback.Name()
		plan.Degraded = len(o.strategies) > 0
	}

	plan.Assignments = scheduler.Enforce(draft, eligible, weekThemes)

	o.log.Info("plan assembled",
		zap.String("city", city),
		zap.String("source", plan.Source),
		zap.Bool("degraded", plan.Degraded),
		zap.Int("attempts", len(plan.Attempts)),
		zap.Int("empty_slots", len(plan.EmptySlots())),
	)
	return plan, nil
}

func (o *Orchestrator) attempt(ctx context.Context, s Strategy, in Input) (Result, Attempt) {
	start := time.Now()
	res := s.Suggest(ctx, in)
	a := Attempt{
		Strategy:  s.Name(),
		Outcome:   res.Outcome,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if res.Err != nil {
		a.Error = res.Err.Error()
		o.log.Warn("strategy failed",
			zap.String("strategy", a.Strategy),
			zap.String("outcome", string(a.Outcome)),
			zap.Error(res.Err),
		)
	}
	return res, a
}
