package assign

import (
	"context"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Outcome classifies what a strategy attempt produced.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeRetryable Outcome = "retryable"
	OutcomeTerminal  Outcome = "terminal"
)

// Result is the typed return of a Strategy. Retryable hands control to the
// next strategy in the chain; Terminal stops the remaining AI strategies.
type Result struct {
	Outcome     Outcome
	Suggestions []domain.WeekAssignment
	Err         error
}

// Success wraps suggestions from a strategy that produced a usable draft.
func Success(suggestions []domain.WeekAssignment) Result {
	return Result{Outcome: OutcomeSuccess, Suggestions: suggestions}
}

// Retryable reports a failure the next strategy may recover from.
func Retryable(err error) Result {
	return Result{Outcome: OutcomeRetryable, Err: err}
}

// Terminal reports a failure that should end the AI portion of the chain.
func Terminal(err error) Result {
	return Result{Outcome: OutcomeTerminal, Err: err}
}

// Input is what every strategy sees: the city label, the eligible place
// library and a validated theme list.
type Input struct {
	City   string
	Places []domain.ScoredPlace
	Themes []domain.WeekTheme
}

// Strategy produces draft week suggestions. Drafts may violate the usage
// cap; the enforcer repairs them.
type Strategy interface {
	Name() string
	Suggest(ctx context.Context, in Input) Result
}
