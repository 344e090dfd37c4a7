package assign

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/llm"
	"github.com/alexanderramin/wildercal/internal/scheduler"
)

// aiSuggestion is one element of the model's JSON array. Optional fields
// may be missing.
type aiSuggestion struct {
	Week            int    `json:"week"`
	PlaceName       string `json:"placeName"`
	Reason          string `json:"reason"`
	AlternateName   string `json:"alternateName"`
	AlternateReason string `json:"alternateReason"`
}

// AIStrategy asks one LLM tier for a full-year draft.
type AIStrategy struct {
	name   string
	client llm.LLMClient
	task   llm.TaskType
}

// NewAIStrategy wraps client. task selects the timeout and token budget.
func NewAIStrategy(name string, client llm.LLMClient, task llm.TaskType) *AIStrategy {
	return &AIStrategy{name: name, client: client, task: task}
}

func (s *AIStrategy) Name() string { return s.name }

func (s *AIStrategy) Suggest(ctx context.Context, in Input) Result {
	if err := ctx.Err(); err != nil {
		return Terminal(err)
	}
	if !s.client.Available(ctx) {
		return Retryable(fmt.Errorf("%w: %s", llm.ErrUnavailable, s.name))
	}

	prompt, err := buildUserPrompt(in)
	if err != nil {
		return Retryable(err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         s.task,
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return Terminal(err)
		}
		return Retryable(err)
	}

	raw, err := llm.ExtractJSON(resp.Text, validateSuggestions)
	if err != nil {
		return Retryable(err)
	}
	return Success(toAssignments(raw))
}

// validateSuggestions is structural only: an array with at least one
// in-range week.
func validateSuggestions(items []aiSuggestion) error {
	for _, it := range items {
		if it.Week >= 1 && it.Week <= domain.WeeksPerYear {
			return nil
		}
	}
	return fmt.Errorf("no entry with a week in 1..%d", domain.WeeksPerYear)
}

func toAssignments(items []aiSuggestion) []domain.WeekAssignment {
	out := make([]domain.WeekAssignment, 0, len(items))
	for _, it := range items {
		out = append(out, domain.WeekAssignment{
			Week:            it.Week,
			PlaceName:       it.PlaceName,
			Reason:          domain.Truncate(it.Reason, scheduler.MaxReasonLen),
			AlternateName:   it.AlternateName,
			AlternateReason: domain.Truncate(it.AlternateReason, scheduler.MaxReasonLen),
		})
	}
	return out
}

// StrategiesFromConfig builds the AI tiers in fallback order. deep puts the
// long-running Anthropic tier first when a deep model is configured.
func StrategiesFromConfig(cfg llm.LLMConfig, observer llm.Observer, deep bool) []Strategy {
	if !cfg.Enabled {
		return nil
	}
	var out []Strategy
	if cfg.Anthropic.Configured() {
		if deep && cfg.DeepModel != "" {
			client := llm.NewAnthropicClient(cfg, cfg.DeepModel, observer)
			out = append(out, NewAIStrategy("anthropic:"+cfg.DeepModel, client, llm.TaskAssignWeeksDeep))
		}
		client := llm.NewAnthropicClient(cfg, cfg.Anthropic.Model, observer)
		out = append(out, NewAIStrategy("anthropic:"+cfg.Anthropic.Model, client, llm.TaskAssignWeeks))
	}
	if cfg.OpenAI.Configured() {
		out = append(out, NewAIStrategy("openai:"+cfg.OpenAI.Model, llm.NewOpenAIClient(cfg, observer), llm.TaskAssignWeeks))
	}
	if cfg.OllamaEnabled {
		out = append(out, NewAIStrategy("ollama:"+cfg.Ollama.Model, llm.NewOllamaClient(cfg, observer), llm.TaskAssignWeeks))
	}
	return out
}
