package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	Provider  string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider can be called at all.
	Available(ctx context.Context) bool

	// Provider names the backing service, e.g. "anthropic".
	Provider() string
}

// callFunc performs one provider round trip and returns the text and the
// model that served it.
type callFunc func(ctx context.Context) (text, model string, err error)

// callSpec describes one Generate invocation for runWithRetry.
type callSpec struct {
	provider   string
	model      string
	task       TaskType
	timeoutMs  int
	maxRetries int
	observer   Observer
}

// runWithRetry executes call under the task timeout, retrying transient
// failures, and reports exactly one event to the observer.
func runWithRetry(parent context.Context, opts callSpec, call callFunc) (*GenerateResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(parent, time.Duration(opts.timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + opts.maxRetries

	for i := 0; i < attempts; i++ {
		text, model, err := call(ctx)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			opts.observer.OnCallComplete(LLMCallEvent{
				Task:      opts.task,
				Provider:  opts.provider,
				Model:     opts.model,
				LatencyMs: latency,
				Success:   true,
			})
			if model == "" {
				model = opts.model
			}
			return &GenerateResponse{
				Text:      text,
				Model:     model,
				Provider:  opts.provider,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a hard refusal
		if ctx.Err() != nil || errors.Is(err, ErrRejected) {
			break
		}
	}

	var result error
	switch {
	case parent.Err() != nil:
		result = parent.Err()
	case ctx.Err() != nil:
		result = ErrTimeout
	case errors.Is(lastErr, ErrRejected):
		result = lastErr
	case isConnectionError(lastErr):
		result = fmt.Errorf("%w: %s: %w", ErrUnavailable, opts.provider, lastErr)
	default:
		result = fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
	}

	opts.observer.OnCallComplete(LLMCallEvent{
		Task:      opts.task,
		Provider:  opts.provider,
		Model:     opts.model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(result),
	})
	return nil, result
}

// taskParams resolves temperature and token limits for req.
func taskParams(cfg LLMConfig, req GenerateRequest) (float64, int) {
	taskCfg := cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
