package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicMessager is the slice of the Anthropic SDK the client needs.
// *anthropic.MessageService satisfies it.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type anthropicClient struct {
	cfg      LLMConfig
	model    string
	messages AnthropicMessager
	observer Observer
}

// NewAnthropicClient creates an LLMClient backed by the Anthropic Messages API
// using model. SDK-level retries are disabled; retries follow cfg.MaxRetries.
func NewAnthropicClient(cfg LLMConfig, model string, observer Observer) LLMClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Anthropic.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Anthropic.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Anthropic.Endpoint))
	}
	c := anthropic.NewClient(opts...)
	return NewAnthropicClientWithMessager(cfg, model, &c.Messages, observer)
}

// NewAnthropicClientWithMessager wires an explicit messager, mainly for tests.
func NewAnthropicClientWithMessager(cfg LLMConfig, model string, messages AnthropicMessager, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if model == "" {
		model = cfg.Anthropic.Model
	}
	return &anthropicClient{cfg: cfg, model: model, messages: messages, observer: observer}
}

func (c *anthropicClient) Provider() string { return "anthropic" }

func (c *anthropicClient) Available(context.Context) bool {
	return c.cfg.Anthropic.Configured()
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !c.cfg.Anthropic.Configured() {
		return nil, fmt.Errorf("%w: anthropic api key not set", ErrUnavailable)
	}
	temp, maxTok := taskParams(c.cfg, req)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTok),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt))},
		Temperature: anthropic.Float(temp),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	opts := callSpec{
		provider:   c.Provider(),
		model:      c.model,
		task:       req.Task,
		timeoutMs:  c.cfg.TaskTimeout(req.Task),
		maxRetries: c.cfg.MaxRetries,
		observer:   c.observer,
	}
	return runWithRetry(ctx, opts, func(ctx context.Context) (string, string, error) {
		resp, err := c.messages.New(ctx, params)
		if err != nil {
			return "", "", classifyAnthropicError(err)
		}
		var sb strings.Builder
		for _, b := range resp.Content {
			if b.Type == "text" {
				sb.WriteString(b.Text)
			}
		}
		return sb.String(), string(resp.Model), nil
	})
}

// classifyAnthropicError marks client-side refusals as non-retryable.
func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		if code >= 400 && code < 500 && code != http.StatusTooManyRequests && code != http.StatusRequestTimeout {
			return fmt.Errorf("%w: anthropic status %d: %v", ErrRejected, code, err)
		}
	}
	return err
}
