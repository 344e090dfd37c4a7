package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// chatClient speaks the OpenAI-compatible chat completions protocol.
// The same client serves OpenAI and xAI.
type chatClient struct {
	name     string
	provider ProviderConfig
	cfg      LLMConfig
	tools    []map[string]any
	http     *http.Client
	observer Observer
}

// ChatOption customises a chat completions client.
type ChatOption func(*chatClient)

// WithTools attaches provider-specific tool declarations to every request,
// e.g. xAI live search.
func WithTools(tools ...map[string]any) ChatOption {
	return func(c *chatClient) { c.tools = append(c.tools, tools...) }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) ChatOption {
	return func(c *chatClient) { c.http = h }
}

// NewChatClient creates an LLMClient for an OpenAI-compatible endpoint.
func NewChatClient(name string, provider ProviderConfig, cfg LLMConfig, observer Observer, opts ...ChatOption) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &chatClient{
		name:     name,
		provider: provider,
		cfg:      cfg,
		http:     &http.Client{Timeout: 5 * time.Minute},
		observer: observer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewOpenAIClient is the chat client configured for OpenAI.
func NewOpenAIClient(cfg LLMConfig, observer Observer) LLMClient {
	return NewChatClient("openai", cfg.OpenAI, cfg, observer)
}

// NewGrokClient is the chat client configured for xAI with live search enabled.
func NewGrokClient(cfg LLMConfig, observer Observer) LLMClient {
	return NewChatClient("xai", cfg.XAI, cfg, observer, WithTools(map[string]any{"type": "live_search"}))
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []chatMessage    `json:"messages"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Temperature float64          `json:"temperature"`
	Tools       []map[string]any `json:"tools,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Provider() string { return c.name }

func (c *chatClient) Available(context.Context) bool {
	return c.provider.Configured()
}

func (c *chatClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !c.provider.Configured() {
		return nil, fmt.Errorf("%w: %s api key not set", ErrUnavailable, c.name)
	}
	temp, maxTok := taskParams(c.cfg, req)

	body := chatRequest{
		Model:       c.provider.Model,
		MaxTokens:   maxTok,
		Temperature: temp,
		Tools:       c.tools,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.UserPrompt})

	opts := callSpec{
		provider:   c.name,
		model:      c.provider.Model,
		task:       req.Task,
		timeoutMs:  c.cfg.TaskTimeout(req.Task),
		maxRetries: c.cfg.MaxRetries,
		observer:   c.observer,
	}
	return runWithRetry(ctx, opts, func(ctx context.Context) (string, string, error) {
		resp, err := c.doRequest(ctx, body)
		if err != nil {
			return "", "", err
		}
		if len(resp.Choices) == 0 {
			return "", "", fmt.Errorf("%w: %s returned no choices", ErrInvalidOutput, c.name)
		}
		return resp.Choices[0].Message.Content, resp.Model, nil
	})
}

func (c *chatClient) doRequest(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.provider.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.provider.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch code := httpResp.StatusCode; {
	case code == http.StatusOK:
	case code >= 400 && code < 500 && code != http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrRejected, c.name, code, string(respBody))
	default:
		return nil, fmt.Errorf("%s returned status %d: %s", c.name, code, string(respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}
