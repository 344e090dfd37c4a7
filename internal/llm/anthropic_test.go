package llm

import (
	"context"
	"errors"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMessager struct {
	calls    int
	params   anthropic.MessageNewParams
	response *anthropic.Message
	errs     []error
}

func (m *mockMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.calls++
	m.params = params
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return m.response, nil
}

func newMockMessage(texts ...string) *anthropic.Message {
	msg := &anthropic.Message{Model: "claude-sonnet-4-20250514"}
	for _, text := range texts {
		msg.Content = append(msg.Content, anthropic.ContentBlockUnion{Type: "text", Text: text})
	}
	return msg
}

func anthropicTestConfig() LLMConfig {
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "test-key"
	return cfg
}

func TestAnthropicClient_Generate_ConcatenatesTextBlocks(t *testing.T) {
	mock := &mockMessager{response: newMockMessage(`[{"week":1,`, `"place_name":"Zoo"}]`)}
	client := NewAnthropicClientWithMessager(anthropicTestConfig(), "", mock, NoopObserver{})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskAssignWeeks,
		SystemPrompt: "sys",
		UserPrompt:   "usr",
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"week":1,"place_name":"Zoo"}]`, resp.Text)
	assert.Equal(t, "anthropic", resp.Provider)
	assert.Equal(t, anthropic.Model("claude-sonnet-4-20250514"), mock.params.Model)
	assert.Equal(t, int64(8192), mock.params.MaxTokens)
	require.Len(t, mock.params.System, 1)
	assert.Equal(t, "sys", mock.params.System[0].Text)
}

func TestAnthropicClient_DeepModelAndTokens(t *testing.T) {
	mock := &mockMessager{response: newMockMessage("[]")}
	cfg := anthropicTestConfig()
	client := NewAnthropicClientWithMessager(cfg, cfg.DeepModel, mock, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAssignWeeksDeep, UserPrompt: "usr"})

	require.NoError(t, err)
	assert.Equal(t, anthropic.Model("claude-opus-4-20250514"), mock.params.Model)
	assert.Equal(t, int64(32768), mock.params.MaxTokens)
}

func TestAnthropicClient_RetriesTransientError(t *testing.T) {
	mock := &mockMessager{
		response: newMockMessage("ok"),
		errs:     []error{errors.New("connection reset"), nil},
	}
	cfg := anthropicTestConfig()
	cfg.MaxRetries = 1
	client := NewAnthropicClientWithMessager(cfg, "", mock, NoopObserver{})

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAssignWeeks})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, mock.calls)
}

func TestAnthropicClient_RetryExhausted(t *testing.T) {
	mock := &mockMessager{errs: []error{errors.New("boom"), errors.New("boom")}}
	cfg := anthropicTestConfig()
	cfg.MaxRetries = 1

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client := NewAnthropicClientWithMessager(cfg, "", mock, obs)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAssignWeeks})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.False(t, captured.Success)
	assert.Equal(t, "UNKNOWN", captured.ErrorCode)
	assert.Equal(t, "anthropic", captured.Provider)
}

func TestAnthropicClient_MissingKey(t *testing.T) {
	mock := &mockMessager{response: newMockMessage("ok")}
	client := NewAnthropicClientWithMessager(DefaultConfig(), "", mock, NoopObserver{})

	assert.False(t, client.Available(context.Background()))
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAssignWeeks})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, mock.calls)
}
