package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ProviderDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 25000, cfg.TaskTimeout(TaskAssignWeeks))
	assert.Equal(t, 240000, cfg.TaskTimeout(TaskAssignWeeksDeep))
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.False(t, cfg.Anthropic.Configured())
}

func TestLoadConfig_ReadsKeysAndTimeouts(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("OPENAI_API_KEY", "ok")
	t.Setenv("WILDERCAL_LLM_TIMEOUT_MS", "9000")
	t.Setenv("WILDERCAL_LLM_ASSIGN_TIMEOUT_MS", "15000")
	t.Setenv("WILDERCAL_LLM_DEEP_MODEL", "")

	cfg := LoadConfig()

	assert.True(t, cfg.Anthropic.Configured())
	assert.True(t, cfg.OpenAI.Configured())
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskAssignWeeks))
	assert.Equal(t, 25000, cfg.TaskTimeout(TaskCurate))
	assert.Empty(t, cfg.DeepModel)
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("WILDERCAL_LLM_ASSIGN_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 25000, cfg.TaskTimeout(TaskAssignWeeks))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskType("unknown")))
}
