package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAssignWeeks     TaskType = "assign_weeks"
	TaskAssignWeeksDeep TaskType = "assign_weeks_deep"
	TaskCurate          TaskType = "curate"
	TaskDiscover        TaskType = "discover"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// ProviderConfig addresses one hosted or local model endpoint.
type ProviderConfig struct {
	APIKey   string
	Endpoint string
	Model    string
}

// Configured reports whether the provider has credentials.
func (p ProviderConfig) Configured() bool {
	return p.APIKey != ""
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int

	Anthropic ProviderConfig
	OpenAI    ProviderConfig
	XAI       ProviderConfig
	Ollama    ProviderConfig

	// DeepModel is the Anthropic model used for the long-running
	// assignment tier. Empty disables that tier.
	DeepModel     string
	OllamaEnabled bool

	Tasks map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// Hosted providers stay inert until an API key is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		TimeoutMs:  25000,
		MaxRetries: 1,
		Anthropic: ProviderConfig{
			Endpoint: "https://api.anthropic.com",
			Model:    "claude-sonnet-4-20250514",
		},
		OpenAI: ProviderConfig{
			Endpoint: "https://api.openai.com/v1/chat/completions",
			Model:    "gpt-4o",
		},
		XAI: ProviderConfig{
			Endpoint: "https://api.x.ai/v1/chat/completions",
			Model:    "grok-3-fast",
		},
		Ollama: ProviderConfig{
			Endpoint: "http://localhost:11434",
			Model:    "llama3.2",
		},
		DeepModel: "claude-opus-4-20250514",
		Tasks: map[TaskType]TaskConfig{
			TaskAssignWeeks:     {Temperature: 0.7, MaxTokens: 8192, TimeoutMs: 25000},
			TaskAssignWeeksDeep: {Temperature: 0.7, MaxTokens: 32768, TimeoutMs: 240000},
			TaskCurate:          {Temperature: 0.3, MaxTokens: 8192, TimeoutMs: 25000},
			TaskDiscover:        {Temperature: 0.7, MaxTokens: 4096, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("WILDERCAL_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WILDERCAL_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WILDERCAL_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WILDERCAL_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.XAI.APIKey = os.Getenv("XAI_API_KEY")

	if v := os.Getenv("WILDERCAL_LLM_ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v, ok := os.LookupEnv("WILDERCAL_LLM_DEEP_MODEL"); ok {
		cfg.DeepModel = v
	}
	if v := os.Getenv("WILDERCAL_LLM_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("WILDERCAL_LLM_XAI_MODEL"); v != "" {
		cfg.XAI.Model = v
	}
	if v := os.Getenv("WILDERCAL_LLM_OLLAMA"); v != "" {
		cfg.OllamaEnabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WILDERCAL_LLM_OLLAMA_ENDPOINT"); v != "" {
		cfg.Ollama.Endpoint = v
	}
	if v := os.Getenv("WILDERCAL_LLM_OLLAMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}

	applyTaskTimeoutEnv(&cfg, TaskAssignWeeks, "WILDERCAL_LLM_ASSIGN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAssignWeeksDeep, "WILDERCAL_LLM_ASSIGN_DEEP_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCurate, "WILDERCAL_LLM_CURATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDiscover, "WILDERCAL_LLM_DISCOVER_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
