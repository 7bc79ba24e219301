package llm

import "strings"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskClassify     TaskType = "classify"
	TaskFormat       TaskType = "format"
	TaskGapRationale TaskType = "gap_rationale"
	TaskInsight      TaskType = "insight"
	TaskMessage      TaskType = "message"
	TaskSuccession   TaskType = "succession"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
	JSONMode    bool
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled         bool
	LogCalls        bool
	Endpoint        string
	Model           string
	APIKey          string
	TimeoutMs       int
	RatePerSec      float64 // <= 0 disables the limiter
	BreakerFailures uint32
	Tasks           map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:         false,
		LogCalls:        false,
		Endpoint:        "https://api.openai.com",
		Model:           "gpt-4o-mini",
		TimeoutMs:       15000,
		RatePerSec:      2,
		BreakerFailures: 3,
		Tasks: map[TaskType]TaskConfig{
			TaskClassify:     {Temperature: 0.3, MaxTokens: 200, TimeoutMs: 8000, JSONMode: true},
			TaskFormat:       {Temperature: 0.7, MaxTokens: 300},
			TaskGapRationale: {Temperature: 0.7, MaxTokens: 200},
			TaskInsight:      {Temperature: 0.7, MaxTokens: 150},
			TaskMessage:      {Temperature: 0.8, MaxTokens: 300, JSONMode: true},
			TaskSuccession:   {Temperature: 0.7, MaxTokens: 150},
		},
	}
}

// Configured reports whether the LLM may be called at all.
func (c LLMConfig) Configured() bool {
	return c.Enabled && strings.TrimSpace(c.APIKey) != ""
}

// KeyLooksValid is a shape check only: OpenAI keys start with "sk-".
func (c LLMConfig) KeyLooksValid() bool {
	return strings.HasPrefix(strings.TrimSpace(c.APIKey), "sk-")
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
