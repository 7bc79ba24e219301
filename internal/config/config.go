// Package config loads process configuration from defaults, an optional
// YAML file and HRPULSE_* environment variables.
package config

import (
	"github.com/alexanderramin/hrpulse/internal/llm"
)

// Config contains process configuration. Keys are flat so that each maps to
// exactly one environment variable.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Dataset is a YAML file or a .db snapshot. Empty uses the embedded seed.
	Dataset string `koanf:"dataset"`

	// MetricsFile receives a Prometheus textfile after each command. Empty disables it.
	MetricsFile string `koanf:"metrics_file"`

	LLMEnabled         bool    `koanf:"llm_enabled"`
	LLMEndpoint        string  `koanf:"llm_endpoint"`
	LLMModel           string  `koanf:"llm_model"`
	LLMAPIKey          string  `koanf:"llm_api_key"`
	LLMTimeoutMs       int     `koanf:"llm_timeout_ms"`
	LLMRatePerSec      float64 `koanf:"llm_rate_per_sec"`
	LLMBreakerFailures uint32  `koanf:"llm_breaker_failures"`
	LLMLogCalls        bool    `koanf:"llm_log_calls"`
}

// New returns the defaults.
func New() *Config {
	d := llm.DefaultConfig()
	return &Config{
		LogLevel:           "warn",
		LLMEnabled:         true,
		LLMEndpoint:        d.Endpoint,
		LLMModel:           d.Model,
		LLMTimeoutMs:       d.TimeoutMs,
		LLMRatePerSec:      d.RatePerSec,
		LLMBreakerFailures: d.BreakerFailures,
	}
}

// LLM projects the flat keys onto the client configuration, keeping the
// per-task defaults.
func (c *Config) LLM() llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Enabled = c.LLMEnabled
	cfg.LogCalls = c.LLMLogCalls
	cfg.Endpoint = c.LLMEndpoint
	cfg.Model = c.LLMModel
	cfg.APIKey = c.LLMAPIKey
	cfg.TimeoutMs = c.LLMTimeoutMs
	cfg.RatePerSec = c.LLMRatePerSec
	cfg.BreakerFailures = c.LLMBreakerFailures
	return cfg
}
