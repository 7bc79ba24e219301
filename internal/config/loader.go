package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/hrpulse/internal/logging"
)

const (
	envPrefix     = "HRPULSE_"
	envConfigPath = "HRPULSE_CONFIG"
	envOpenAIKey  = "OPENAI_API_KEY"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (New)
//  2. YAML file at path, or at HRPULSE_CONFIG when path is empty
//  3. env (prefix HRPULSE_)
//
// OPENAI_API_KEY is used when llm_api_key is still empty.
func Load(_ context.Context, path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// HRPULSE_LLM_API_KEY -> llm_api_key
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "hrpulse_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}
	// The path variable is not a config key.
	k.Delete("config")

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		cfg.LLMAPIKey = os.Getenv(envOpenAIKey)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot repair.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LLMEnabled && strings.TrimSpace(c.LLMEndpoint) == "" {
		return fmt.Errorf("%w: llm_endpoint must not be empty", ErrInvalidConfig)
	}
	if c.LLMTimeoutMs <= 0 {
		return fmt.Errorf("%w: llm_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.LLMRatePerSec < 0 {
		return fmt.Errorf("%w: llm_rate_per_sec must not be negative", ErrInvalidConfig)
	}
	return nil
}
