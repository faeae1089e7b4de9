// Package config loads and validates the copilot configuration from
// YAML files via Viper, with environment variable interpolation for
// secret values.
package config

import (
	"fmt"

	"github.com/salescopilot/copilot/internal/types"
)

// Config is the top-level copilot configuration.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm"`
	Planner PlannerConfig `mapstructure:"planner"`
	Skills  SkillsConfig  `mapstructure:"skills"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LLMConfig configures the AI planning provider.
type LLMConfig struct {
	// Provider selects the backend: "openai" or "anthropic".
	Provider string `mapstructure:"provider"`

	// Model overrides the provider default model.
	Model string `mapstructure:"model"`

	// APIKey is the provider credential. Supports ${ENV_VAR}
	// interpolation; prefer that over inlining secrets.
	APIKey string `mapstructure:"api_key"`

	// BaseURL overrides the provider endpoint (openai only).
	BaseURL string `mapstructure:"base_url"`

	// Temperature is the sampling temperature for planning calls.
	Temperature float64 `mapstructure:"temperature"`

	// MaxTokens caps the planning response length.
	MaxTokens int `mapstructure:"max_tokens"`
}

// PlannerConfig configures the planning engine.
type PlannerConfig struct {
	// MaxFallbackSteps caps the rule-based fallback plan length.
	MaxFallbackSteps int `mapstructure:"max_fallback_steps"`
}

// SkillsConfig configures the skill catalog.
type SkillsConfig struct {
	// Dir is the directory scanned for skill subdirectories.
	Dir string `mapstructure:"dir"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "anthropic",
			Temperature: 0.2,
			MaxTokens:   2048,
		},
		Planner: PlannerConfig{
			MaxFallbackSteps: 5,
		},
		Skills: SkillsConfig{
			Dir: "skills",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "anthropic", "":
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown llm provider %q", c.LLM.Provider))
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("llm temperature %v out of range [0,2]", c.LLM.Temperature))
	}

	if c.Planner.MaxFallbackSteps < 1 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"planner max_fallback_steps must be at least 1")
	}

	switch c.Logging.Format {
	case "text", "json", "":
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown logging format %q", c.Logging.Format))
	}

	return nil
}
