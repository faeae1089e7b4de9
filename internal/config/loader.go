package config

import (
	"os"
	"regexp"

	"github.com/spf13/viper"

	"github.com/salescopilot/copilot/internal/types"
)

// envVarPattern matches ${VAR} references in config string values.
var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Load reads and validates the configuration at path. Missing files are
// not an error: defaults are returned, so a bare checkout works without
// any config file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "reading config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "unmarshaling config", err)
	}

	interpolateEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults seeds viper with the default configuration so partial
// files only need to override what they change.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("llm.provider", def.LLM.Provider)
	v.SetDefault("llm.temperature", def.LLM.Temperature)
	v.SetDefault("llm.max_tokens", def.LLM.MaxTokens)
	v.SetDefault("planner.max_fallback_steps", def.Planner.MaxFallbackSteps)
	v.SetDefault("skills.dir", def.Skills.Dir)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// interpolateEnv expands ${VAR} references in the string fields that
// commonly hold secrets or environment-specific values.
func interpolateEnv(cfg *Config) {
	cfg.LLM.APIKey = expandEnv(cfg.LLM.APIKey)
	cfg.LLM.BaseURL = expandEnv(cfg.LLM.BaseURL)
	cfg.Skills.Dir = expandEnv(cfg.Skills.Dir)
}

func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
