package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied when neither environment nor config file set a value.
const (
	defaultPort              = 8080
	defaultLogLevel          = "info"
	defaultModelName         = "gemini-2.5-flash"
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 2
	defaultTimeoutSeconds    = 60
	defaultOutputDir         = "flashcards"
)

// envPrefix namespaces all environment variables, e.g.
// CARDFORGE_LLM_GEMINI_API_KEY maps to llm.gemini_api_key.
const envPrefix = "CARDFORGE"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. Returns a populated, validated Config or an
// error describing what is missing or malformed.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.max_retries", defaultMaxRetries)
	v.SetDefault("llm.retry_delay_seconds", defaultRetryDelaySeconds)
	v.SetDefault("llm.timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("export.output_dir", defaultOutputDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly for AutomaticEnv to
	// pick them up during Unmarshal.
	for _, key := range []string{"llm.gemini_api_key", "llm.prompt_template_path"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the
		// environment. Any other read error is surfaced.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
