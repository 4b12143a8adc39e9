package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
}

// ServerConfig contains all HTTP-server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the generation provider.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Required; without
	// it the process refuses to start rather than failing per call.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName is the Gemini model used for card generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// MaxRetries bounds how many times a transient provider failure is retried.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// RetryDelaySeconds is the base delay for exponential backoff between retries.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`

	// TimeoutSeconds bounds a whole generation call, retries included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1,lte=600"`
}

// ExportConfig contains settings for the flashcard export writers.
type ExportConfig struct {
	// OutputDir is where CSV and JSON exports are written. Created on first
	// use if absent.
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}
