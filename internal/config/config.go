package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/legiit/coldmail-backend/internal/entity"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Generation pipeline configuration
	Generation GenerationConfig `envPrefix:"GENERATION_"`

	// Completion providers
	AnthropicCfg AnthropicConfig `envPrefix:"ANTHROPIC_"`
	BedrockCfg   BedrockConfig   `envPrefix:"BEDROCK_"`

	// Optional completion cache
	CacheCfg CacheConfig `envPrefix:"CACHE_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GenerationConfig controls the shape of generated batches.
type GenerationConfig struct {
	Provider     entity.Provider   `env:"PROVIDER" envDefault:"anthropic"`
	OutputMode   entity.OutputMode `env:"OUTPUT_MODE" envDefault:"five_subjects"`
	EmailCount   int               `env:"EMAIL_COUNT" envDefault:"5"`
	SubjectCount int               `env:"SUBJECT_COUNT" envDefault:"5"`
}

// AnthropicConfig configures the direct Messages API provider. The API key
// is intentionally not required at startup: its absence is reported per
// request as a configuration error instead of crashing the process.
type AnthropicConfig struct {
	APIKey      string        `env:"API_KEY"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.anthropic.com"`
	Version     string        `env:"VERSION" envDefault:"2023-06-01"`
	Model       string        `env:"MODEL" envDefault:"claude-sonnet-4-20250514"`
	MaxTokens   int           `env:"MAX_TOKENS" envDefault:"4000"`
	Temperature *float64      `env:"TEMPERATURE"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
}

// BedrockConfig configures the alternate AWS Bedrock provider.
type BedrockConfig struct {
	Region      string   `env:"REGION" envDefault:"us-east-1"`
	ModelID     string   `env:"MODEL_ID" envDefault:"anthropic.claude-3-sonnet-20240229-v1:0"`
	MaxTokens   int      `env:"MAX_TOKENS" envDefault:"4000"`
	Temperature *float64 `env:"TEMPERATURE"`
}

// CacheConfig controls the opt-in completion cache keyed by request
// fingerprint. Off by default: repeated generate calls are expected to
// produce fresh drafts unless duplicate-spend protection is wanted.
type CacheConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	TTL     time.Duration `env:"TTL" envDefault:"15m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if !cfg.Generation.OutputMode.IsValid() {
		return fmt.Errorf("GENERATION_OUTPUT_MODE must be one of single_subject, five_subjects, plain_text; got %q", cfg.Generation.OutputMode)
	}

	switch cfg.Generation.Provider {
	case entity.ProviderAnthropic, entity.ProviderBedrock:
	default:
		return fmt.Errorf("GENERATION_PROVIDER must be anthropic or bedrock; got %q", cfg.Generation.Provider)
	}

	if cfg.Generation.EmailCount < 1 || cfg.Generation.EmailCount > 20 {
		return fmt.Errorf("GENERATION_EMAIL_COUNT must be between 1 and 20, got %d", cfg.Generation.EmailCount)
	}

	if cfg.Generation.SubjectCount < 1 || cfg.Generation.SubjectCount > 10 {
		return fmt.Errorf("GENERATION_SUBJECT_COUNT must be between 1 and 10, got %d", cfg.Generation.SubjectCount)
	}

	// The token budget must be large enough to hold a full batch of drafts,
	// otherwise truncated JSON shows up as extraction failures.
	if cfg.AnthropicCfg.MaxTokens < 1000 {
		return fmt.Errorf("ANTHROPIC_MAX_TOKENS must be at least 1000, got %d", cfg.AnthropicCfg.MaxTokens)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
