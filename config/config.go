package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config carries everything the pipeline needs at startup. It is built once
// and passed explicitly into the services so tests can substitute their own.
type Config struct {
	Provider string `mapstructure:"AI_PROVIDER"`

	// Azure OpenAI
	AOAIEndpoint   string `mapstructure:"AOAI_ENDPOINT"`
	AOAIAPIKey     string `mapstructure:"AOAI_API_KEY"`
	AOAIDeployment string `mapstructure:"AOAI_DEPLOYMENT"`
	AOAIAPIVersion string `mapstructure:"AOAI_API_VERSION"`

	// Gemini
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	DocsDir        string `mapstructure:"DOCS_DIR"`
	OutputDir      string `mapstructure:"OUTPUT_DIR"`
	MaxChunkTokens int    `mapstructure:"MAX_CHUNK_TOKENS"`
}

// Load reads configuration from environment variables. Missing credentials
// for the selected provider are a startup failure, not something the
// pipeline recovers from later.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("AI_PROVIDER", ProviderOpenAI)
	v.SetDefault("AOAI_API_VERSION", "2024-02-15-preview")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("DOCS_DIR", "docs")
	v.SetDefault("OUTPUT_DIR", "output")
	v.SetDefault("MAX_CHUNK_TOKENS", 2000)

	for _, key := range []string{
		"AI_PROVIDER",
		"AOAI_ENDPOINT", "AOAI_API_KEY", "AOAI_DEPLOYMENT", "AOAI_API_VERSION",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"DOCS_DIR", "OUTPUT_DIR", "MAX_CHUNK_TOKENS",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on missing credentials for the selected provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.AOAIEndpoint == "" {
			return fmt.Errorf("AOAI_ENDPOINT is required")
		}
		if c.AOAIAPIKey == "" {
			return fmt.Errorf("AOAI_API_KEY is required")
		}
		if c.AOAIDeployment == "" {
			return fmt.Errorf("AOAI_DEPLOYMENT is required")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown AI provider: %s", c.Provider)
	}
	if c.MaxChunkTokens <= 0 {
		return fmt.Errorf("MAX_CHUNK_TOKENS must be positive, got %d", c.MaxChunkTokens)
	}
	return nil
}
