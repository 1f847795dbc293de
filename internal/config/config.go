package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration. The service is stateless:
// no database, no auth secrets. Everything here is read once at startup
// and never mutated.
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM provider selection
	Provider     string // "openai" (default) or "gemini"
	Model        string
	OpenAIAPIKey string
	GeminiAPIKey string

	// Bound on the upstream generation call
	GenerationTimeout time.Duration

	// Observability
	SentryDSN         string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseHost      string
	LangfuseEnabled   bool
}

const defaultGenerationTimeoutSeconds = 90

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		Provider:          getEnv("LLM_PROVIDER", "openai"),
		Model:             getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GenerationTimeout: time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", defaultGenerationTimeoutSeconds)) * time.Second,
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

// ValidateCredentials checks that the API key for the selected provider
// is present. Its absence is startup-fatal; the check runs once before
// the server accepts any requests.
func (c *Config) ValidateCredentials() error {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	default:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
