package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.GenerationTimeout != 90*time.Second {
		t.Errorf("GenerationTimeout = %v, want 90s", cfg.GenerationTimeout)
	}
}

func TestLoadTimeoutOverride(t *testing.T) {
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "30")
	if cfg := Load(); cfg.GenerationTimeout != 30*time.Second {
		t.Errorf("GenerationTimeout = %v, want 30s", cfg.GenerationTimeout)
	}

	// Unparseable and non-positive values fall back to the default.
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "soon")
	if cfg := Load(); cfg.GenerationTimeout != 90*time.Second {
		t.Errorf("GenerationTimeout = %v, want default 90s", cfg.GenerationTimeout)
	}
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "-5")
	if cfg := Load(); cfg.GenerationTimeout != 90*time.Second {
		t.Errorf("GenerationTimeout = %v, want default 90s", cfg.GenerationTimeout)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAIAPIKey: "sk-test"}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", GeminiAPIKey: "key"}, false},
		{"gemini without key", Config{Provider: "gemini", OpenAIAPIKey: "sk-test"}, true},
		{"default provider needs openai key", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCredentials()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
