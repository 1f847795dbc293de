package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/api"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/config"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/llm"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/observability"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.ValidateCredentials(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "lmu-setup-generator@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	ctx := context.Background()

	// Initialize Langfuse tracing
	observability.InitializeLangfuse(ctx, cfg)

	// Resolve the configured LLM provider
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	provider, err := factory.GetProvider(ctx, cfg.Model, cfg.Provider)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to initialize LLM provider: ", err)
	}
	log.Printf("✅ LLM provider ready: %s (model: %s)", provider.Name(), cfg.Model)

	assembler := setup.NewAssembler(provider, cfg.Model,
		setup.WithTimeout(cfg.GenerationTimeout))

	// Set Gin mode
	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(cfg, assembler)

	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}
