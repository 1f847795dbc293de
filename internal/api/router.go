package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/api/handlers"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/api/middleware"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/config"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

// Version is the service version reported by /health.
const Version = "1.0.0"

// SetupRouter configures the Gin engine with all middleware and routes.
func SetupRouter(cfg *config.Config, assembler *setup.Assembler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoverWithSentry())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.RequestTracking())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	setupHandler := handlers.NewSetupHandler(assembler)
	healthHandler := handlers.NewHealthHandler(Version, cfg.Provider)

	router.POST("/generate-setup", setupHandler.Generate)
	router.GET("/health", healthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/cars", handlers.ListCars)
		api.GET("/tracks", handlers.ListTracks)
	}

	// The browser form is a static page served alongside the API.
	router.Static("/static", "./static")
	router.StaticFile("/", "./static/index.html")

	return router
}
