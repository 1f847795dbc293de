package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/logger"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/metrics"
	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

// SetupHandler serves the setup-generation endpoint.
type SetupHandler struct {
	assembler     *setup.Assembler
	sentryMetrics *metrics.SentryMetrics
}

// NewSetupHandler creates a new setup handler around an assembler.
func NewSetupHandler(assembler *setup.Assembler) *SetupHandler {
	return &SetupHandler{
		assembler:     assembler,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// Generate handles POST /generate-setup. Body and response shapes are
// the SetupRequest JSON and {"setup": ...} / {"error": ...}.
func (h *SetupHandler) Generate(c *gin.Context) {
	var req setup.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	startTime := time.Now()
	result, err := h.assembler.Generate(c.Request.Context(), &req)
	duration := time.Since(startTime)
	h.sentryMetrics.RecordGenerationDuration(c.Request.Context(), duration, err == nil)

	if err != nil {
		status := statusFor(err)
		fields := logger.WithContext(c)
		fields["car"] = req.Car
		fields["track"] = req.Track
		fields["category"] = req.CarCategory
		fields["duration_ms"] = duration.Milliseconds()
		logger.Error("Setup generation failed", err, fields)

		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Setup generated", logger.Fields{
		"request_id":   c.GetString("request_id"),
		"car":          req.Car,
		"track":        req.Track,
		"category":     req.CarCategory,
		"setup_length": len(result),
		"duration_ms":  duration.Milliseconds(),
	})

	c.JSON(http.StatusOK, gin.H{"setup": result})
}

// statusFor maps the assembler error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	var validationErr *setup.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.StatusCode()
	}
	var categoryErr *setup.CategoryError
	if errors.As(err, &categoryErr) {
		return categoryErr.StatusCode()
	}
	var upstreamErr *setup.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode()
	}
	var outputErr *setup.OutputError
	if errors.As(err, &outputErr) {
		return outputErr.StatusCode()
	}
	return http.StatusInternalServerError
}
