package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service health.
type HealthHandler struct {
	version  string
	provider string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version, provider string) *HealthHandler {
	return &HealthHandler{version: version, provider: provider}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  h.version,
		"provider": h.provider,
	})
}
