package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mumcuarda/debit/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	templates *config.TemplatesConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(templates *config.TemplatesConfig) *HealthHandler {
	return &HealthHandler{templates: templates}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is ready only when both
// debit-note templates are present on disk.
func (h *HealthHandler) Readiness(c *gin.Context) {
	for _, path := range []string{h.templates.PathA, h.templates.PathB} {
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"error":  "template not found: " + path,
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
