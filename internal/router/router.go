package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mumcuarda/debit/internal/config"
	"github.com/mumcuarda/debit/internal/handler"
	"github.com/mumcuarda/debit/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	slipH *handler.SlipHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	slips := v1.Group("/slips")
	slips.POST("/process", slipH.Process)
	slips.POST("/extract", slipH.Extract)
	slips.POST("/export", slipH.Export)

	return r
}
