package api

import (
	"net/http"

	"github.com/amitbasuri/numstats-go/internal/statistics"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the statistics API
type Handler struct {
	registry *statistics.Registry
	parser   *statistics.Parser
	metrics  *Metrics
}

// NewHandler creates a new API handler
func NewHandler(registry *statistics.Registry, parser *statistics.Parser, metrics *Metrics) *Handler {
	return &Handler{
		registry: registry,
		parser:   parser,
		metrics:  metrics,
	}
}

// NewRouter builds a gin engine with middleware and all API routes registered
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	// Paths are normalized by NormalizePath, never redirected
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(requestLogger(), h.metrics.Middleware(), recovery())
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all API routes on the given router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Health check endpoints
	r.GET("/health", h.Health)
	r.GET("/liveness", h.Liveness)
	r.GET("/readiness", h.Readiness)

	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	// One endpoint per statistic: GET /mean, /median, /mode
	for _, calc := range h.registry.Calculators() {
		r.GET("/"+calc.Operation().String(), h.ComputeStatistic(calc))
	}

	r.NoRoute(h.NotFound)
}

// Health checks if the service is healthy
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Liveness reports that the process is running
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports whether the service can take traffic.
// There are no backing dependencies, so it is ready once routes are registered.
func (h *Handler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"operations": h.registry.List(),
	})
}
