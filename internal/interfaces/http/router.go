package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
)

// NewRouter assembles the gin engine: probe endpoints, optional metrics
// exposition, and the versioned API.
func NewRouter(h *Handlers, metricsHandler http.Handler, logger logging.Logger, mode string) *gin.Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	gin.SetMode(mode)
	engine := gin.New()
	engine.Use(Recovery(logger), RequestLogging(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		if len(h.analyzer.Names()) == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no recipes loaded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if metricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/cocktails", h.ListCocktails)
		v1.GET("/cocktails/:name/analysis", h.Analyze)
		v1.GET("/cocktails/:name/recommendations", h.Recommend)
		v1.POST("/cocktails/:name/simulate", h.Simulate)
	}

	return engine
}
