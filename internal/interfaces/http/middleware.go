package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
)

// slowRequestThreshold marks requests worth a warning.
const slowRequestThreshold = 3 * time.Second

// skipLogPaths are high-frequency probe paths kept out of the request log.
var skipLogPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RequestLogging logs one line per request: method, path, status and
// latency. 5xx log at error level, 4xx and slow requests at warn.
func RequestLogging(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		if _, skip := skipLogPaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("elapsed", elapsed),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request failed", fields...)
		case c.Writer.Status() >= 400 || elapsed > slowRequestThreshold:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic",
					logging.String("path", c.Request.URL.Path),
					logging.Any("panic", r),
				)
				c.AbortWithStatusJSON(500, gin.H{
					"error": gin.H{"code": "COMMON_001", "message": "internal error"},
				})
			}
		}()
		c.Next()
	}
}
