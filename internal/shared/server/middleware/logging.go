package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-extractor/internal/shared/telemetry"
)

// Keys handlers may set on the gin context to enrich the request log.
const (
	LogKeyRecordCount = "recordCount"
	LogKeySaveFailed  = "saveFailed"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if v, ok := c.Get(LogKeyRecordCount); ok {
			fields["record_count"] = v
		}
		if v, ok := c.Get(LogKeySaveFailed); ok {
			fields["save_failed"] = v
		}
		telemetry.Info("request.complete", fields)
	}
}
