package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID propagates the caller's X-Request-ID or mints a new one, so a
// single contribution run can be traced across the request log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger writes one line per request with method, path, status, and latency.
// Health probe traffic is skipped so orchestrator polling does not drown out
// compliance activity.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s %s status=%d latency=%s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			elapsed,
		)
	}
}

// Recovery converts panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
