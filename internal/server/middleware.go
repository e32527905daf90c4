package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carboncentrik/footprint/internal/logging"
)

// HeaderRequestID echoes the per-request id back to the caller.
const HeaderRequestID = "X-Request-ID"

// HeaderUserID carries the opaque caller identity. Absent means default_user.
const HeaderUserID = "X-User-ID"

const ctxKeyRequestID = "requestID"

// RequestID assigns each request a uuid unless the caller supplied one, and
// echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ctxKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// RequestLogger attaches a request-scoped logger to the request context so
// handlers and the engine log with the request id, and emits one line per
// request with status and latency.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := logger.With().
			Str("request_id", c.GetString(ctxKeyRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), reqLog))

		c.Next()

		reqLog.Info().
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
