package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JGuylherme/Service-POS/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger attaches a request-scoped zerolog logger to the request
// context and writes one access line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := logger.WithLogger(c.Request.Context(), map[string]interface{}{
			"request_id": requestID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		l := logger.Get()
		event := l.Info()
		if status >= 500 {
			event = l.Error()
		} else if status >= 400 {
			event = l.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
