package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware tags every request with a request id, stores a request
// scoped logger in the request context and logs the outcome.
func LoggerMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		requestLogger := logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(requestLogger.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		event := requestLogger.Info()
		if status >= http.StatusInternalServerError {
			event = requestLogger.Error()
		}
		if userID := CurrentUserID(c); userID != 0 {
			event = event.Uint("user_id", userID)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("url", c.Request.URL.String()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}

// RecoverMiddleware turns a panic into a 500 with the standard failure
// body. It must run after LoggerMiddleware to log with the request id.
func RecoverMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		RequestLogger(c).Error().
			Str("panic", fmt.Sprintf("%v", recovered)).
			Bytes("stack", debug.Stack()).
			Msg("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
			"status":  "fail",
		})
	})
}

// RequestLogger returns the logger stored by LoggerMiddleware, or a
// disabled logger.
func RequestLogger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
