package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// skipPaths are not worth a log line per request
var skipPaths = map[string]bool{
	"/healthz": true,
	"/health":  true,
}

// RequestLogger logs each HTTP request with structured fields. Trace and
// span identifiers are attached when a trace context is present.
func RequestLogger() gin.HandlerFunc {
	log := logger.Get().WithFields(logger.Component("http"))

	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []logger.Field{
			logger.Method(c.Request.Method),
			logger.Path(path),
			logger.StatusCode(c.Writer.Status()),
			logger.Latency(time.Since(start)),
			logger.ClientIP(c.ClientIP()),
		}
		if query != "" {
			fields = append(fields, logger.Query(query))
		}
		if ua := c.Request.UserAgent(); ua != "" {
			fields = append(fields, logger.UserAgent(ua))
		}
		if user := GetUserFromContext(c); user != nil {
			fields = append(fields, logger.UserID(user.ID.String()))
		}

		entry := log.WithContext(c.Request.Context())
		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("HTTP request", fields...)
		case status >= 400:
			entry.Warn("HTTP request", fields...)
		default:
			entry.Info("HTTP request", fields...)
		}
	}
}
