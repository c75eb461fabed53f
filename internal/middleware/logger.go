package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one access log line per request. Failed requests are
// logged with the error recorded by the handler.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status < 400 {
			log.LogAttrs(c.Request.Context(), logger.InfoLevel, "http request",
				logger.String("request_id", GetRequestID(c)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.Int("status", status),
				logger.Duration("latency", time.Since(start)),
			)
			return
		}

		level := logger.WarnLevel
		if status >= 500 {
			level = logger.ErrorLevel
		}
		log.LogAttrs(c.Request.Context(), level, "http request failed",
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("error", c.GetString("error")),
		)
	}
}
