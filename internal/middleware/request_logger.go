package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per request. Handlers put the cause of a
// failed request under the "error" key; it is logged but never sent back.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		errMsg := c.GetString("error")
		if errMsg == "" {
			log.LogAttrs(c.Request.Context(), level, "http request",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", status),
				logger.Duration("latency", time.Since(start)),
				logger.String("request_id", c.GetString(RequestIDKey)),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(RequestIDKey)),
			logger.String("error", errMsg),
		)
	}
}
