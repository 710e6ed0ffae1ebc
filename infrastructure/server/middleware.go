package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// LoggerMiddleware logs HTTP requests.
func LoggerMiddleware(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Debug("HTTP request",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"ip", c.ClientIP(),
			"latency", time.Since(start),
			"body_size", c.Writer.Size(),
		)

		for _, e := range c.Errors {
			logger.Error("Request error", "path", path, "error", e.Err)
		}
	}
}
