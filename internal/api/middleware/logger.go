package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs every request with its method, full path, client, status and
// latency. Health probes are skipped to keep the log readable.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		if c.Request.URL.Path == "/health" {
			return
		}
		log.Printf("%s %s from %s -> %d in %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
