package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger emits one access-log line per request, carrying the request ID so
// handler-level LogEvent lines can be joined to it.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d dur=%s ip=%s",
			GetRequestID(c), c.Request.Method, path,
			c.Writer.Status(), time.Since(start).Round(time.Microsecond), c.ClientIP())
	}
}
