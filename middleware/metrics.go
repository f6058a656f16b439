package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/metrics"
)

// Metrics records request counts and latency by route template, so
// /cars/1 and /cars/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
