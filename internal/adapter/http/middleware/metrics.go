package middleware

import (
	"strconv"
	"time"

	"tuition_billing/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template, so path
// parameters do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestCount.WithLabelValues(path, method, status).Inc()
		metrics.RequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}
