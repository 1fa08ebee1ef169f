package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"rockroutes/pkg/metrics"
)

// MetricsMiddleware records request count and latency per route template so
// ids do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		statusStr := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, statusStr).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, statusStr).Observe(time.Since(start).Seconds())
	}
}
