package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/pkg/metrics"
)

// MetricsMiddleware counts requests and observes latency per route
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, strconv.Itoa(c.Writer.Status()), float64(time.Since(start).Milliseconds()))
	}
}
