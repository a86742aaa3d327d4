package middleware

import (
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request duration and count per route template.
func Metrics(metricsSvc *metrics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
