package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftsight/shiftsight-api/internal/service"
)

// Metrics observes every API request with its route template, so per-route
// histograms stay bounded no matter how many solution ids pass through.
// Scrape and probe endpoints are skipped to keep the series free of
// self-inflicted traffic.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		switch path {
		case "/metrics", "/health", "/ready":
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
