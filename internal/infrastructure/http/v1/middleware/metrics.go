package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tatdocs/internal/metrics"
)

// Metrics middleware records request counters and latency histograms.
// The route template is used as the path label to keep cardinality low.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
