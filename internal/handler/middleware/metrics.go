package middleware

import (
	"time"

	"gongsil-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func Metrics(svc *metrics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		svc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
