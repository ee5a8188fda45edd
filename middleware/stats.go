package middleware

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/seo-analyzer/backend/logging"
)

// Stats tracks unique visitors and periodically persists the request
// statistics.
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	var requests atomic.Int64

	return func(c *gin.Context) {
		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Save asynchronously every 100 requests to not block the
		// request path.
		if requests.Add(1)%100 == 0 {
			go stats.Save()
		}
	}
}
