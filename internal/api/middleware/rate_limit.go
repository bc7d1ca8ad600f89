package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duyvawss25/Do-An-Co-So/pkg/redis"
	"github.com/duyvawss25/Do-An-Co-So/pkg/response"
)

// RateLimit caps requests per client IP for one route group. With a
// nil Redis client it is a pass-through.
func RateLimit(rdb *redis.Client, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())
		ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Fail open: a Redis outage must not lock users out.
			c.Next()
			return
		}
		if !ok {
			response.Error(c, 429, "Quá nhiều yêu cầu, vui lòng thử lại sau")
			c.Abort()
			return
		}

		c.Next()
	}
}
