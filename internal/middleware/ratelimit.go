package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimit caps requests per client IP inside a rolling window, counting
// in Redis so every instance behind a load balancer shares the budget. The
// INCR and EXPIRE run in one pipeline; INCR itself is atomic, the pipeline
// just keeps the expiry close behind it.
func RateLimit(client *redis.Client, log *logrus.Logger, maxRequests int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		panic("middleware: RateLimit requires a redis client")
	}
	if maxRequests <= 0 || window <= 0 {
		panic("middleware: RateLimit requires a positive limit and window")
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		pipe := client.Pipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			log.WithError(err).Error("rate limit pipeline failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate limiting error"})
			return
		}

		if incr.Val() > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
