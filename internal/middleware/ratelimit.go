package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/ratelimit"
)

// RateLimit counts requests per client IP. Limiter failures let the
// request through.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}
		if !ok {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again later.")
			return
		}
		c.Next()
	}
}
