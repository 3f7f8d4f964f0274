package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"storefront-assistant/pkg/response"
)

// RateLimit throttles per client IP. Disabled when the configured rate is
// zero or negative.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.perMin <= 0 {
			c.Next()
			return
		}

		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Limit(float64(m.perMin)/60.0), m.perMin)
	m.limiters.Add(clientIP, limiter)
	return limiter
}
