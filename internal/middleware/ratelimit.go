package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgResponse "webhook-receiver/pkg/response"
)

// RateLimit bounds inbound deliveries per source IP. Sources that go quiet
// age out of the limiter cache.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.ClientIP()
		if !m.limiter.Allow(source) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for source %s", source)
			pkgResponse.Error(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sourceLimiter keeps one token bucket per source behind an expiring LRU so
// the per-source state cannot grow without bound.
type sourceLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSourceLimiter(requestsPerMin int) *sourceLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &sourceLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked sources
			nil,           // no eviction callback
			time.Minute*5, // TTL for idle sources
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (sl *sourceLimiter) Allow(key string) bool {
	limiter, ok := sl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(sl.rate, sl.burst)
		sl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
