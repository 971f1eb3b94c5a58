package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"calendarize/pkg/response"
)

// RateLimit returns a per-client-IP token bucket limiter. Limiters are
// kept for the life of the process; with per-IP keys the map stays small
// for the deployment sizes this service targets.
func (m Middleware) RateLimit() gin.HandlerFunc {
	rpm := m.rateLimit.RequestsPerMinute
	if rpm <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := m.rateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limit := rate.Limit(float64(rpm) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(limit, burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
