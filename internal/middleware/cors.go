package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware that answers preflight requests and sets the
// cross-origin headers. With no configured origins every origin is
// allowed, which matches a browser extension or local dev frontend
// calling the API directly.
func (m Middleware) CORS() gin.HandlerFunc {
	allowed := make(map[string]bool, len(m.cors.AllowedOrigins))
	for _, o := range m.cors.AllowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case len(allowed) == 0:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
