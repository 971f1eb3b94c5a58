package http

import (
	"github.com/gin-gonic/gin"

	"calendarize/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Conversion calls out to a paid model API, so the rate limiter guards it.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/convert", mw.RateLimit(), h.Convert)
	}
}
