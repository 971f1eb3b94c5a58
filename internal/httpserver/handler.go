package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "calendarize/internal/event/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP middlewares registered (mode: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.welcome)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	h := eventHTTP.New(srv.l, srv.eventUC, srv.maxUploadBytes)
	eventHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Event routes registered at POST /api/v1/events/convert")

	return nil
}
