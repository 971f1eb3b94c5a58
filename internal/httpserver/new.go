package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendarize/internal/event"
	"calendarize/internal/middleware"
	"calendarize/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Event domain
	eventUC        event.UseCase
	maxUploadBytes int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Event domain
	EventUC        event.UseCase
	MaxUploadBytes int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		eventUC:        cfg.EventUC,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	return nil
}
