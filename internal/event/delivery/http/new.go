package http

import (
	"github.com/gin-gonic/gin"

	"calendarize/internal/event"
	"calendarize/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Convert(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             event.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
