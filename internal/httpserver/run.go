package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. Blocks until the listener
// fails or the process is terminated.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("mapping handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)
	return srv.gin.Run(addr)
}
