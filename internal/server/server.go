package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/pageza/vibe-fitness/backend/internal/logger"
)

// Server represents the HTTP server
type Server struct {
	http            *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration
}

// New creates a server that serves handler on addr.
func New(addr string, handler http.Handler, shutdownTimeout time.Duration, log logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:          log,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done. In-flight requests get up to the
// shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", map[string]interface{}{"addr": ln.Addr().String()})
		errChan <- s.http.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", map[string]interface{}{"timeout": s.shutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped", nil)
	return nil
}
