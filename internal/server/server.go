// Package server owns the HTTP server lifecycle: startup, signal handling,
// and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
)

// Server runs the HTTP listener until a termination signal arrives, then
// shuts it down gracefully.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer wraps the given handler in an *http.Server configured from cfg.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      http.TimeoutHandler(handler, cfg.RequestTimeout, ""),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout + time.Second,
		},
		logger: logger,
	}
}

// RunServer blocks serving requests until SIGTERM/SIGINT/SIGQUIT, then
// drains in-flight requests and returns.
func (s *Server) RunServer() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Err(err).Msg("HTTP server shutdown error")
		}

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
