package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const fallbackShutdownTimeout = 5 * time.Second

// ShutdownHook runs after the HTTP server has drained, before the pool closes.
type ShutdownHook func(context.Context) error

// Serve runs httpServer until SIGINT/SIGTERM or ctx is done, then shuts the
// service down. A listener failure also triggers the shutdown sequence.
func (s *Server) Serve(ctx context.Context, httpServer *http.Server, hooks ...ShutdownHook) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var listenErr error
	select {
	case err := <-serveErr:
		if err != nil {
			s.logger.Error("Server error", zap.Error(err))
			listenErr = fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	}

	// Allow Ctrl+C to force shutdown
	stop()

	return errors.Join(listenErr, s.Shutdown(httpServer, hooks...))
}

// Shutdown drains in-flight requests, runs hooks (telemetry flush) and closes
// the pool, all within the configured shutdown timeout.
func (s *Server) Shutdown(httpServer *http.Server, hooks ...ShutdownHook) error {
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = fallbackShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs error
	if err := httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		errs = errors.Join(errs, fmt.Errorf("http shutdown: %w", err))
	}

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			s.logger.Error("Shutdown hook failed", zap.Error(err))
			errs = errors.Join(errs, err)
		}
	}

	s.Close()
	s.logger.Info("Server exiting", zap.Duration("timeout", timeout))
	return errs
}
