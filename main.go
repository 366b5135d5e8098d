package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/pkg/config"
	"github.com/FACorreiaa/passadia/internal/pkg/logger"
	"github.com/FACorreiaa/passadia/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	l := logger.Log
	defer func() { _ = l.Sync() }()

	// Initialize observability
	otelShutdown, err := server.InitObservability(cfg, l)
	if err != nil {
		return err
	}

	// Create server
	srv, err := server.New(context.Background(), cfg, l)
	if err != nil {
		return errors.Join(err, otelShutdown(context.Background()))
	}

	srv.SetRouter(srv.SetupRouter(srv.DocumentStore()))

	// Start pprof server (on separate port, not exposed publicly)
	server.StartPprofServer(cfg.Observability.PprofPort, l)

	// Blocks until SIGINT/SIGTERM, then drains requests, flushes telemetry
	// and closes the pool.
	if err := srv.Serve(context.Background(), srv.HTTPServer(), otelShutdown); err != nil {
		return err
	}

	l.Info("Graceful shutdown complete")
	return nil
}
