package server

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/observability/metrics"
	"github.com/FACorreiaa/passadia/internal/app/observability/tracer"
	"github.com/FACorreiaa/passadia/internal/pkg/config"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// InitObservability initializes OpenTelemetry and application metrics. The
// returned hook flushes the providers and stops the metrics listener.
func InitObservability(cfg *config.Config, logger *zap.Logger) (ShutdownHook, error) {
	metricsAddr := ":" + cfg.Observability.MetricsPort
	otelShutdown, err := tracer.InitOtelProviders(tracer.Options{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: Version,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		MetricsAddr:    metricsAddr,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized", zap.String("metrics_endpoint", metricsAddr+"/metrics"))

	return otelShutdown, nil
}
