package metrics

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const meterName = "passadia"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal           metric.Int64Counter
	HTTPRequestDuration         metric.Float64Histogram
	RecommendationRequestsTotal metric.Int64Counter
	RecommendationErrorsTotal   metric.Int64Counter
	RecommendationDuration      metric.Float64Histogram
	RecommendationResultSize    metric.Int64Histogram
	SnapshotLoadDuration        metric.Float64Histogram
	StoreQueryDuration          metric.Float64Histogram
	StoreQueryErrorsTotal       metric.Int64Counter
	StatisticsCacheHitsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments ONLY ONCE from the global
// MeterProvider. Call it after the provider is installed.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		m := &AppMetrics{}
		var err error

		must := func(name string, err error) {
			if err != nil {
				zap.L().Fatal("Metrics: failed to create instrument", zap.String("instrument", name), zap.Error(err))
			}
		}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		must("http_requests_total", err)

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		must("http_request_duration_seconds", err)

		m.RecommendationRequestsTotal, err = meter.Int64Counter(
			"recommendation_requests_total",
			metric.WithDescription("Completed recommendation computations by strategy"),
			metric.WithUnit("{request}"),
		)
		must("recommendation_requests_total", err)

		m.RecommendationErrorsTotal, err = meter.Int64Counter(
			"recommendation_errors_total",
			metric.WithDescription("Failed recommendation computations by strategy"),
			metric.WithUnit("{error}"),
		)
		must("recommendation_errors_total", err)

		m.RecommendationDuration, err = meter.Float64Histogram(
			"recommendation_duration_seconds",
			metric.WithDescription("End to end recommendation latency in seconds"),
			metric.WithUnit("s"),
		)
		must("recommendation_duration_seconds", err)

		m.RecommendationResultSize, err = meter.Int64Histogram(
			"recommendation_result_size",
			metric.WithDescription("Number of walkways returned per recommendation"),
			metric.WithUnit("{walkway}"),
		)
		must("recommendation_result_size", err)

		m.SnapshotLoadDuration, err = meter.Float64Histogram(
			"recommendation_snapshot_load_seconds",
			metric.WithDescription("Time spent scanning users and walkways for one recommendation"),
			metric.WithUnit("s"),
		)
		must("recommendation_snapshot_load_seconds", err)

		m.StoreQueryDuration, err = meter.Float64Histogram(
			"store_query_duration_seconds",
			metric.WithDescription("Duration of document store queries in seconds"),
			metric.WithUnit("s"),
		)
		must("store_query_duration_seconds", err)

		m.StoreQueryErrorsTotal, err = meter.Int64Counter(
			"store_query_errors_total",
			metric.WithDescription("Total number of document store query errors"),
			metric.WithUnit("{error}"),
		)
		must("store_query_errors_total", err)

		m.StatisticsCacheHitsTotal, err = meter.Int64Counter(
			"statistics_cache_hits_total",
			metric.WithDescription("Walkway statistics served from cache"),
			metric.WithUnit("{hit}"),
		)
		must("statistics_cache_hits_total", err)

		zap.L().Info("Application metrics instruments initialized")
		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it against whatever
// MeterProvider is installed (a no-op one when OTel was never set up).
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
