package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ObserveStoreQuery records one document store query. Its signature matches
// store.ScanObserver.
func ObserveStoreQuery(ctx context.Context, operation, collection string, d time.Duration, err error) {
	m := Get()
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("collection", collection),
	)
	m.StoreQueryDuration.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		m.StoreQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
