package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// WithMetrics returns a middleware that records request latency and counts
// using the given meter provider.
func WithMetrics(mp metric.MeterProvider) func(http.Handler) http.Handler {
	meter := mp.Meter("plasmodocking/http")
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		logger.Warn(context.Background(), "could not create http duration histogram", zap.Error(err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			if duration == nil {
				return
			}
			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
			))
		})
	}
}
