// Package metrics wires OpenTelemetry meters to a Prometheus registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// JobBuckets are histogram buckets in seconds sized for long running docking jobs.
var JobBuckets = []float64{1, 5, 15, 30, 60, 300, 900, 1800, 3600, 7200, 14400} //nolint: gochecknoglobals

// NewMeterProvider creates an OpenTelemetry meter provider whose readings are
// exported through the given Prometheus registerer. A nil registerer uses
// prometheus.DefaultRegisterer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
