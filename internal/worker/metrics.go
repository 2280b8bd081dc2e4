package worker

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"plasmodocking/internal/docking"
	"plasmodocking/pkg/metrics"
)

// Metrics records job outcomes and storage inventory readings.
type Metrics struct {
	jobDuration  metric.Float64Histogram
	combinations metric.Int64Counter
	files        metric.Int64Gauge
	bytes        metric.Int64Gauge
	entries      metric.Int64Gauge
}

// Ensure Metrics can observe docking runs.
var _ docking.Recorder = (*Metrics)(nil)

// NewMetrics creates the worker instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("plasmodocking/worker")

	var (
		m   Metrics
		err error
	)
	m.jobDuration, err = meter.Float64Histogram("plasmodocking.job.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of worker jobs."),
		metric.WithExplicitBucketBoundaries(metrics.JobBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create job duration histogram: %w", err)
	}

	m.combinations, err = meter.Int64Counter("plasmodocking.docking.combinations",
		metric.WithDescription("Receptor/ligand combinations docked, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create combinations counter: %w", err)
	}

	m.files, err = meter.Int64Gauge("plasmodocking.storage.files",
		metric.WithDescription("Regular files under the molecules directory."))
	if err != nil {
		return nil, fmt.Errorf("could not create files gauge: %w", err)
	}

	m.bytes, err = meter.Int64Gauge("plasmodocking.storage.size",
		metric.WithUnit("By"),
		metric.WithDescription("Bytes stored under the molecules directory."))
	if err != nil {
		return nil, fmt.Errorf("could not create size gauge: %w", err)
	}

	m.entries, err = meter.Int64Gauge("plasmodocking.storage.entries",
		metric.WithDescription("Top level entries of the molecules directory."))
	if err != nil {
		return nil, fmt.Errorf("could not create entries gauge: %w", err)
	}

	return &m, nil
}

// Combinations implements docking.Recorder.
func (m *Metrics) Combinations(ctx context.Context, succeeded, failed int) {
	if m == nil {
		return
	}
	m.combinations.Add(ctx, int64(succeeded), metric.WithAttributes(attribute.String("outcome", "success")))
	m.combinations.Add(ctx, int64(failed), metric.WithAttributes(attribute.String("outcome", "failure")))
}

func (m *Metrics) jobDone(ctx context.Context, kind string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.jobDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) inventory(ctx context.Context, inv Inventory) {
	if m == nil {
		return
	}
	m.files.Record(ctx, inv.Files)
	m.bytes.Record(ctx, inv.Bytes)
	m.entries.Record(ctx, int64(len(inv.Entries)))
}
