// Package worker consumes the docking, preparation and inventory jobs.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"plasmodocking/internal/config"
	"plasmodocking/internal/docking"
	"plasmodocking/pkg/logger"
)

// Options configure the river client.
type Options struct {
	// ID identifies the client in river's leadership and job records.
	ID                string
	Queue             string
	Concurrency       int
	MoleculesDir      string
	InventoryInterval time.Duration
	PrepareRetryDelay time.Duration
}

// NewOptions builds the worker options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ID:                cfg.Worker.App,
		Queue:             cfg.Worker.Queue,
		Concurrency:       cfg.Worker.Concurrency,
		MoleculesDir:      cfg.Files.MoleculesDir,
		InventoryInterval: cfg.Worker.InventoryInterval,
		PrepareRetryDelay: cfg.Tools.PrepareRetryDelay,
	}
}

// Workers registers every job handled by the worker process.
func Workers(engine docking.Engine, metrics *Metrics, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDockingWorker(engine, metrics))
	river.AddWorker(workers, NewPrepareWorker(engine, metrics, options.PrepareRetryDelay))
	river.AddWorker(workers, NewInventoryWorker(options.MoleculesDir, metrics))

	return workers
}

// Config returns the river client configuration of the worker process.
func Config(ctx context.Context, workers *river.Workers, options Options) *river.Config {
	queue := options.Queue
	if queue == "" {
		queue = river.QueueDefault
	}
	concurrency := max(options.Concurrency, 1)

	// jobs inserted by the API always land on the default queue
	queues := map[string]river.QueueConfig{
		river.QueueDefault: {MaxWorkers: concurrency},
		queue:              {MaxWorkers: concurrency},
	}

	cfg := &river.Config{
		ID:      options.ID,
		Queues:  queues,
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	}

	if options.InventoryInterval > 0 {
		cfg.PeriodicJobs = []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.InventoryInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return InventoryJobArgs{}, &river.InsertOpts{Queue: queue}
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		}
	}

	return cfg
}

// Start creates and starts the river client consuming the configured queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	engine docking.Engine,
	metrics *Metrics,
	options Options,
) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), Config(ctx, Workers(engine, metrics, options), options))
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
