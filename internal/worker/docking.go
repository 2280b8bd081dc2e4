package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"plasmodocking/internal/docking"
	"plasmodocking/internal/processes"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
)

// BusySnooze is how long a job waits when its work directory is locked.
const BusySnooze = 30 * time.Second

// DockingWorker runs docking processes. A run is never retried and never
// times out: the pipeline records its own failures on the process.
type DockingWorker struct {
	river.WorkerDefaults[processes.JobArgs]

	engine  docking.Engine
	metrics *Metrics
}

// NewDockingWorker creates a DockingWorker; metrics may be nil.
func NewDockingWorker(engine docking.Engine, metrics *Metrics) *DockingWorker {
	return &DockingWorker{engine: engine, metrics: metrics}
}

// Timeout disables river's job timeout for docking runs.
func (w *DockingWorker) Timeout(*river.Job[processes.JobArgs]) time.Duration {
	return -1
}

func (w *DockingWorker) Work(ctx context.Context, job *river.Job[processes.JobArgs]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("processID", job.Args.ProcessID.String()))
	start := time.Now()
	defer func() { w.metrics.jobDone(ctx, job.Kind, start, err) }()

	summary, err := w.engine.RunProcess(ctx, domain.ProcessID(job.Args.ProcessID))
	if err != nil {
		if errors.Is(err, docking.ErrBusy) {
			logger.Warn(ctx, "process directory is busy, snoozing", zap.Duration("snooze", BusySnooze))

			return river.JobSnooze(BusySnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in docking process", zap.Error(err))

		return fmt.Errorf("could not run process: %w", err)
	}

	if summary.Error != "" {
		logger.Warn(ctx, "docking process failed", zap.String("error", summary.Error))

		return nil
	}

	logger.Info(ctx, "docking process finished",
		zap.String("status", string(summary.Status)),
		zap.String("message", summary.Message),
		zap.Duration("elapsed", summary.Elapsed))

	return nil
}
