package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"plasmodocking/internal/docking"
	"plasmodocking/internal/molecules"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
)

// PrepareWorker generates the grid maps of new macromolecules. Invalid
// input cancels the job; other failures are retried after RetryDelay.
type PrepareWorker struct {
	river.WorkerDefaults[molecules.PrepareJobArgs]

	engine     docking.Engine
	metrics    *Metrics
	retryDelay time.Duration
}

// NewPrepareWorker creates a PrepareWorker; metrics may be nil.
func NewPrepareWorker(engine docking.Engine, metrics *Metrics, retryDelay time.Duration) *PrepareWorker {
	return &PrepareWorker{engine: engine, metrics: metrics, retryDelay: retryDelay}
}

// NextRetry schedules retries at a fixed delay.
func (w *PrepareWorker) NextRetry(*river.Job[molecules.PrepareJobArgs]) time.Time {
	return time.Now().Add(w.retryDelay)
}

func (w *PrepareWorker) Work(ctx context.Context, job *river.Job[molecules.PrepareJobArgs]) (err error) {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("macromoleculeID", job.Args.MacromoleculeID.String()))
	start := time.Now()
	defer func() { w.metrics.jobDone(ctx, job.Kind, start, err) }()

	summary, err := w.engine.PrepareMacromolecule(ctx, domain.MacromoleculeID(job.Args.MacromoleculeID))
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrNotFound):
			logger.Error(ctx, "macromolecule cannot be prepared", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, docking.ErrBusy):
			logger.Warn(ctx, "macromolecule directory is busy, snoozing", zap.Duration("snooze", BusySnooze))

			return river.JobSnooze(BusySnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in preparing macromolecule", zap.Error(err))

		return fmt.Errorf("could not prepare macromolecule: %w", err)
	}

	fields := []zap.Field{
		zap.String("fld", summary.Fld),
		zap.Bool("redocked", summary.DockingRan),
		zap.Bool("updated", summary.Updated),
	}
	if summary.Best != nil {
		fields = append(fields, zap.Float64("rmsd", summary.Best.RMSD), zap.Float64("energy", summary.Best.Energy))
	}
	logger.Info(ctx, "macromolecule prepared", fields...)

	return nil
}
