package worker_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"plasmodocking/internal/docking"
	mockdocking "plasmodocking/internal/docking/mock"
	"plasmodocking/internal/molecules"
	"plasmodocking/internal/processes"
	"plasmodocking/internal/worker"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/metrics"
	"plasmodocking/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func dockingJob(ID uuid.UUID) *river.Job[processes.JobArgs] {
	return &river.Job[processes.JobArgs]{
		JobRow: &rivertype.JobRow{ID: 1, Kind: processes.JobArgs{}.Kind(), Attempt: 1},
		Args:   processes.JobArgs{ProcessID: ID},
	}
}

func prepareJob(ID uuid.UUID) *river.Job[molecules.PrepareJobArgs] {
	return &river.Job[molecules.PrepareJobArgs]{
		JobRow: &rivertype.JobRow{ID: 2, Kind: molecules.PrepareJobArgs{}.Kind(), Attempt: 1},
		Args:   molecules.PrepareJobArgs{MacromoleculeID: ID},
	}
}

func newMetrics(t *testing.T) (*worker.Metrics, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := worker.NewMetrics(mp)
	require.NoError(t, err)

	return m, reg
}

func family(t *testing.T, reg *prometheus.Registry, prefix string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), prefix) {
			return f
		}
	}
	t.Fatalf("metric %s not exported", prefix)

	return nil
}

func TestDockingWorker_Work(t *testing.T) {
	ID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mockdocking.NewMockEngine(ctrl)
		m, reg := newMetrics(t)
		w := worker.NewDockingWorker(engine, m)

		engine.EXPECT().RunProcess(gomock.Any(), domain.ProcessID(ID)).Return(&docking.RunSummary{
			OK:      true,
			Status:  domain.ProcessStatusDone,
			Message: "done",
		}, nil)

		require.NoError(t, w.Work(context.Background(), dockingJob(ID)))
		require.Equal(t, uint64(1),
			family(t, reg, "plasmodocking_job_duration").GetMetric()[0].GetHistogram().GetSampleCount())
	})

	t.Run("pipeline failure is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mockdocking.NewMockEngine(ctrl)
		w := worker.NewDockingWorker(engine, nil)

		engine.EXPECT().RunProcess(gomock.Any(), domain.ProcessID(ID)).
			Return(&docking.RunSummary{Status: domain.ProcessStatusError, Error: "SDF não encontrado"}, nil)

		require.NoError(t, w.Work(context.Background(), dockingJob(ID)))
	})

	t.Run("busy snoozes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mockdocking.NewMockEngine(ctrl)
		w := worker.NewDockingWorker(engine, nil)

		engine.EXPECT().RunProcess(gomock.Any(), domain.ProcessID(ID)).
			Return(nil, fmt.Errorf("/data/p: %w", docking.ErrBusy))

		err := w.Work(context.Background(), dockingJob(ID))
		var snoozeErr *river.JobSnoozeError
		require.ErrorAs(t, err, &snoozeErr)
		require.Equal(t, worker.BusySnooze, snoozeErr.Duration)
	})

	t.Run("infrastructure error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mockdocking.NewMockEngine(ctrl)
		w := worker.NewDockingWorker(engine, nil)

		engine.EXPECT().RunProcess(gomock.Any(), domain.ProcessID(ID)).Return(nil, errors.New("db down"))

		err := w.Work(context.Background(), dockingJob(ID))
		require.ErrorContains(t, err, "could not run process: db down")
		var cancelErr *river.JobCancelError
		require.NotErrorAs(t, err, &cancelErr)
	})

	require.Equal(t, time.Duration(-1), worker.NewDockingWorker(nil, nil).Timeout(dockingJob(ID)))
	require.Equal(t, 1, processes.JobArgs{}.InsertOpts().MaxAttempts)
}

func TestPrepareWorker_Work(t *testing.T) {
	ID := uuid.New()

	for _, tc := range []struct {
		name   string
		err    error
		cancel bool
		snooze bool
	}{
		{name: "success"},
		{name: "bad request cancels", err: serrors.With(serrors.ErrBadRequest, "Receptor PDB not found"), cancel: true},
		{name: "not found cancels", err: serrors.With(serrors.ErrNotFound, "gone"), cancel: true},
		{name: "busy snoozes", err: fmt.Errorf("dir: %w", docking.ErrBusy), snooze: true},
		{name: "tool failure retries", err: &docking.ToolError{Tool: "autogrid4", ExitCode: 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := mockdocking.NewMockEngine(ctrl)
			w := worker.NewPrepareWorker(engine, nil, time.Minute)

			call := engine.EXPECT().PrepareMacromolecule(gomock.Any(), domain.MacromoleculeID(ID))
			if tc.err != nil {
				call.Return(nil, tc.err)
			} else {
				call.Return(&docking.PrepareSummary{Fld: "/data/rec.maps.fld", DockingRan: true,
					Best: &docking.Best{Energy: -7.1, RMSD: 1.2, Run: 3}}, nil)
			}

			err := w.Work(context.Background(), prepareJob(ID))
			var (
				cancelErr *river.JobCancelError
				snoozeErr *river.JobSnoozeError
			)
			switch {
			case tc.err == nil:
				require.NoError(t, err)
			case tc.cancel:
				require.ErrorAs(t, err, &cancelErr)
			case tc.snooze:
				require.ErrorAs(t, err, &snoozeErr)
			default:
				require.Error(t, err)
				require.NotErrorAs(t, err, &cancelErr)
				require.NotErrorAs(t, err, &snoozeErr)
			}
		})
	}

	next := worker.NewPrepareWorker(nil, nil, time.Minute).NextRetry(prepareJob(ID))
	require.WithinDuration(t, time.Now().Add(time.Minute), next, 5*time.Second)
}

func TestTakeInventory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "falciparum", "true", "rec"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "falciparum", "true", "rec", "rec.pdb"), []byte("ATOM"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("hello"), 0o600))

	inv, err := worker.TakeInventory(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"README", "falciparum"}, inv.Entries)
	require.Equal(t, int64(2), inv.Files)
	require.Equal(t, int64(9), inv.Bytes)

	inv, err = worker.TakeInventory(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, inv.Entries)
	require.Zero(t, inv.Files)
}

func TestInventoryWorker_Work(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdb"), []byte("123"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdb"), []byte("4567"), 0o600))

	m, reg := newMetrics(t)
	w := worker.NewInventoryWorker(dir, m)

	job := &river.Job[worker.InventoryJobArgs]{
		JobRow: &rivertype.JobRow{ID: 3, Kind: worker.InventoryJobArgs{}.Kind()},
	}
	require.NoError(t, w.Work(context.Background(), job))

	require.InDelta(t, 2, family(t, reg, "plasmodocking_storage_files").GetMetric()[0].GetGauge().GetValue(), 0.0001)
	require.InDelta(t, 7, family(t, reg, "plasmodocking_storage_size").GetMetric()[0].GetGauge().GetValue(), 0.0001)
}

func TestMetrics_Combinations(t *testing.T) {
	m, reg := newMetrics(t)
	m.Combinations(context.Background(), 3, 1)

	var success, failure float64
	for _, metric := range family(t, reg, "plasmodocking_docking_combinations").GetMetric() {
		for _, l := range metric.GetLabel() {
			if l.GetName() != "outcome" {
				continue
			}
			switch l.GetValue() {
			case "success":
				success = metric.GetCounter().GetValue()
			case "failure":
				failure = metric.GetCounter().GetValue()
			}
		}
	}
	require.InDelta(t, 3, success, 0.0001)
	require.InDelta(t, 1, failure, 0.0001)
}

func TestConfig(t *testing.T) {
	workers := worker.Workers(nil, nil, worker.Options{MoleculesDir: t.TempDir()})
	cfg := worker.Config(context.Background(), workers, worker.Options{
		ID:                "plasmodocking",
		Queue:             "docking",
		Concurrency:       4,
		InventoryInterval: time.Minute,
	})

	require.Equal(t, "plasmodocking", cfg.ID)
	require.Equal(t, 4, cfg.Queues["docking"].MaxWorkers)
	require.Equal(t, 4, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Len(t, cfg.PeriodicJobs, 1)

	cfg = worker.Config(context.Background(), workers, worker.Options{})
	require.Equal(t, 1, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Empty(t, cfg.PeriodicJobs)
}
