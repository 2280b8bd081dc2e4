package worker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"plasmodocking/pkg/logger"
)

// InventoryJobArgs triggers a storage inventory of the molecules directory.
type InventoryJobArgs struct{}

// Kind returns the job's kind which is used for routing the job to the right worker.
func (InventoryJobArgs) Kind() string { return "StorageInventoryJob" }

// InsertOpts returns the default insert options for the job.
func (InventoryJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}

// Inventory summarises the content of a directory tree.
type Inventory struct {
	// Entries are the sorted names of the top level entries.
	Entries []string
	Files   int64
	Bytes   int64
}

// TakeInventory walks dir. A missing dir yields an empty inventory.
func TakeInventory(dir string) (Inventory, error) {
	var inv Inventory

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return inv, nil
	}
	if err != nil {
		return inv, fmt.Errorf("could not list %s: %w", dir, err)
	}
	for _, e := range entries {
		inv.Entries = append(inv.Entries, e.Name())
	}
	sort.Strings(inv.Entries)

	err = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		inv.Files++
		inv.Bytes += info.Size()

		return nil
	})
	if err != nil {
		return inv, fmt.Errorf("could not walk %s: %w", dir, err)
	}

	return inv, nil
}

// InventoryWorker periodically reports what is stored under the molecules
// directory.
type InventoryWorker struct {
	river.WorkerDefaults[InventoryJobArgs]

	dir     string
	metrics *Metrics
}

// NewInventoryWorker creates an InventoryWorker for dir; metrics may be nil.
func NewInventoryWorker(dir string, metrics *Metrics) *InventoryWorker {
	return &InventoryWorker{dir: dir, metrics: metrics}
}

func (w *InventoryWorker) Work(ctx context.Context, job *river.Job[InventoryJobArgs]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("dir", w.dir))
	start := time.Now()
	defer func() { w.metrics.jobDone(ctx, job.Kind, start, err) }()

	inv, err := TakeInventory(w.dir)
	if err != nil {
		logger.Error(ctx, "error in storage inventory", zap.Error(err))

		return err
	}

	w.metrics.inventory(ctx, inv)
	logger.Info(ctx, "storage inventory",
		zap.Strings("entries", inv.Entries),
		zap.Int64("files", inv.Files),
		zap.Int64("bytes", inv.Bytes))

	return nil
}
