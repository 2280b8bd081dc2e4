// Package docking runs the docking toolchain: OpenBabel to split ligands,
// MGLTools and AutoGrid4 to prepare receptors, and AutoDock-GPU to dock.
package docking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"plasmodocking/internal/config"
	"plasmodocking/pkg/filestore"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/storage"
)

// ErrBusy is returned when another run holds the lock of a work directory.
var ErrBusy = errors.New("work directory is locked by another run")

// LockFile is created in every work directory while a run holds it.
const LockFile = ".plasmodocking.lock"

// Options configure the engine.
type Options struct {
	Tools config.Tools
	// Recorder is notified of docking outcomes; optional.
	Recorder Recorder
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

type engine struct {
	options Options
	storage storage.Storage
	exec    Executor
}

// Ensure engine implements Engine.
var _ Engine = (*engine)(nil)

// New creates an Engine that runs tools through exec.
func New(strg storage.Storage, exec Executor, options Options) Engine {
	if exec == nil {
		exec = CommandExecutor()
	}

	return &engine{
		options: options,
		storage: strg,
		exec:    exec,
	}
}

func (e *engine) now() time.Time {
	if e.options.Now != nil {
		return e.options.Now()
	}

	return time.Now()
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// lockDir takes an exclusive, non-blocking lock on dir.
func lockDir(ctx context.Context, dir string) (func(), error) {
	l := flock.New(filepath.Join(dir, LockFile))
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrBusy)
	}

	return func() {
		if err := l.Unlock(); err != nil {
			logger.Warn(ctx, "could not release lock", zap.String("dir", dir), zap.Error(err))
		}
	}, nil
}

// processDirs are the sub-directories of a process work directory.
type processDirs struct {
	base     string
	ligands  string
	dlgs     string
	gbest    string
	logs     string
	jsonPath string
	csvPath  string
	zipPath  string
}

func prepareProcessDirs(ctx context.Context, base string) (processDirs, error) {
	d := processDirs{
		base:     base,
		ligands:  filepath.Join(base, "ligantes_pdbqt"),
		dlgs:     filepath.Join(base, "arquivos_dlgs"),
		gbest:    filepath.Join(base, "gbest_pdb"),
		logs:     filepath.Join(base, "logs"),
		jsonPath: filepath.Join(base, "resultado.json"),
		csvPath:  filepath.Join(base, "resultado.csv"),
		zipPath:  filepath.Join(base, filepath.Base(base)+".zip"),
	}

	for _, dir := range []string{d.base, d.ligands, d.dlgs, d.gbest, d.logs} {
		if err := filestore.EnsureDir(ctx, dir); err != nil {
			return d, err
		}
	}

	return d, nil
}
