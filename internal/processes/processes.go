// Package processes manages docking requests: the uploaded SDF file, its
// working directory and the job that docks it.
package processes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plasmodocking/internal/config"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/filestore"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/slug"
	"plasmodocking/pkg/storage"
)

// Options configure where docking runs are stored.
type Options struct {
	// Root is the directory holding one sub-directory per user.
	Root string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Root: cfg.Files.ProcessesRoot()}
}

type processes struct {
	options Options
	storage storage.Storage
}

// Ensure processes implements Processes.
var _ Processes = (*processes)(nil)

// Dir returns the working directory of a process:
// <root>/<username-userID>/<name-processID>/, each element slugified.
func Dir(root string, user *domain.User, name string, ID domain.ProcessID) string {
	if name == "" {
		name = "processo"
	}

	return filepath.Join(root,
		slug.MakeOr(fmt.Sprintf("%s-%s", user.Username, user.ID), "user-"+user.ID.String()),
		slug.MakeOr(fmt.Sprintf("%s-%s", name, ID), "processo-"+ID.String()),
	)
}

func canModify(actor *domain.User, p *domain.Process) bool {
	return actor != nil && (actor.HasStaffAccess() || actor.ID == p.UserID)
}

func (s *processes) owner(ctx context.Context, actor *domain.User, userID *domain.UserID) (*domain.User, error) {
	if actor == nil {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if userID == nil || *userID == actor.ID {
		return actor, nil
	}
	if !actor.HasStaffAccess() {
		return nil, serrors.With(serrors.ErrForbidden, "only staff can create processes for other users")
	}

	user, err := s.storage.UserByID(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid user %q: object does not exist", *userID)
	}

	return user, nil
}

// Create inserts the process, stores the SDF file in its directory and
// enqueues the docking job, all inside one transaction.
func (s *processes) Create(ctx context.Context, actor *domain.User, input CreateInput) (*domain.Process, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "nome is required")
	}
	if input.SDF == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "sdfFile is required")
	}
	if _, err := filestore.BaseName(input.SDFName); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid sdfFile")
	}

	user, err := s.owner(ctx, actor, input.UserID)
	if err != nil {
		return nil, err
	}

	t, err := s.storage.MacromoleculeTypeByID(ctx, input.TypeID)
	if err != nil {
		return nil, fmt.Errorf("could not get macromolecule type: %w", err)
	}
	if t == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid type %q: object does not exist", input.TypeID)
	}

	var (
		process *domain.Process
		dir     string
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err := tx.CreateProcess(ctx, domain.Process{
			Name:   name,
			TypeID: t.ID,
			UserID: user.ID,
			Status: domain.ProcessStatusQueued,
		})
		if err != nil {
			return fmt.Errorf("could not store process: %w", err)
		}

		dir = Dir(s.options.Root, user, name, created.ID)
		for _, d := range []string{s.options.Root, filepath.Dir(dir), dir} {
			if err := filestore.EnsureDir(ctx, d); err != nil {
				return err
			}
		}

		sdfPath, err := filestore.Save(ctx, dir, input.SDFName, input.SDF)
		if err != nil {
			return fmt.Errorf("could not store SDF file: %w", err)
		}

		process, err = tx.UpdateProcess(ctx, created.ID, storage.ProcessUpdates{SDFPath: &sdfPath})
		if err != nil {
			return fmt.Errorf("could not update process: %w", err)
		}

		if _, err := tx.AddJob(ctx, JobArgs{ProcessID: uuid.UUID(created.ID)}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		if dir != "" {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				logger.Warn(ctx, "could not remove process directory", zap.String("dir", dir), zap.Error(rmErr))
			}
		}

		return nil, fmt.Errorf("could not create process: %w", err)
	}

	logger.Info(ctx, "process queued",
		zap.String("processID", process.ID.String()),
		zap.String("userID", user.ID.String()),
	)

	return process, nil
}

func (s *processes) List(ctx context.Context, filter storage.ProcessFilter) ([]domain.Process, error) {
	list, err := s.storage.ListProcesses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list processes: %w", err)
	}

	return list, nil
}

func (s *processes) Get(ctx context.Context, ID domain.ProcessID) (*domain.Process, error) {
	p, err := s.storage.ProcessByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get process: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "process not found")
	}

	return p, nil
}

func (s *processes) modifiable(ctx context.Context, actor *domain.User, ID domain.ProcessID) (*domain.Process, error) {
	p, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, p) {
		return nil, serrors.With(serrors.ErrForbidden, "You do not have permission to perform this action.")
	}

	return p, nil
}

func (s *processes) Update(ctx context.Context,
	actor *domain.User,
	ID domain.ProcessID,
	patch Patch,
) (*domain.Process, error) {
	if _, err := s.modifiable(ctx, actor, ID); err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "nome cannot be blank")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "%q is not a valid choice", *patch.Status)
	}
	if patch.TypeID != nil {
		t, err := s.storage.MacromoleculeTypeByID(ctx, *patch.TypeID)
		if err != nil {
			return nil, fmt.Errorf("could not get macromolecule type: %w", err)
		}
		if t == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid type %q: object does not exist", *patch.TypeID)
		}
	}
	if patch.UserID != nil {
		u, err := s.storage.UserByID(ctx, *patch.UserID)
		if err != nil {
			return nil, fmt.Errorf("could not get user: %w", err)
		}
		if u == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid user %q: object does not exist", *patch.UserID)
		}
	}

	p, err := s.storage.UpdateProcess(ctx, ID, storage.ProcessUpdates{
		Name:    patch.Name,
		TypeID:  patch.TypeID,
		UserID:  patch.UserID,
		Status:  patch.Status,
		Result:  patch.Result,
		SDFPath: patch.SDFPath,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update process: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "process not found")
	}

	return p, nil
}

func (s *processes) Delete(ctx context.Context, actor *domain.User, ID domain.ProcessID) error {
	if _, err := s.modifiable(ctx, actor, ID); err != nil {
		return err
	}

	deleted, err := s.storage.DeleteProcess(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete process: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "process not found")
	}

	return nil
}

func (s *processes) Download(ctx context.Context, actor *domain.User, ID domain.ProcessID) (*Archive, error) {
	p, err := s.modifiable(ctx, actor, ID)
	if err != nil {
		return nil, err
	}
	if p.ZIPPath == "" {
		return nil, serrors.With(serrors.ErrNotFound, "result archive not available yet")
	}

	info, err := os.Stat(p.ZIPPath)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, serrors.With(serrors.ErrNotFound, "result archive not found")
	}
	if err != nil {
		return nil, fmt.Errorf("could not stat result archive: %w", err)
	}

	return &Archive{Name: filepath.Base(p.ZIPPath), Path: p.ZIPPath}, nil
}

// New creates a Processes service backed by storage.
func New(strg storage.Storage, options Options) Processes {
	return &processes{
		options: options,
		storage: strg,
	}
}
