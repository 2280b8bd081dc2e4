package processes

import (
	"context"
	"encoding/json"
	"io"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"
)

// CreateInput is a new docking request.
type CreateInput struct {
	Name   string
	TypeID domain.MacromoleculeTypeID
	// UserID assigns the process to another user; staff only. Nil means the caller.
	UserID  *domain.UserID
	SDFName string
	SDF     io.Reader
}

// Patch lists the mutable fields of a process. Nil fields are kept.
type Patch struct {
	Name    *string
	TypeID  *domain.MacromoleculeTypeID
	UserID  *domain.UserID
	Status  *domain.ProcessStatus
	Result  *json.RawMessage
	SDFPath *string
}

// Archive locates the result ZIP of a finished process.
type Archive struct {
	Name string
	Path string
}

// Processes manages docking requests.
//
//go:generate mockgen -package mockprocesses -source=interface.go -destination=mock/mockprocesses.go *
type Processes interface {
	// Create stores the SDF file and enqueues the docking run.
	Create(ctx context.Context, actor *domain.User, input CreateInput) (*domain.Process, error)
	List(ctx context.Context, filter storage.ProcessFilter) ([]domain.Process, error)
	Get(ctx context.Context, ID domain.ProcessID) (*domain.Process, error)
	// Update and Delete are limited to the owner and staff.
	Update(ctx context.Context, actor *domain.User, ID domain.ProcessID, patch Patch) (*domain.Process, error)
	Delete(ctx context.Context, actor *domain.User, ID domain.ProcessID) error
	// Download returns the result archive; limited to the owner and staff.
	Download(ctx context.Context, actor *domain.User, ID domain.ProcessID) (*Archive, error)
}
