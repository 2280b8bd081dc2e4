package storage

import (
	"context"
	"encoding/json"

	"plasmodocking/pkg/domain"
)

// ProcessFilter narrows ListProcesses.
type ProcessFilter struct {
	// Search matches name, SDF path, owner username and type name.
	Search string
	TypeID *domain.MacromoleculeTypeID
	UserID *domain.UserID
	Status domain.ProcessStatus
	// Redocking keeps processes whose type has at least one macromolecule
	// with the given redocking flag.
	Redocking *bool
	// OrderBy accepts created_at, updated_at, name and status.
	OrderBy []Order
	Page
}

// ProcessUpdates describes optional fields applied by UpdateProcess. Only
// non-nil fields are written; updated_at is always refreshed.
type ProcessUpdates struct {
	Name    *string
	TypeID  *domain.MacromoleculeTypeID
	UserID  *domain.UserID
	Status  *domain.ProcessStatus
	Result  *json.RawMessage
	SDFPath *string
	ZIPPath *string
}

// ProcessStorage persists docking processes.
type ProcessStorage interface {
	// CreateProcess inserts a process and returns the stored row.
	CreateProcess(ctx context.Context, p domain.Process) (*domain.Process, error)
	// ProcessByID returns the process joined with owner and type, or nil.
	ProcessByID(ctx context.Context, ID domain.ProcessID) (*domain.Process, error)
	// ListProcesses returns processes matching the filter joined with owner and type.
	ListProcesses(ctx context.Context, filter ProcessFilter) ([]domain.Process, error)
	// UpdateProcess applies updates and returns the joined row, or nil when not found.
	UpdateProcess(ctx context.Context, ID domain.ProcessID, updates ProcessUpdates) (*domain.Process, error)
	// DeleteProcess removes a process and reports whether it existed.
	DeleteProcess(ctx context.Context, ID domain.ProcessID) (bool, error)
}
