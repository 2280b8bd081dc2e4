package storage

import (
	"context"

	"plasmodocking/pkg/domain"
)

// MacromoleculeTypeFilter narrows ListMacromoleculeTypes.
type MacromoleculeTypeFilter struct {
	// Search matches the name (case-insensitive contains).
	Search string
	// Active filters on the active flag when set.
	Active *bool
	// OrderBy accepts name, created_at and updated_at.
	OrderBy []Order
	Page
}

// MacromoleculeTypeUpdates describes optional fields applied by UpdateMacromoleculeType.
type MacromoleculeTypeUpdates struct {
	Name        *string
	Description *string
	Active      *bool
}

// MacromoleculeFilter narrows ListMacromolecules.
type MacromoleculeFilter struct {
	// Search matches name, receptor file and original ligand.
	Search string
	// TypeID restricts to a single type when set.
	TypeID *domain.MacromoleculeTypeID
	// Redocking filters on the redocking flag when set.
	Redocking *bool
	// OrderBy accepts created_at, updated_at, name (or nome) and rec.
	OrderBy []Order
	Page
}

// MacromoleculeUpdates describes optional fields applied by UpdateMacromolecule.
// ClearType sets the type to NULL and takes precedence over TypeID.
type MacromoleculeUpdates struct {
	Name           *string
	Rec            *string
	TypeID         *domain.MacromoleculeTypeID
	ClearType      bool
	Redocking      *bool
	GridSize       *string
	GridCenter     *string
	OriginalLigand *string
	RedockingRMSD  *string
	OriginalEnergy *string
	FldPath        *string
}

// MoleculeStorage persists the macromolecule catalogue.
type MoleculeStorage interface {
	// CreateMacromoleculeType inserts a type; duplicate names are serrors.ErrConflict.
	CreateMacromoleculeType(ctx context.Context, t domain.MacromoleculeType) (*domain.MacromoleculeType, error)
	// MacromoleculeTypeByID returns the type or nil.
	MacromoleculeTypeByID(ctx context.Context, ID domain.MacromoleculeTypeID) (*domain.MacromoleculeType, error)
	// ListMacromoleculeTypes returns types matching the filter.
	ListMacromoleculeTypes(ctx context.Context, filter MacromoleculeTypeFilter) ([]domain.MacromoleculeType, error)
	// UpdateMacromoleculeType applies updates and returns the row, or nil when not found.
	UpdateMacromoleculeType(ctx context.Context,
		ID domain.MacromoleculeTypeID,
		updates MacromoleculeTypeUpdates) (*domain.MacromoleculeType, error)
	// DeleteMacromoleculeType removes a type. Types still referenced by
	// processes cannot be deleted and yield serrors.ErrConflict.
	DeleteMacromoleculeType(ctx context.Context, ID domain.MacromoleculeTypeID) (bool, error)

	// CreateMacromolecule inserts a macromolecule and returns the stored row.
	CreateMacromolecule(ctx context.Context, m domain.Macromolecule) (*domain.Macromolecule, error)
	// MacromoleculeByID returns the macromolecule joined with its type name, or nil.
	MacromoleculeByID(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error)
	// LockMacromolecule selects the row FOR UPDATE. It must be called inside a transaction.
	LockMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error)
	// ListMacromolecules returns macromolecules matching the filter.
	ListMacromolecules(ctx context.Context, filter MacromoleculeFilter) ([]domain.Macromolecule, error)
	// UpdateMacromolecule applies updates and returns the row, or nil when not found.
	UpdateMacromolecule(ctx context.Context,
		ID domain.MacromoleculeID,
		updates MacromoleculeUpdates) (*domain.Macromolecule, error)
	// DeleteMacromolecule removes a macromolecule and reports whether it existed.
	DeleteMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (bool, error)
}
