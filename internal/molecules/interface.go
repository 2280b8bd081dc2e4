package molecules

import (
	"context"
	"io"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"
)

// Upload is a file received from a multipart form.
type Upload struct {
	Name string
	Body io.Reader
}

// TypeInput describes a new macromolecule type.
type TypeInput struct {
	Name        string
	Description string
	Active      *bool
}

// TypePatch lists the mutable fields of a type. Nil fields are kept.
type TypePatch struct {
	Name        *string
	Description *string
	Active      *bool
}

// CreateInput is the upload of a new receptor with its reference ligand.
type CreateInput struct {
	Name   string
	TypeID domain.MacromoleculeTypeID
	// Redocking defaults to true.
	Redocking  *bool
	GridSize   string
	GridCenter string
	Receptor   Upload
	Ligand     Upload
}

// Patch lists the mutable fields of a macromolecule. Nil fields are kept.
type Patch struct {
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

// Molecules manages the receptor catalogue. Reads are open to every
// authenticated user, writes need staff access.
//
//go:generate mockgen -package mockmolecules -source=interface.go -destination=mock/mockmolecules.go *
type Molecules interface {
	CreateType(ctx context.Context, actor *domain.User, input TypeInput) (*domain.MacromoleculeType, error)
	ListTypes(ctx context.Context, filter storage.MacromoleculeTypeFilter) ([]domain.MacromoleculeType, error)
	GetType(ctx context.Context, ID domain.MacromoleculeTypeID) (*domain.MacromoleculeType, error)
	UpdateType(ctx context.Context,
		actor *domain.User,
		ID domain.MacromoleculeTypeID,
		patch TypePatch) (*domain.MacromoleculeType, error)
	DeleteType(ctx context.Context, actor *domain.User, ID domain.MacromoleculeTypeID) error

	// Create stores the uploaded files and enqueues the grid preparation.
	Create(ctx context.Context, actor *domain.User, input CreateInput) (*domain.Macromolecule, error)
	List(ctx context.Context, filter storage.MacromoleculeFilter) ([]domain.Macromolecule, error)
	Get(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error)
	Update(ctx context.Context, actor *domain.User, ID domain.MacromoleculeID, patch Patch) (*domain.Macromolecule, error)
	Delete(ctx context.Context, actor *domain.User, ID domain.MacromoleculeID) error
}
