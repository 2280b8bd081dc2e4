package domain

import (
	"time"

	"github.com/google/uuid"
)

// MacromoleculeTypeID identifies a macromolecule type (an organism or target family).
type MacromoleculeTypeID uuid.UUID

// String returns the canonical UUID representation.
func (id MacromoleculeTypeID) String() string { return uuid.UUID(id).String() }

// MacromoleculeType groups receptors that are docked together by a process.
type MacromoleculeType struct {
	ID          MacromoleculeTypeID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MacromoleculeID identifies a prepared receptor.
type MacromoleculeID uuid.UUID

// String returns the canonical UUID representation.
func (id MacromoleculeID) String() string { return uuid.UUID(id).String() }

// Macromolecule is a receptor with its docking grid and, for redocking
// receptors, the reference ligand used to validate the grid.
type Macromolecule struct {
	ID   MacromoleculeID
	Name string
	// Rec is the receptor file name as uploaded.
	Rec string
	// TypeID is nil when the type was deleted.
	TypeID *MacromoleculeTypeID
	// TypeName is filled by reads that join the type.
	TypeName string

	Redocking  bool
	GridSize   string
	GridCenter string

	OriginalLigand string
	RedockingRMSD  string
	OriginalEnergy string

	// FldPath is the receptor directory until the grid maps are generated,
	// then the path of the generated *.maps.fld file.
	FldPath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
