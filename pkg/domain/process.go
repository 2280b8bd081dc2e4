package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProcessID identifies a docking process.
type ProcessID uuid.UUID

// String returns the canonical UUID representation.
func (id ProcessID) String() string { return uuid.UUID(id).String() }

// ProcessStatus is the lifecycle state of a docking process.
type ProcessStatus string

const (
	// ProcessStatusQueued means the process waits for a worker.
	ProcessStatusQueued ProcessStatus = "EM_FILA"
	// ProcessStatusRunning means a worker is docking the ligands.
	ProcessStatusRunning ProcessStatus = "PROCESSANDO"
	// ProcessStatusDone means at least one receptor/ligand combination succeeded.
	ProcessStatusDone ProcessStatus = "CONCLUIDO"
	// ProcessStatusError means the process failed as a whole.
	ProcessStatusError ProcessStatus = "ERROR"
)

// Valid reports whether s is a known status.
func (s ProcessStatus) Valid() bool {
	switch s {
	case ProcessStatusQueued, ProcessStatusRunning, ProcessStatusDone, ProcessStatusError:
		return true
	default:
		return false
	}
}

// Process is a user request to dock every ligand of an SDF file against all
// receptors of a macromolecule type.
type Process struct {
	ID     ProcessID
	Name   string
	TypeID MacromoleculeTypeID
	UserID UserID
	Status ProcessStatus

	// Result is the final JSON report, nil until the process finishes.
	Result  json.RawMessage
	SDFPath string
	ZIPPath string

	// TypeName, Username, UserEmail, UserFirstName and UserLastName are
	// filled by reads that join the owner and the type.
	TypeName      string
	Username      string
	UserEmail     string
	UserFirstName string
	UserLastName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
