package docking

import (
	"context"

	"plasmodocking/pkg/domain"
)

// Engine drives the external docking toolchain.
//
//go:generate mockgen -package mockdocking -source=interface.go -destination=mock/mockdocking.go *
type Engine interface {
	// RunProcess docks every ligand of a process against the receptors of its
	// type and stores the reports. Pipeline failures are recorded on the
	// process; the returned error is reserved for infrastructure problems.
	RunProcess(ctx context.Context, ID domain.ProcessID) (*RunSummary, error)
	// PrepareMacromolecule builds the receptor grid maps and redocks the
	// original ligand. Invalid input is reported with serrors.ErrBadRequest.
	PrepareMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (*PrepareSummary, error)
}

// Recorder observes docking outcomes.
type Recorder interface {
	Combinations(ctx context.Context, succeeded, failed int)
}
