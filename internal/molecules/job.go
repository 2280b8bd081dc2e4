package molecules

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PrepareMaxAttempts bounds the retries of a failed grid preparation.
const PrepareMaxAttempts = 4

// PrepareJobArgs asks the worker to prepare the receptor and grid maps of a
// macromolecule and to redock its original ligand.
type PrepareJobArgs struct {
	MacromoleculeID uuid.UUID `json:"macromolecule_id" river:"unique"`
}

// Kind returns the River job kind of the preparation worker.
func (args PrepareJobArgs) Kind() string { return "PrepareMacromoleculeJob" }

// InsertOpts keeps a single pending preparation per macromolecule.
func (args PrepareJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: PrepareMaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
