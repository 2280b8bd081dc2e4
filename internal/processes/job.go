package processes

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks the worker to dock the ligands of a process.
// A docking run is never retried: failures are recorded on the process.
type JobArgs struct {
	ProcessID uuid.UUID `json:"process_id" river:"unique"`
}

// Kind returns the River job kind of the docking worker.
func (args JobArgs) Kind() string { return "DockingProcessJob" }

// InsertOpts keeps a single pending run per process.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
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
