package exporter

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an export job submitted to River.
type JobArgs struct {
	// ExportID is the export row the job renders. It is unique so that an
	// export is never rendered by two jobs at once.
	ExportID string `json:"exportId" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the export worker.
func (args JobArgs) Kind() string { return "RenderExportJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
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
