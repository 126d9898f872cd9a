package serving

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ProvisionArgs contains the arguments for an endpoint provisioning job
// submitted to River. The endpoint name is the unique key so each endpoint has
// at most one queued provisioning job at a time.
type ProvisionArgs struct {
	// EndpointName identifies the endpoint to provision. The worker reads the
	// endpoint's current config and revision at work time, so a job enqueued
	// for an older config simply provisions the latest one.
	EndpointName string `json:"endpoint_name" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the provisioning worker.
func (args ProvisionArgs) Kind() string { return "ProvisionEndpointJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Running and completed jobs are excluded from the uniqueness states on
// purpose: a config update that lands while a provisioning job is mid-flight
// must still be able to enqueue a follow-up job for the new revision.
func (args ProvisionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
