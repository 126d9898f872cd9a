package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the underlying queue backend. The
// args parameter carries the job payload and opts can override insertion
// behavior (queue name, delay, priority). Implementations should return a
// non-nil error if the job could not be queued and honor the context for
// cancellation and timeouts.
//
// Implementations live under pkg/storage/<backend>/ and are reached through
// the higher-level Storage or TxStorage interfaces, which keeps services
// decoupled from the concrete job system.
//
// Example:
//
//	inserted, err := tx.AddJob(ctx, ProvisionArgs{EndpointName: "receipts"}, nil)
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. When the backend
	// supports it, insertion is atomic with the surrounding transaction. The
	// returned bool reports whether a job was actually inserted; it is false
	// when a unique policy skipped the insert as a duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
