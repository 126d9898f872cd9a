package storage

import (
	"context"

	"ocrflow/pkg/domain"
)

// RunStorage defines persistence operations for tracking runs.
type RunStorage interface {
	// StoreRun inserts a new run and returns the stored row as it exists in the
	// database (including generated fields).
	StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error)
	// RunByID fetches a run by its ID. Returns nil when not found.
	RunByID(ctx context.Context, ID domain.RunID) (*domain.Run, error)
	// UpdateRunStatus transitions a run to the given status and returns the
	// updated row. updated_at is set automatically. Returns nil when the run
	// does not exist.
	UpdateRunStatus(ctx context.Context, ID domain.RunID, status domain.RunStatus) (*domain.Run, error)
}
