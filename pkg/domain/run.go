package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunID uniquely identifies a tracking run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RunID uuid.UUID

// IsZero reports whether the ID is the zero UUID.
func (id RunID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical textual form of the ID.
func (id RunID) String() string { return uuid.UUID(id).String() }

// RunStatus represents the lifecycle state of a run.
type RunStatus string

const (
	// RunStatusRunning indicates the run is active and artifacts may still be logged to it.
	RunStatusRunning RunStatus = "RUNNING"
	// RunStatusFinished indicates the run completed successfully.
	RunStatusFinished RunStatus = "FINISHED"
	// RunStatusFailed indicates the run was closed with an error.
	RunStatusFailed RunStatus = "FAILED"
)

// Run is a tracking run: a session under which model artifacts are logged.
// Artifacts logged to a run are addressable as "runs:/<run_id>/<path>".
type Run struct {
	// ID is the unique identifier of the run.
	ID RunID `json:"id"`
	// UserID is the identifier of the user who created the run.
	UserID UserID `json:"userId"`

	// Name is an optional human-readable run name.
	Name string `json:"name,omitempty"`
	// Status is the current lifecycle state of the run.
	Status RunStatus `json:"status"`
	// ArtifactRoot is the filesystem directory under which this run's
	// artifacts are stored.
	ArtifactRoot string `json:"artifactRoot"`

	// CreatedAt is the time when the run was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the run was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
