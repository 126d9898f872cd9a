package storage

import (
	"context"
	"time"

	"ocrflow/pkg/domain"

	"github.com/google/uuid"
)

// ModelFilter narrows down the set of registered models returned by Models.
// Zero-valued fields are ignored.
type ModelFilter struct {
	// Catalog, when non-empty, restricts results to models in the given catalog.
	Catalog string
	// Schema, when non-empty, restricts results to models in the given schema.
	// Only meaningful together with Catalog.
	Schema string
	// Cursor, when non-zero, restricts results to models created before it.
	Cursor time.Time
	// Limit caps the number of returned models.
	Limit uint
}

// ModelPage groups a page of registered models together with an optional
// NextCursor used for pagination.
type ModelPage struct {
	// Models contains the current page of model records.
	Models []domain.Model
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ModelStorage defines persistence operations for registered models.
type ModelStorage interface {
	// StoreModel inserts a new registered model and returns the stored row as it
	// exists in the database (including generated fields). Returns ErrDuplicate
	// when a model with the same three-part name already exists.
	StoreModel(ctx context.Context, model domain.Model) (*domain.Model, error)
	// ModelByName fetches a registered model by its full three-part name.
	// Returns nil when not found.
	ModelByName(ctx context.Context, name domain.ModelName) (*domain.Model, error)
	// Models returns a page of registered models matching the filter, newest
	// first.
	Models(ctx context.Context, filter ModelFilter) (ModelPage, error)
}

// VersionUpdates describes a set of optional fields that can be applied to an
// existing model version during an update. Only non-zero fields are updated.
type VersionUpdates struct {
	// Status is the new lifecycle status to set for the version.
	Status domain.VersionStatus
	// ArtifactPath, when provided, replaces the registry-local artifact directory.
	ArtifactPath *string
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
}

// VersionStorage defines persistence operations for model versions. Version
// numbers are assigned by the storage layer, so concurrent registrations
// against the same model never collide.
type VersionStorage interface {
	// StoreVersion inserts a new version for version.ModelID and returns the
	// stored row. The Version field of the input is ignored; the next free
	// number for the model is assigned atomically.
	StoreVersion(ctx context.Context, version domain.ModelVersion) (*domain.ModelVersion, error)
	// UpdateVersionByID updates a single version identified by its row ID and
	// returns the updated row. updated_at is set automatically. Returns nil
	// when the version does not exist.
	UpdateVersionByID(ctx context.Context, ID uuid.UUID, updates VersionUpdates) (*domain.ModelVersion, error)
	// VersionByNumber fetches one version of a model by its per-model number.
	// Returns nil when not found.
	VersionByNumber(ctx context.Context, modelID domain.ModelID, number int) (*domain.ModelVersion, error)
	// ModelVersions returns all versions of a model, newest number first.
	ModelVersions(ctx context.Context, modelID domain.ModelID) ([]domain.ModelVersion, error)
}
