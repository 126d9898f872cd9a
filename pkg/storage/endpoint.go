package storage

import (
	"context"
	"time"

	"ocrflow/pkg/domain"
)

// EndpointUpdates describes a set of optional fields that can be applied to an
// existing endpoint during an update. Only non-zero fields are updated.
type EndpointUpdates struct {
	// State is the new provisioning state to set for the endpoint.
	State domain.EndpointState
	// Config, when provided, replaces the serving configuration and increments
	// the endpoint's config revision.
	Config *domain.EndpointConfig
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// IfRevision, when > 0, makes the update conditional: rows whose current
	// config revision differs are left untouched and nil is returned. This lets
	// provisioning jobs detect that a newer config superseded them.
	IfRevision int
}

// EndpointPage groups a page of endpoints together with an optional NextCursor
// used for pagination.
type EndpointPage struct {
	// Endpoints contains the current page of endpoint records.
	Endpoints []domain.Endpoint
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// EndpointStorage defines CRUD and query operations for serving endpoints.
// Endpoints are soft-deleted; lookups exclude deleted rows.
type EndpointStorage interface {
	// StoreEndpoint inserts a new endpoint and returns the stored row as it
	// exists in the database (including generated fields). Returns ErrDuplicate
	// when a live endpoint with the same name already exists.
	StoreEndpoint(ctx context.Context, endpoint domain.Endpoint) (*domain.Endpoint, error)
	// EndpointByName fetches an endpoint by its unique name, excluding
	// soft-deleted records. Returns nil when not found.
	EndpointByName(ctx context.Context, name string) (*domain.Endpoint, error)
	// Endpoints returns a page of endpoints created before the optional cursor
	// time, limited by the given limit, newest first. If state is non-empty,
	// results are filtered to endpoints in that state.
	Endpoints(ctx context.Context, state domain.EndpointState, cursor time.Time, limit uint) (EndpointPage, error)
	// UpdateEndpointByID updates a single endpoint identified by its ID and
	// returns the updated row. The update ignores soft-deleted rows and sets
	// updated_at automatically. Only provided fields are changed. Returns nil
	// when the endpoint was not found or an IfRevision guard did not match.
	UpdateEndpointByID(ctx context.Context, ID domain.EndpointID, updates EndpointUpdates) (*domain.Endpoint, error)
	// DeleteEndpoint performs a soft delete for the given endpoint name and
	// returns the deleted endpoint, or nil if it was not found.
	DeleteEndpoint(ctx context.Context, name string) (*domain.Endpoint, error)
}
