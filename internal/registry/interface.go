package registry

import (
	"context"

	"ocrflow/pkg/domain"
)

// ListModelsParams filter and paginate model listings.
type ListModelsParams struct {
	// Catalog restricts the listing to one catalog when set.
	Catalog string
	// Schema restricts the listing to one schema when set.
	Schema string
	// Cursor is an RFC3339 timestamp returned by a previous listing, or empty
	// for the first page.
	Cursor string
	// Limit caps the page size.
	Limit uint
}

//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	CreateModel(ctx context.Context, name domain.ModelName, description string) (*domain.Model, error)
	GetModel(ctx context.Context, name domain.ModelName) (*domain.Model, error)
	ListModels(ctx context.Context, params ListModelsParams) ([]domain.Model, string, error)
	CreateVersion(ctx context.Context,
		name domain.ModelName,
		sourceURI string,
		description string) (*domain.ModelVersion, error)
	GetVersion(ctx context.Context, name domain.ModelName, version int) (*domain.ModelVersion, error)
	ListVersions(ctx context.Context, name domain.ModelName) ([]domain.ModelVersion, error)
	ResolveURI(ctx context.Context, uri string) (string, error)
}
