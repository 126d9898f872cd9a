package serving

import (
	"context"

	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
)

//go:generate mockgen -package mockserving -source=interface.go -destination=mock/mockserving.go *
type Serving interface {
	CreateEndpoint(ctx context.Context,
		userID domain.UserID,
		name string,
		config domain.EndpointConfig) (*domain.Endpoint, error)
	GetEndpoint(ctx context.Context, name string) (*domain.Endpoint, error)
	ListEndpoints(ctx context.Context,
		state domain.EndpointState,
		cursor string,
		limit uint) ([]domain.Endpoint, string, error)
	UpdateEndpointConfig(ctx context.Context, name string, config domain.EndpointConfig) (*domain.Endpoint, error)
	DeleteEndpoint(ctx context.Context, name string) error

	// Invoke routes one inference request through the endpoint's traffic
	// config and runs it on the picked served entity.
	Invoke(ctx context.Context, name string, input model.Table) (*model.Prediction, error)

	// Provision warms the model cache with every served version of the
	// endpoint and probes the OCR engine. Used by the provisioning worker.
	Provision(ctx context.Context, endpoint *domain.Endpoint) error
	// MarkProvisioned records the outcome of a provisioning attempt, guarded
	// by the config revision the attempt was based on. It returns nil when the
	// endpoint config has moved on and the outcome is stale.
	MarkProvisioned(ctx context.Context,
		id domain.EndpointID,
		revision int,
		provisionErr error) (*domain.Endpoint, error)
}
