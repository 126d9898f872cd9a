// Package serving manages inference endpoints: their lifecycle, the
// background provisioning that makes them READY, and routing invocation
// traffic to the model versions they serve.
package serving

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ocrflow/internal/config"
	"ocrflow/internal/model"
	"ocrflow/internal/registry"
	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
	"ocrflow/pkg/storage"
)

// Options contains the configuration for the serving service.
type Options struct {
	// JobMaxAttempts is the maximum number of provisioning attempts per job.
	JobMaxAttempts int
	// CacheSize bounds the number of predictors kept in memory.
	CacheSize int
	// OCRDataPath overrides the tesseract data directory. Empty means the
	// engine default.
	OCRDataPath string
}

// NewOptions builds serving Options from the given main config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		JobMaxAttempts: cfg.Serving.MaxAttempts,
		CacheSize:      cfg.Serving.CacheSize,
		OCRDataPath:    cfg.OCR.DataPath,
	}
}

// serving is the concrete implementation of the Serving interface. It
// coordinates endpoint persistence, provisioning jobs and the in-memory
// predictor cache.
type serving struct {
	options  Options
	storage  storage.Storage
	registry registry.Registry
	cache    *predictorCache
	router   router
}

// New creates a new serving service using the given storage and registry.
func New(options Options, st storage.Storage, reg registry.Registry) Serving {
	s := &serving{
		options:  options,
		storage:  st,
		registry: reg,
		router:   newRouter(nil),
	}
	s.cache = newPredictorCache(options.CacheSize, s.loadVersion)

	return s
}

// loadVersion materializes a predictor from the registry copy of a READY
// model version. Used as the cache load function.
func (s *serving) loadVersion(ctx context.Context, name domain.ModelName, version int) (*model.Predictor, error) {
	dir, err := s.registry.ResolveURI(ctx, model.ModelsURI(name, version))
	if err != nil {
		return nil, fmt.Errorf("could not resolve model version: %w", err)
	}

	predictor, err := model.Load(dir, model.EngineOptions{DataPath: s.options.OCRDataPath})
	if err != nil {
		return nil, fmt.Errorf("could not load model: %w", err)
	}

	return predictor, nil
}

func (s *serving) provisionArgs(name string) ProvisionArgs {
	return ProvisionArgs{
		EndpointName: name,
		maxAttempts:  s.options.JobMaxAttempts,
	}
}

// CreateEndpoint stores a new endpoint in PENDING state and enqueues a
// provisioning job for it. Whether the served versions actually exist is
// checked by the provisioner, not here.
func (s *serving) CreateEndpoint(ctx context.Context,
	userID domain.UserID,
	name string,
	endpointConfig domain.EndpointConfig) (*domain.Endpoint, error) {
	if err := domain.ValidateNamePart(name); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "invalid endpoint name")
	}
	if err := endpointConfig.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "invalid endpoint config")
	}

	var created *domain.Endpoint
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreEndpoint(ctx, domain.Endpoint{
			Name:   name,
			UserID: userID,
			State:  domain.EndpointStatePending,
			Config: endpointConfig,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "endpoint %q already exists", name)
			}

			return fmt.Errorf("could not store endpoint: %w", err)
		}
		created = res

		if _, err := tx.AddJob(ctx, s.provisionArgs(name), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create endpoint: %w", err)
	}

	return created, nil
}

// GetEndpoint returns the endpoint with the given name.
func (s *serving) GetEndpoint(ctx context.Context, name string) (*domain.Endpoint, error) {
	endpoint, err := s.storage.EndpointByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get endpoint: %w", err)
	}
	if endpoint == nil {
		return nil, serrors.With(serrors.ErrNotFound, "endpoint not found")
	}

	return endpoint, nil
}

// ListEndpoints returns a page of endpoints, newest first, optionally
// filtered by state. The returned cursor fetches the next page when non-empty.
func (s *serving) ListEndpoints(ctx context.Context,
	state domain.EndpointState,
	cursor string,
	limit uint) ([]domain.Endpoint, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrInvalid, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.Endpoints(ctx, state, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get endpoints: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Endpoints, next, nil
}

// UpdateEndpointConfig replaces the endpoint's serving config, moves it to
// UPDATING and enqueues a provisioning job for the new revision. Only READY
// and FAILED endpoints accept config updates; an endpoint that is already
// being provisioned has to settle first.
func (s *serving) UpdateEndpointConfig(ctx context.Context,
	name string,
	endpointConfig domain.EndpointConfig) (*domain.Endpoint, error) {
	if err := endpointConfig.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalid, err, "invalid endpoint config")
	}

	var updated *domain.Endpoint
	var previous domain.EndpointConfig
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.EndpointByName(ctx, name)
		if err != nil {
			return fmt.Errorf("could not get endpoint: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "endpoint not found")
		}
		switch current.State {
		case domain.EndpointStateReady, domain.EndpointStateFailed:
		default:
			return serrors.With(serrors.ErrConflict,
				"endpoint is %s, config can only be updated once provisioning settles", current.State)
		}
		previous = current.Config

		lastError := ""
		updated, err = tx.UpdateEndpointByID(ctx, current.ID, storage.EndpointUpdates{
			State:      domain.EndpointStateUpdating,
			Config:     &endpointConfig,
			LastError:  &lastError,
			IfRevision: current.ConfigRevision,
		})
		if err != nil {
			return fmt.Errorf("could not update endpoint: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "endpoint config changed concurrently")
		}

		if _, err := tx.AddJob(ctx, s.provisionArgs(name), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update endpoint config: %w", err)
	}

	s.invalidateConfig(previous)

	return updated, nil
}

// DeleteEndpoint soft-deletes the endpoint and drops its served versions from
// the predictor cache. A provisioning job that is still queued for the name
// cancels itself once it sees the endpoint is gone.
func (s *serving) DeleteEndpoint(ctx context.Context, name string) error {
	deleted, err := s.storage.DeleteEndpoint(ctx, name)
	if err != nil {
		return fmt.Errorf("could not delete endpoint: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "endpoint not found")
	}

	s.invalidateConfig(deleted.Config)

	return nil
}

// Invoke runs one inference request against the endpoint. The endpoint must
// be READY; traffic is split across served entities per the endpoint's routes.
func (s *serving) Invoke(ctx context.Context, name string, input model.Table) (*model.Prediction, error) {
	endpoint, err := s.GetEndpoint(ctx, name)
	if err != nil {
		return nil, err
	}
	if endpoint.State != domain.EndpointStateReady {
		return nil, serrors.With(serrors.ErrUnavailable, "endpoint is %s, not READY", endpoint.State)
	}

	entityName, err := s.router.pick(endpoint.Config.EffectiveRoutes())
	if err != nil {
		return nil, err
	}
	entity := endpoint.Config.ServedEntity(entityName)
	if entity == nil {
		return nil, serrors.With(serrors.ErrInternal, "route references unknown served entity %q", entityName)
	}

	predictor, err := s.cache.GetOrLoad(ctx, entity.EntityName, entity.EntityVersion)
	if err != nil {
		return nil, fmt.Errorf("could not load served entity %q: %w", entityName, err)
	}

	prediction, err := predictor.Predict(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("could not predict: %w", err)
	}

	return prediction, nil
}

// Provision loads every served version of the endpoint into the predictor
// cache and probes its OCR engine, so the first invocation after the endpoint
// turns READY does not pay the model load cost.
func (s *serving) Provision(ctx context.Context, endpoint *domain.Endpoint) error {
	for _, entity := range endpoint.Config.ServedEntities {
		predictor, err := s.cache.GetOrLoad(ctx, entity.EntityName, entity.EntityVersion)
		if err != nil {
			return fmt.Errorf("could not load served entity %q: %w", entity.Name, err)
		}

		if _, err := predictor.Engine().Probe(ctx); err != nil {
			return serrors.Wrap(serrors.ErrUpstream, err, "ocr engine probe failed for %q", entity.Name)
		}
	}

	return nil
}

// MarkProvisioned records the outcome of a provisioning attempt: READY on
// success, FAILED with the error text otherwise. The update is guarded by the
// config revision the attempt provisioned; nil is returned when a newer
// config superseded the attempt and nothing was changed.
func (s *serving) MarkProvisioned(ctx context.Context,
	id domain.EndpointID,
	revision int,
	provisionErr error) (*domain.Endpoint, error) {
	state := domain.EndpointStateReady
	lastError := ""
	if provisionErr != nil {
		state = domain.EndpointStateFailed
		lastError = provisionErr.Error()
	}

	updated, err := s.storage.UpdateEndpointByID(ctx, id, storage.EndpointUpdates{
		State:      state,
		LastError:  &lastError,
		IfRevision: revision,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update endpoint state: %w", err)
	}

	return updated, nil
}

// invalidateConfig drops every version the config serves from the cache.
func (s *serving) invalidateConfig(endpointConfig domain.EndpointConfig) {
	for _, entity := range endpointConfig.ServedEntities {
		s.cache.Invalidate(entity.EntityName, entity.EntityVersion)
	}
}
