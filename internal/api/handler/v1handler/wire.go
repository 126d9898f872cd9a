package v1handler

import (
	"time"

	"github.com/google/uuid"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/serrors"
)

// Wire types of the v1 API. Model names cross the wire as dotted
// "catalog.schema.name" strings and IDs as UUID strings.

type Model struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ModelVersion struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Version     int       `json:"version"`
	SourceURI   string    `json:"sourceUri"`
	RunID       string    `json:"runId,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	LastError   string    `json:"lastError,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Run struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"userId,omitempty"`
	Name         string    `json:"name,omitempty"`
	Status       string    `json:"status"`
	ArtifactRoot string    `json:"artifactRoot"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ServedEntity struct {
	Name               string `json:"name"`
	EntityName         string `json:"entityName"`
	EntityVersion      int    `json:"entityVersion"`
	WorkloadSize       string `json:"workloadSize,omitempty"`
	ScaleToZeroEnabled bool   `json:"scaleToZeroEnabled,omitempty"`
}

type Route struct {
	ServedModelName   string `json:"servedModelName"`
	TrafficPercentage int    `json:"trafficPercentage"`
}

type TrafficConfig struct {
	Routes []Route `json:"routes"`
}

type EndpointConfig struct {
	ServedEntities []ServedEntity `json:"servedEntities"`
	TrafficConfig  *TrafficConfig `json:"trafficConfig,omitempty"`
}

type Endpoint struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	State     string         `json:"state"`
	Config    EndpointConfig `json:"config"`
	LastError string         `json:"lastError,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type ModelList struct {
	Items      []Model `json:"items"`
	NextCursor string  `json:"nextCursor,omitempty"`
}

type ModelVersionList struct {
	Items []ModelVersion `json:"items"`
}

type EndpointList struct {
	Items      []Endpoint `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

func DomainModelToV1(in *domain.Model) *Model {
	return &Model{
		ID:          uuid.UUID(in.ID),
		Name:        in.Name.String(),
		Description: in.Description,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func DomainVersionToV1(in *domain.ModelVersion) *ModelVersion {
	out := ModelVersion{
		ID:          in.ID,
		Name:        in.Name.String(),
		Version:     in.Version,
		SourceURI:   in.SourceURI,
		Description: in.Description,
		Status:      string(in.Status),
		LastError:   in.LastError,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
	if !in.RunID.IsZero() {
		out.RunID = in.RunID.String()
	}

	return &out
}

func DomainRunToV1(in *domain.Run) *Run {
	out := Run{
		ID:           uuid.UUID(in.ID),
		Name:         in.Name,
		Status:       string(in.Status),
		ArtifactRoot: in.ArtifactRoot,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
	if !in.UserID.IsZero() {
		out.UserID = in.UserID.String()
	}

	return &out
}

func DomainEndpointConfigToV1(in domain.EndpointConfig) EndpointConfig {
	out := EndpointConfig{
		ServedEntities: make([]ServedEntity, 0, len(in.ServedEntities)),
	}
	for _, e := range in.ServedEntities {
		out.ServedEntities = append(out.ServedEntities, ServedEntity{
			Name:               e.Name,
			EntityName:         e.EntityName.String(),
			EntityVersion:      e.EntityVersion,
			WorkloadSize:       string(e.WorkloadSize),
			ScaleToZeroEnabled: e.ScaleToZeroEnabled,
		})
	}
	if routes := in.TrafficConfig.Routes; len(routes) > 0 {
		tc := TrafficConfig{Routes: make([]Route, 0, len(routes))}
		for _, r := range routes {
			tc.Routes = append(tc.Routes, Route(r))
		}
		out.TrafficConfig = &tc
	}

	return out
}

func V1EndpointConfigToDomain(in EndpointConfig) (domain.EndpointConfig, error) {
	out := domain.EndpointConfig{
		ServedEntities: make([]domain.ServedEntity, 0, len(in.ServedEntities)),
	}
	for _, e := range in.ServedEntities {
		name, err := domain.ParseModelName(e.EntityName)
		if err != nil {
			return domain.EndpointConfig{}, serrors.Wrap(serrors.ErrInvalid, err,
				"invalid entity name for served entity %q", e.Name)
		}
		out.ServedEntities = append(out.ServedEntities, domain.ServedEntity{
			Name:               e.Name,
			EntityName:         name,
			EntityVersion:      e.EntityVersion,
			WorkloadSize:       domain.WorkloadSize(e.WorkloadSize),
			ScaleToZeroEnabled: e.ScaleToZeroEnabled,
		})
	}
	if in.TrafficConfig != nil {
		out.TrafficConfig.Routes = make([]domain.Route, 0, len(in.TrafficConfig.Routes))
		for _, r := range in.TrafficConfig.Routes {
			out.TrafficConfig.Routes = append(out.TrafficConfig.Routes, domain.Route(r))
		}
	}

	return out, nil
}

func DomainEndpointToV1(in *domain.Endpoint) *Endpoint {
	return &Endpoint{
		ID:        uuid.UUID(in.ID),
		Name:      in.Name,
		State:     string(in.State),
		Config:    DomainEndpointConfigToV1(in.Config),
		LastError: in.LastError,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}
