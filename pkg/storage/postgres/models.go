package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"ocrflow/pkg/domain"

	"github.com/google/uuid"
)

type PgModel struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Catalog     string `db:"catalog_name"`
	Schema      string `db:"schema_name"`
	Name        string `db:"model_name"`
	Description string `db:"description"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// TODO: use https://github.com/jmattheis/goverter for converting

func (p *PgModel) ToDomain() *domain.Model {
	return &domain.Model{
		ID: domain.ModelID(p.ID),
		Name: domain.ModelName{
			Catalog: p.Catalog,
			Schema:  p.Schema,
			Name:    p.Name,
		},
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgModel) FromDomain(model domain.Model) {
	*p = PgModel{
		ID:          uuid.UUID(model.ID),
		Catalog:     model.Name.Catalog,
		Schema:      model.Name.Schema,
		Name:        model.Name.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  model.UpdatedAt,
			Valid: !model.UpdatedAt.IsZero(),
		},
	}
}

func pgModelsToDomain(models []PgModel) []domain.Model {
	out := make([]domain.Model, 0, len(models))
	for _, m := range models {
		out = append(out, *m.ToDomain())
	}

	return out
}

type PgModelVersion struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	ModelID uuid.UUID `db:"model_id"`

	Catalog string `db:"catalog_name"`
	Schema  string `db:"schema_name"`
	Name    string `db:"model_name"`
	Version int    `db:"version"`

	SourceURI    string         `db:"source_uri"`
	RunID        uuid.NullUUID  `db:"run_id"`
	ArtifactPath string         `db:"artifact_path"`
	Description  string         `db:"description"`
	Status       string         `db:"status"`
	LastError    sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgModelVersion) ToDomain() *domain.ModelVersion {
	return &domain.ModelVersion{
		ID:      p.ID,
		ModelID: domain.ModelID(p.ModelID),
		Name: domain.ModelName{
			Catalog: p.Catalog,
			Schema:  p.Schema,
			Name:    p.Name,
		},
		Version:      p.Version,
		SourceURI:    p.SourceURI,
		RunID:        domain.RunID(p.RunID.UUID),
		ArtifactPath: p.ArtifactPath,
		Description:  p.Description,
		Status:       domain.VersionStatus(p.Status),
		LastError:    p.LastError.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgModelVersion) FromDomain(version domain.ModelVersion) {
	runID := uuid.UUID(version.RunID)
	*p = PgModelVersion{
		ID:      version.ID,
		ModelID: uuid.UUID(version.ModelID),
		Catalog: version.Name.Catalog,
		Schema:  version.Name.Schema,
		Name:    version.Name.Name,
		Version: version.Version,

		SourceURI: version.SourceURI,
		RunID: uuid.NullUUID{
			UUID:  runID,
			Valid: runID != uuid.Nil,
		},
		ArtifactPath: version.ArtifactPath,
		Description:  version.Description,
		Status:       string(version.Status),
		LastError: sql.NullString{
			String: version.LastError,
			Valid:  version.LastError != "",
		},

		CreatedAt: version.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  version.UpdatedAt,
			Valid: !version.UpdatedAt.IsZero(),
		},
	}
}

func pgVersionsToDomain(versions []PgModelVersion) []domain.ModelVersion {
	out := make([]domain.ModelVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, *v.ToDomain())
	}

	return out
}

// PgRun rows carry the run ID on insert so the caller can derive the artifact
// root from it before the row exists; the column default only covers rows
// created without one.
type PgRun struct {
	ID     uuid.UUID `db:"id" goqu:"defaultifempty"`
	UserID uuid.UUID `db:"user_id"`

	Name         string `db:"name"`
	Status       string `db:"status"`
	ArtifactRoot string `db:"artifact_root"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRun) ToDomain() *domain.Run {
	return &domain.Run{
		ID:           domain.RunID(p.ID),
		UserID:       domain.UserID(p.UserID),
		Name:         p.Name,
		Status:       domain.RunStatus(p.Status),
		ArtifactRoot: p.ArtifactRoot,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgRun) FromDomain(run domain.Run) {
	*p = PgRun{
		ID:           uuid.UUID(run.ID),
		UserID:       uuid.UUID(run.UserID),
		Name:         run.Name,
		Status:       string(run.Status),
		ArtifactRoot: run.ArtifactRoot,
		CreatedAt:    run.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  run.UpdatedAt,
			Valid: !run.UpdatedAt.IsZero(),
		},
	}
}

type PgEndpoint struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	Name   string    `db:"name"`
	UserID uuid.UUID `db:"user_id"`

	State          string          `db:"state"`
	Config         json.RawMessage `db:"config"`
	ConfigRevision int             `db:"config_revision" goqu:"skipinsert"`
	LastError      sql.NullString  `db:"last_error"      goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgEndpoint) ToDomain() (*domain.Endpoint, error) {
	var config domain.EndpointConfig
	if err := json.Unmarshal(p.Config, &config); err != nil {
		return nil, fmt.Errorf("could not unmarshal endpoint config: %w", err)
	}

	return &domain.Endpoint{
		ID:             domain.EndpointID(p.ID),
		Name:           p.Name,
		UserID:         domain.UserID(p.UserID),
		State:          domain.EndpointState(p.State),
		Config:         config,
		ConfigRevision: p.ConfigRevision,
		LastError:      p.LastError.String,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}, nil
}

func (p *PgEndpoint) FromDomain(endpoint domain.Endpoint) error {
	config, err := json.Marshal(endpoint.Config)
	if err != nil {
		return fmt.Errorf("could not marshal endpoint config: %w", err)
	}

	*p = PgEndpoint{
		ID:             uuid.UUID(endpoint.ID),
		Name:           endpoint.Name,
		UserID:         uuid.UUID(endpoint.UserID),
		State:          string(endpoint.State),
		Config:         config,
		ConfigRevision: endpoint.ConfigRevision,
		LastError: sql.NullString{
			String: endpoint.LastError,
			Valid:  endpoint.LastError != "",
		},
		CreatedAt: endpoint.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  endpoint.UpdatedAt,
			Valid: !endpoint.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  endpoint.DeletedAt,
			Valid: !endpoint.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgEndpointsToDomain(endpoints []PgEndpoint) ([]domain.Endpoint, error) {
	out := make([]domain.Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		d, err := e.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
