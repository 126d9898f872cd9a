package postgres

import (
	"context"
	"fmt"
	"time"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	modelsTable   = "models"
	versionsTable = "model_versions"
)

func (p *PgSQL) StoreModel(ctx context.Context, model domain.Model) (*domain.Model, error) {
	var pg PgModel
	pg.FromDomain(model)

	var row PgModel
	if _, err := p.Builder.Insert(modelsTable).
		Rows(pg).
		Returning(&PgModel{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store model into pg: %w", asDuplicate(err))
	}

	return row.ToDomain(), nil
}

// ModelByName fetches a model by its full three-part name. Returns nil when
// no such model exists.
func (p *PgSQL) ModelByName(ctx context.Context, name domain.ModelName) (*domain.Model, error) {
	var row PgModel
	found, err := p.Builder.From(modelsTable).
		Where(
			goqu.I("catalog_name").Eq(name.Catalog),
			goqu.I("schema_name").Eq(name.Schema),
			goqu.I("model_name").Eq(name.Name),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch model by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Models returns a page of models matching the filter, ordered by
// created_at DESC, id DESC. A next cursor is returned when more rows exist.
func (p *PgSQL) Models(ctx context.Context, filter storage.ModelFilter) (storage.ModelPage, error) {
	var w []goqu.Expression
	if filter.Catalog != "" {
		w = append(w, goqu.I("catalog_name").Eq(filter.Catalog))
	}
	if filter.Schema != "" {
		w = append(w, goqu.I("schema_name").Eq(filter.Schema))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := filter.Limit + 1
	ds := p.Builder.From(modelsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgModel
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ModelPage{}, fmt.Errorf("could not fetch models from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > filter.Limit {
		trimmed := rows[:filter.Limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.ModelPage{
		Models:     pgModelsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// StoreVersion inserts a new version row, assigning the next free number for
// the model inside the insert itself. Two concurrent registrations can still
// compute the same number; the unique (model_id, version) index rejects one of
// them with ErrDuplicate, which callers are expected to retry.
func (p *PgSQL) StoreVersion(ctx context.Context, version domain.ModelVersion) (*domain.ModelVersion, error) {
	var pg PgModelVersion
	pg.FromDomain(version)

	rec := goqu.Record{
		"model_id":     pg.ModelID,
		"catalog_name": pg.Catalog,
		"schema_name":  pg.Schema,
		"model_name":   pg.Name,
		"version": goqu.L(
			"(SELECT COALESCE(MAX(version), 0) + 1 FROM model_versions WHERE model_id = ?)",
			pg.ModelID,
		),
		"source_uri":    pg.SourceURI,
		"run_id":        pg.RunID,
		"artifact_path": pg.ArtifactPath,
		"description":   pg.Description,
		"status":        pg.Status,
	}

	var row PgModelVersion
	if _, err := p.Builder.Insert(versionsTable).
		Rows(rec).
		Returning(&PgModelVersion{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store model version into pg: %w", asDuplicate(err))
	}

	return row.ToDomain(), nil
}

// UpdateVersionByID applies the provided fields to a version row and sets
// updated_at. Returns nil when the version does not exist.
func (p *PgSQL) UpdateVersionByID(ctx context.Context,
	id uuid.UUID,
	updates storage.VersionUpdates) (*domain.ModelVersion, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ArtifactPath != nil {
		rec["artifact_path"] = *updates.ArtifactPath
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgModelVersion
	found, err := p.Builder.Update(versionsTable).
		Set(rec).Where(
		goqu.I("id").Eq(id),
	).Returning(&PgModelVersion{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update model version in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// VersionByNumber fetches one version of a model by its per-model number.
func (p *PgSQL) VersionByNumber(ctx context.Context,
	modelID domain.ModelID,
	number int) (*domain.ModelVersion, error) {
	var row PgModelVersion
	found, err := p.Builder.From(versionsTable).
		Where(
			goqu.I("model_id").Eq(uuid.UUID(modelID)),
			goqu.I("version").Eq(number),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch model version by number: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ModelVersions returns all versions of a model ordered by number, newest first.
func (p *PgSQL) ModelVersions(ctx context.Context, modelID domain.ModelID) ([]domain.ModelVersion, error) {
	var rows []PgModelVersion
	if err := p.Builder.From(versionsTable).
		Where(goqu.I("model_id").Eq(uuid.UUID(modelID))).
		Order(goqu.I("version").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch model versions from pg: %w", err)
	}

	return pgVersionsToDomain(rows), nil
}
