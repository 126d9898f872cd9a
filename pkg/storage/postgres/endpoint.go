package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ocrflow/pkg/domain"
	"ocrflow/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	endpointsTable = "endpoints"
)

func (p *PgSQL) StoreEndpoint(ctx context.Context, endpoint domain.Endpoint) (*domain.Endpoint, error) {
	var pg PgEndpoint
	if err := pg.FromDomain(endpoint); err != nil {
		return nil, err
	}

	var row PgEndpoint
	if _, err := p.Builder.Insert(endpointsTable).
		Rows(pg).
		Returning(&PgEndpoint{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store endpoint into pg: %w", asDuplicate(err))
	}

	return row.ToDomain()
}

// EndpointByName fetches an endpoint by name, excluding soft-deleted rows.
func (p *PgSQL) EndpointByName(ctx context.Context, name string) (*domain.Endpoint, error) {
	var row PgEndpoint
	found, err := p.Builder.From(endpointsTable).
		Where(
			goqu.I("name").Eq(name),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch endpoint by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Endpoints returns a page of endpoints filtered by optional state and cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) Endpoints(ctx context.Context,
	state domain.EndpointState,
	cursor time.Time,
	limit uint) (storage.EndpointPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if state != "" {
		w = append(w, goqu.I("state").Eq(string(state)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(endpointsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgEndpoint
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.EndpointPage{}, fmt.Errorf("could not fetch endpoints from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	endpoints, err := pgEndpointsToDomain(rows)
	if err != nil {
		return storage.EndpointPage{}, err
	}

	return storage.EndpointPage{
		Endpoints:  endpoints,
		NextCursor: nextCursor,
	}, nil
}

// UpdateEndpointByID applies the provided fields to an endpoint row, setting
// updated_at. A config change also increments config_revision. When the
// IfRevision guard is set and does not match the current revision, no row is
// updated and nil is returned.
func (p *PgSQL) UpdateEndpointByID(ctx context.Context,
	id domain.EndpointID,
	updates storage.EndpointUpdates) (*domain.Endpoint, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.State != "" {
		rec["state"] = string(updates.State)
	}
	if updates.Config != nil {
		config, err := json.Marshal(updates.Config)
		if err != nil {
			return nil, fmt.Errorf("could not marshal endpoint config: %w", err)
		}

		rec["config"] = config
		rec["config_revision"] = goqu.L("config_revision + 1")
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.IfRevision > 0 {
		w = append(w, goqu.I("config_revision").Eq(updates.IfRevision))
	}

	var row PgEndpoint
	found, err := p.Builder.Update(endpointsTable).
		Set(rec).Where(w...).
		Returning(&PgEndpoint{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update endpoint in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteEndpoint performs a soft delete by setting the deleted_at timestamp
// for the endpoint with the given name, returning the deleted record.
func (p *PgSQL) DeleteEndpoint(ctx context.Context, name string) (*domain.Endpoint, error) {
	var row PgEndpoint
	found, err := p.Builder.Update(endpointsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("name").Eq(name),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgEndpoint{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete endpoint in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
