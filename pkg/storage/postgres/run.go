package postgres

import (
	"context"
	"fmt"

	"ocrflow/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	runsTable = "runs"
)

func (p *PgSQL) StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error) {
	var pg PgRun
	pg.FromDomain(run)

	var row PgRun
	if _, err := p.Builder.Insert(runsTable).
		Rows(pg).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store run into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// RunByID fetches a run by its ID. Returns nil when no such run exists.
func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	var row PgRun
	found, err := p.Builder.From(runsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch run by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateRunStatus transitions a run to the given status, setting updated_at.
// Returns nil when the run does not exist.
func (p *PgSQL) UpdateRunStatus(ctx context.Context,
	id domain.RunID,
	status domain.RunStatus) (*domain.Run, error) {
	var row PgRun
	found, err := p.Builder.Update(runsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgRun{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update run status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
