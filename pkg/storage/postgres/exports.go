package postgres

import (
	"context"
	"fmt"
	"tally/pkg/domain"
	"tally/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	exportsTable = "exports"
)

func (p *PgSQL) StoreExport(ctx context.Context, export domain.Export) (*domain.Export, error) {
	var row PgExport
	row.FromDomain(export)

	if _, err := p.Builder.Insert(exportsTable).
		Rows(row).
		Returning(&PgExport{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store export into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

// UpdateExportByID updates a single export identified by its ID and returns
// the updated row. Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdateExportByID(ctx context.Context,
	id domain.ExportID,
	updates storage.ExportUpdates) (*domain.Export, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.ExportStatusFailed && updates.MaxAttempts > 0 {
		// only give up once the attempts budget is spent
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ExportStatusFailed))
	}
	if updates.Content != nil {
		rec["content"] = updates.Content
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgExport
	found, err := p.Builder.Update(exportsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgExport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update export in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ExportByID(ctx context.Context, id domain.ExportID) (*domain.Export, error) {
	var row PgExport
	found, err := p.Builder.From(exportsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch export by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
