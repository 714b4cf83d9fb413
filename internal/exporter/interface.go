package exporter

import (
	"context"
	"tally/pkg/domain"
)

//go:generate mockgen -package mockexporter -source=interface.go -destination=mock/mockexporter.go *
type Exporter interface {
	// Enqueue stores a pending export of the given table and schedules a job
	// to render it.
	Enqueue(ctx context.Context, kind domain.ExportKind) (*domain.Export, error)
	Export(ctx context.Context, ID domain.ExportID) (*domain.Export, error)
	// Render computes the table and stores it as CSV on the export.
	Render(ctx context.Context, ID domain.ExportID) error
}
