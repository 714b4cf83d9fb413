package storage

import (
	"context"
	"tally/pkg/domain"
)

// ExportUpdates describes the fields applied to an export during an update.
type ExportUpdates struct {
	// Status is the new status to set for the export.
	Status domain.ExportStatus
	// Content, when provided, replaces the rendered CSV.
	Content []byte
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed once the attempts after increment reach this
	// threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// ExportStorage persists asynchronous export requests and their output.
type ExportStorage interface {
	// StoreExport inserts an export and returns it with generated fields set.
	StoreExport(ctx context.Context, export domain.Export) (*domain.Export, error)
	// UpdateExportByID applies updates to an export, increments its attempts and
	// returns the updated row, or nil when it does not exist.
	UpdateExportByID(ctx context.Context, ID domain.ExportID, updates ExportUpdates) (*domain.Export, error)
	// ExportByID returns the export or nil when it does not exist.
	ExportByID(ctx context.Context, ID domain.ExportID) (*domain.Export, error)
}
