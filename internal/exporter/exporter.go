// Package exporter renders result tables to CSV in the background.
package exporter

import (
	"bytes"
	"context"
	"fmt"
	"tally/internal/config"
	"tally/internal/results"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"
	"tally/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how export jobs are retried.
type Options struct {
	// MaxAttempts is the number of times an export is rendered before it is
	// marked failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Exporter.MaxAttempts,
	}
}

type exporter struct {
	options Options
	storage storage.Storage
	results results.Results
}

// New creates an Exporter that stores exports in storage and renders them
// with results.
func New(storage storage.Storage, results results.Results, options Options) Exporter {
	return &exporter{
		options: options,
		storage: storage,
		results: results,
	}
}

// Enqueue stores the export and its job in one transaction, so a job never
// points to a missing export.
func (e *exporter) Enqueue(ctx context.Context, kind domain.ExportKind) (*domain.Export, error) {
	if !kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown export kind %q", kind)
	}

	var export *domain.Export
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		export, err = tx.StoreExport(ctx, domain.Export{
			Kind:   kind,
			Status: domain.ExportStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store export: %w", err)
		}

		if _, err := tx.AddJob(ctx, JobArgs{
			ExportID:    export.ID.String(),
			maxAttempts: e.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue export: %w", err)
	}

	logger.Info(ctx, "export enqueued",
		zap.String("exportID", export.ID.String()),
		zap.String("kind", string(kind)))

	return export, nil
}

func (e *exporter) Export(ctx context.Context, ID domain.ExportID) (*domain.Export, error) {
	res, err := e.storage.ExportByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get export: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "export not found")
	}

	return res, nil
}

// Render is idempotent: an export that already completed is left untouched.
// A failed rendering records the error and counts as an attempt; the export
// is marked failed once MaxAttempts is reached.
func (e *exporter) Render(ctx context.Context, ID domain.ExportID) error {
	export, err := e.Export(ctx, ID)
	if err != nil {
		return err
	}
	if export.Status != domain.ExportStatusPending {
		logger.Info(ctx, "export already rendered", zap.String("status", string(export.Status)))

		return nil
	}

	var buf bytes.Buffer
	if renderErr := e.results.WriteCSV(ctx, export.Kind, &buf); renderErr != nil {
		msg := renderErr.Error()
		if _, err := e.storage.UpdateExportByID(ctx, ID, storage.ExportUpdates{
			Status:      domain.ExportStatusFailed,
			LastError:   &msg,
			MaxAttempts: e.options.MaxAttempts,
		}); err != nil {
			logger.Error(ctx, "could not record export failure", zap.Error(err))
		}

		return fmt.Errorf("could not render export: %w", renderErr)
	}

	noError := ""
	if _, err := e.storage.UpdateExportByID(ctx, ID, storage.ExportUpdates{
		Status:    domain.ExportStatusCompleted,
		Content:   buf.Bytes(),
		LastError: &noError,
	}); err != nil {
		return fmt.Errorf("could not store export: %w", err)
	}

	return nil
}
