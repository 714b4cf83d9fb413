package worker

import (
	"context"
	"errors"
	"fmt"
	"tally/internal/exporter"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExportWorker is a River worker that renders pending exports. Failed
// renderings are returned to River, which retries them until the job runs
// out of attempts.
type ExportWorker struct {
	river.WorkerDefaults[exporter.JobArgs]

	exporter exporter.Exporter
}

// NewExportWorker constructs an ExportWorker using the provided exporter.
func NewExportWorker(exporter exporter.Exporter) *ExportWorker {
	return &ExportWorker{exporter: exporter}
}

// Work renders the export referenced by the job. Jobs pointing to an export
// that does not exist are cancelled.
func (w *ExportWorker) Work(ctx context.Context, job *river.Job[exporter.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("exportID", job.Args.ExportID))

	id, err := uuid.Parse(job.Args.ExportID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid export ID: %w", err)) //nolint: wrapcheck
	}

	if err := w.exporter.Render(ctx, domain.ExportID(id)); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in rendering export", zap.Error(err))

		return fmt.Errorf("could not render export: %w", err)
	}

	logger.Info(ctx, "export rendered successfully")

	return nil
}
